package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"vaultedit/internal/schema"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Edit vault resources",
}

var resourcesSetCmd = &cobra.Command{
	Use:   "set <save-file> <name=value>...",
	Short: "Set resource amounts",
	Long: `Set resource amounts by logical name, e.g.:

  vaultedit resources set Vault1.sav caps=5000 food=1000

Known names: ` + strings.Join(schema.ResourceNames(), ", ") + `.
Values must be numbers >= 0; invalid assignments are skipped.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runResourcesSet,
}

var resourcesMaxCmd = &cobra.Command{
	Use:   "max <save-file>",
	Short: "Set every resource to its ceiling",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourcesMax,
}

func init() {
	resourcesCmd.AddCommand(resourcesSetCmd)
	resourcesCmd.AddCommand(resourcesMaxCmd)
	rootCmd.AddCommand(resourcesCmd)
}

func parseResourceArgs(args []string) map[string]float64 {
	edits := make(map[string]float64)
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Printf("skipping %q: expected name=value\n", arg)
			continue
		}
		if _, known := schema.LookupResource(name); !known {
			if suggestion, ok := schema.SuggestResource(name); ok {
				fmt.Printf("skipping unknown resource %q (did you mean %q?)\n", name, suggestion)
			} else {
				fmt.Printf("skipping unknown resource %q\n", name)
			}
			continue
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			fmt.Printf("skipping %s: %q is not a number\n", name, value)
			continue
		}
		edits[name] = v
	}
	return edits
}

func runResourcesSet(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	applied := s.ApplyResourceEdits(parseResourceArgs(args[1:]))
	fmt.Printf("applied %d resource edit(s)\n", applied)
	if applied == 0 {
		return nil
	}
	return writeSession(args[0], s)
}

func runResourcesMax(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	applied := s.MaxAllResources()
	fmt.Printf("maxed %d resource(s)\n", applied)
	if applied == 0 {
		return nil
	}
	return writeSession(args[0], s)
}
