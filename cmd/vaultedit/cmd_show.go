package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultedit/internal/schema"
)

var showCmd = &cobra.Command{
	Use:   "show <save-file>",
	Short: "Show a summary of a save file",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	if name, ok := s.VaultName(); ok {
		fmt.Printf("Vault:  %s\n", name)
	} else {
		fmt.Println("Vault:  (unnamed)")
	}
	if mode, ok := s.VaultMode(); ok {
		fmt.Printf("Mode:   %s\n", mode)
	}
	if theme, ok := s.VaultTheme(); ok {
		fmt.Printf("Theme:  %d\n", theme)
	}

	fmt.Println("\nResources:")
	for _, r := range schema.Resources() {
		if v, ok := s.Resource(r.Logical); ok {
			fmt.Printf("  %-15s %.0f\n", r.Logical, v)
		}
	}

	fmt.Printf("\nDwellers: %d\n", len(s.Dwellers()))
	return nil
}
