package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vaultedit/internal/editor"
	"vaultedit/internal/schema"
)

var (
	dwellerLevel     string
	dwellerHappiness string
	dwellerHealth    string
	dwellerSpecial   []string
)

var dwellersCmd = &cobra.Command{
	Use:   "dwellers",
	Short: "List and edit dwellers",
}

var dwellersListCmd = &cobra.Command{
	Use:   "list <save-file>",
	Short: "List dwellers with their stats",
	Args:  cobra.ExactArgs(1),
	RunE:  runDwellersList,
}

var dwellersSetCmd = &cobra.Command{
	Use:   "set <save-file> <index>",
	Short: "Edit one dweller",
	Long: `Edit one dweller by its list index (from "dwellers list"):

  vaultedit dwellers set Vault1.sav 3 --level 50 --happiness 100 --special S=10 --special L=7

Level, happiness and health accept any number and are written as-is.
SPECIAL values must be integers between 1 and 10; stats are named by their
initial (S P E C I A L).`,
	Args: cobra.ExactArgs(2),
	RunE: runDwellersSet,
}

var dwellersMaxCmd = &cobra.Command{
	Use:   "max <save-file> <index>",
	Short: "Max one dweller's SPECIAL stats",
	Args:  cobra.ExactArgs(2),
	RunE:  runDwellersMax,
}

var dwellersMaxAllCmd = &cobra.Command{
	Use:   "max-all <save-file>",
	Short: "Max level, happiness, health and SPECIAL for every dweller",
	Args:  cobra.ExactArgs(1),
	RunE:  runDwellersMaxAll,
}

func init() {
	for _, c := range []*cobra.Command{dwellersSetCmd, dwellersMaxCmd} {
		c.Flags().StringVar(&dwellerLevel, "level", "", "level")
		c.Flags().StringVar(&dwellerHappiness, "happiness", "", "happiness")
		c.Flags().StringVar(&dwellerHealth, "health", "", "health")
	}
	dwellersSetCmd.Flags().StringArrayVar(&dwellerSpecial, "special", nil, "SPECIAL edit, e.g. S=10 (repeatable)")

	dwellersCmd.AddCommand(dwellersListCmd)
	dwellersCmd.AddCommand(dwellersSetCmd)
	dwellersCmd.AddCommand(dwellersMaxCmd)
	dwellersCmd.AddCommand(dwellersMaxAllCmd)
	rootCmd.AddCommand(dwellersCmd)
}

func runDwellersList(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	dwellers := s.Dwellers()
	if len(dwellers) == 0 {
		fmt.Println("no dwellers in this save")
		return nil
	}

	fmt.Printf("%-4s %-20s %-6s %-5s %-9s %-6s %s\n",
		"#", "Name", "Lvl", "HP", "Happy", "Sex", "S P E C I A L")
	for i, d := range dwellers {
		v := s.ViewDweller(d)
		special := ""
		for _, st := range v.Special {
			special += fmt.Sprintf("%d ", st)
		}
		name := v.Name
		if v.Pregnant {
			name += " (pregnant)"
		}
		fmt.Printf("%-4d %-20s %-6d %-5.0f %-9.0f %-6s %s\n",
			i, name, v.Level, v.Health, v.Happiness, v.Gender, special)
	}
	return nil
}

// parseDwellerEdits turns the flag values into editor edits. Values that do
// not parse are reported and dropped; the rest still apply.
func parseDwellerEdits() editor.DwellerEdits {
	var edits editor.DwellerEdits

	parseNum := func(flag, value string) *float64 {
		if value == "" {
			return nil
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			fmt.Printf("skipping --%s: %q is not a number\n", flag, value)
			return nil
		}
		return &v
	}
	edits.Level = parseNum("level", dwellerLevel)
	edits.Happiness = parseNum("happiness", dwellerHappiness)
	edits.Health = parseNum("health", dwellerHealth)

	if len(dwellerSpecial) > 0 {
		edits.Special = make(map[int]int)
	}
	for _, spec := range dwellerSpecial {
		stat, value, err := parseSpecialArg(spec)
		if err != nil {
			fmt.Printf("skipping --special %q: %v\n", spec, err)
			continue
		}
		edits.Special[stat] = value
	}
	return edits
}

// parseSpecialArg parses "S=10" style assignments. The stat letter is the
// SPECIAL initial; each of the seven is unique.
func parseSpecialArg(arg string) (stat, value int, err error) {
	if len(arg) < 3 || arg[1] != '=' {
		return 0, 0, fmt.Errorf("expected <letter>=<value>")
	}
	letter := arg[0] &^ 0x20 // uppercase
	idx := -1
	for i, name := range schema.SpecialNames {
		if name[0] == letter {
			idx = i + 1
			break
		}
	}
	if idx < 0 {
		return 0, 0, fmt.Errorf("unknown stat %q", string(arg[0]))
	}
	v, err := strconv.Atoi(arg[2:])
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not an integer", arg[2:])
	}
	return idx, v, nil
}

func dwellerByIndex(s *editor.Session, arg string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("dweller index %q is not a number", arg)
	}
	if idx < 0 || idx >= len(s.Dwellers()) {
		return 0, fmt.Errorf("dweller index %d out of range (save has %d)", idx, len(s.Dwellers()))
	}
	return idx, nil
}

func runDwellersSet(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	idx, err := dwellerByIndex(s, args[1])
	if err != nil {
		return err
	}

	applied := s.ApplyDwellerEdits(s.Dwellers()[idx], parseDwellerEdits())
	fmt.Printf("applied %d edit(s) to dweller %d\n", applied, idx)
	if applied == 0 {
		return nil
	}
	return writeSession(args[0], s)
}

func runDwellersMax(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	idx, err := dwellerByIndex(s, args[1])
	if err != nil {
		return err
	}

	applied := s.MaxDwellerSpecial(s.Dwellers()[idx], parseDwellerEdits())
	fmt.Printf("applied %d edit(s) to dweller %d\n", applied, idx)
	return writeSession(args[0], s)
}

func runDwellersMaxAll(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	n := s.MaxAllDwellers()
	fmt.Printf("maxed %d dweller(s)\n", n)
	if n == 0 {
		return nil
	}
	return writeSession(args[0], s)
}
