package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultedit/internal/editor"
)

var (
	vaultName  string
	vaultMode  string
	vaultTheme string
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Edit vault metadata",
}

var vaultSetCmd = &cobra.Command{
	Use:   "set <save-file>",
	Short: "Set vault name, mode or theme",
	Long: `Set vault metadata. Only the given flags are applied:

  vaultedit vault set Vault1.sav --name "New Home" --mode Survival --theme 2

Mode must be Normal or Survival; theme must be a non-negative integer.`,
	Args: cobra.ExactArgs(1),
	RunE: runVaultSet,
}

func init() {
	vaultSetCmd.Flags().StringVar(&vaultName, "name", "", "vault display name")
	vaultSetCmd.Flags().StringVar(&vaultMode, "mode", "", "game mode (Normal or Survival)")
	vaultSetCmd.Flags().StringVar(&vaultTheme, "theme", "", "theme id")
	vaultCmd.AddCommand(vaultSetCmd)
	rootCmd.AddCommand(vaultCmd)
}

func runVaultSet(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}

	applied := s.ApplyVaultEdits(editor.VaultEdits{
		Name:  vaultName,
		Mode:  vaultMode,
		Theme: vaultTheme,
	})
	fmt.Printf("applied %d vault edit(s)\n", applied)
	if applied == 0 {
		return nil
	}
	return writeSession(args[0], s)
}
