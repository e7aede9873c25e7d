package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultedit/internal/backup"
	"vaultedit/internal/config"
)

var backupCmd = &cobra.Command{
	Use:   "backup <save-file>",
	Short: "Take a timestamped backup of a save file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackup,
}

var backupListCmd = &cobra.Command{
	Use:   "list <save-file>",
	Short: "List recorded backups for a save file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupList,
}

func init() {
	backupCmd.AddCommand(backupListCmd)
	rootCmd.AddCommand(backupCmd)
}

func openCatalog() (*backup.Manager, error) {
	confPath := configPath
	if confPath == "" {
		confPath = config.DefaultPath()
	}
	return backup.Open(cfg.ResolveCatalogDir(confPath), logger)
}

func runBackup(cmd *cobra.Command, args []string) error {
	m, err := openCatalog()
	if err != nil {
		return err
	}
	defer m.Close()

	rec, err := m.Create(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("backup: %s (%d bytes)\n", rec.BackupPath, rec.SizeBytes)
	return nil
}

func runBackupList(cmd *cobra.Command, args []string) error {
	m, err := openCatalog()
	if err != nil {
		return err
	}
	defer m.Close()

	records, err := m.List(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no backups recorded for this file")
		return nil
	}
	for _, r := range records {
		fmt.Printf("%s  %8d bytes  %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"), r.SizeBytes, r.BackupPath)
	}
	return nil
}
