// Save-file I/O for the CLI. This is the host side of the core's boundary:
// the editor packages only ever see in-memory bytes.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"vaultedit/internal/backup"
	"vaultedit/internal/config"
	"vaultedit/internal/editor"
)

func openSession(path string) (*editor.Session, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read save file: %w", err)
	}
	s, err := editor.Open(raw, editor.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// writeSession encodes the session back to ciphertext and overwrites path.
// Honors --dry-run and the backup-on-save config. All-or-nothing: the file
// is only touched once encoding has succeeded.
func writeSession(path string, s *editor.Session) error {
	if dryRun {
		fmt.Println("dry run: file not written")
		return nil
	}

	out, err := s.Encode()
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	if cfg.Backup.OnSave {
		if err := backupFile(path); err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}
	logger.Info("save written", zap.String("path", path), zap.Int("bytes", len(out)))
	return nil
}

func backupFile(path string) error {
	confPath := configPath
	if confPath == "" {
		confPath = config.DefaultPath()
	}
	m, err := backup.Open(cfg.ResolveCatalogDir(confPath), logger)
	if err != nil {
		return err
	}
	defer m.Close()

	rec, err := m.Create(path)
	if err != nil {
		return fmt.Errorf("backup before save: %w", err)
	}
	fmt.Printf("backup: %s\n", rec.BackupPath)
	return nil
}
