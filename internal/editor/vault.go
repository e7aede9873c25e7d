package editor

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"vaultedit/internal/document"
	"vaultedit/internal/schema"
)

// VaultEdits carries the optional vault-metadata fields. Empty string means
// "not edited".
type VaultEdits struct {
	Name  string
	Mode  string
	Theme string
}

// ApplyVaultEdits writes the vault name (trimmed, non-empty), mode (must be
// Normal or Survival) and theme (integer, >= 0). Each field validates on its
// own; rejected fields are skipped without affecting the others.
func (s *Session) ApplyVaultEdits(edits VaultEdits) int {
	if vault, err := s.doc.Get("vault"); err != nil || vault.Kind() != document.Object {
		s.log.Debug("vault edits skipped: no vault section")
		return 0
	}

	applied := 0

	if name := strings.TrimSpace(edits.Name); name != "" {
		if err := s.doc.Set(schema.VaultNamePath, document.NewString(name)); err == nil {
			applied++
		}
	}

	if edits.Mode != "" {
		if edits.Mode == schema.ModeNormal || edits.Mode == schema.ModeSurvival {
			if err := s.doc.Set(schema.VaultModePath, document.NewString(edits.Mode)); err == nil {
				applied++
			}
		} else {
			s.log.Debug("vault mode skipped", zap.String("mode", edits.Mode))
		}
	}

	if edits.Theme != "" {
		theme, err := strconv.Atoi(strings.TrimSpace(edits.Theme))
		if err == nil && theme >= 0 {
			if err := s.doc.Set(schema.VaultThemePath, document.NewInt(int64(theme))); err == nil {
				applied++
			}
		} else {
			s.log.Debug("vault theme skipped", zap.String("theme", edits.Theme))
		}
	}

	s.markApplied(applied)
	s.log.Info("vault edits applied", zap.Int("applied", applied))
	return applied
}

// VaultName returns the vault's display name.
func (s *Session) VaultName() (string, bool) {
	node, err := s.doc.Get(schema.VaultNamePath)
	if err != nil {
		return "", false
	}
	return node.StringVal()
}

// VaultMode returns the vault's game mode string.
func (s *Session) VaultMode() (string, bool) {
	node, err := s.doc.Get(schema.VaultModePath)
	if err != nil {
		return "", false
	}
	return node.StringVal()
}

// VaultTheme returns the vault's theme id.
func (s *Session) VaultTheme() (int64, bool) {
	node, err := s.doc.Get(schema.VaultThemePath)
	if err != nil {
		return 0, false
	}
	return node.Int()
}
