// Package config loads editor configuration from yaml with environment
// overrides. Everything has a sensible default; a missing config file is not
// an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all vaultedit configuration.
type Config struct {
	// Backup behaviour around save writes.
	Backup BackupConfig `yaml:"backup"`

	// Logging verbosity for the CLI.
	Logging LoggingConfig `yaml:"logging"`
}

// BackupConfig controls the pre-write backup step.
type BackupConfig struct {
	// Take a timestamped backup before overwriting a save.
	OnSave bool `yaml:"on_save"`

	// Directory for the backup catalog database. Empty means the directory
	// holding the config file.
	CatalogDir string `yaml:"catalog_dir"`
}

// LoggingConfig controls zap verbosity.
type LoggingConfig struct {
	// debug, info, warn or error.
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Backup:  BackupConfig{OnSave: true},
		Logging: LoggingConfig{Level: "info"},
	}
}

// DefaultPath is the standard config location: ~/.vaultedit/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vaultedit", "config.yaml")
}

// Load reads path, applies env overrides, and validates. A missing file
// yields the defaults (still env-overridden).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults only.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as yaml, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("VAULTEDIT_BACKUP_ON_SAVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Backup.OnSave = b
		}
	}
	if v := os.Getenv("VAULTEDIT_BACKUP_DIR"); v != "" {
		c.Backup.CatalogDir = v
	}
	if v := os.Getenv("VAULTEDIT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// ResolveCatalogDir resolves the backup catalog directory for a given config path.
func (c *Config) ResolveCatalogDir(configPath string) string {
	if c.Backup.CatalogDir != "" {
		return c.Backup.CatalogDir
	}
	return filepath.Dir(configPath)
}

// Validate checks enum-like fields.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Logging.Level)
	}
	return nil
}
