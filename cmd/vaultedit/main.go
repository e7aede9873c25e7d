// vaultedit is a command-line editor for encrypted shelter save files.
//
// The core never touches the filesystem; every command here reads the
// ciphertext, runs the decrypt/parse/mutate/serialize/encrypt pipeline, and
// writes the result back.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vaultedit/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dryRun     bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vaultedit",
	Short: "Editor for encrypted shelter save files",
	Long: `vaultedit decrypts a shelter save file, lets you edit resources, vault
metadata and dwellers, and writes a byte-compatible save back.

The save format is a base64 blob encrypted with a fixed key; editing an
untouched file and saving it again reproduces the original bytes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}

		zc := zap.NewProductionConfig()
		zc.Encoding = "console"
		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.vaultedit/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing the file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
