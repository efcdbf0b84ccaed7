package cmd

import (
	"fmt"
	"os"

	"layersync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir holds the .env file read by every command.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "layersync",
	Short: "View layer sync service",
	Long: `Layersync keeps the view layers of scene documents in sync with their
collection hierarchy. Documents live in S3 compatible storage and view layer
state can be persisted in MySQL or SQLite.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding the .env file")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps reads better on a terminal.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
