// Package detect provides commands for detecting installed games.
package detect

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/RaSan147/BackupSeeker/cmd/backupseeker/commands/flags"
	"github.com/RaSan147/BackupSeeker/internal/cli"
)

// Cmd is the parent command for all detect subcommands.
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect installed games",
	Long: `Commands for evaluating the descriptor catalog against this machine
and importing detected games as backup profiles.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// ANSI color codes.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// openApp assembles the application services from the loaded runtime config.
func openApp() (*cli.App, error) {
	return cli.Open(flags.RuntimeConfig(), slog.Default())
}
