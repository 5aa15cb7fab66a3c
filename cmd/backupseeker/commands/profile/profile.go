// Package profile provides commands for managing backup profiles.
package profile

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/RaSan147/BackupSeeker/cmd/backupseeker/commands/flags"
	"github.com/RaSan147/BackupSeeker/internal/cli"
)

// Cmd is the parent command for all profile subcommands.
var Cmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage backup profiles",
	Long:  `Commands for creating, inspecting, and removing backup profiles.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// openApp assembles the application services from the loaded runtime config.
func openApp() (*cli.App, error) {
	return cli.Open(flags.RuntimeConfig(), slog.Default())
}
