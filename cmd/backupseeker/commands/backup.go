package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/RaSan147/BackupSeeker/internal/errors"
)

var backupCmd = &cobra.Command{
	Use:   "backup <profile>",
	Short: "Back up a profile's save folder",
	Long: `Back up the profile's save folder into a timestamped zip archive.

The archive is written under <backup root>/<profile name>/. The profile can
be addressed by ID or by its unique name.

Examples:
  # Back up by name
  backupseeker backup Skyrim

  # Back up by ID
  backupseeker backup plugin_skyrim_20240101120000`,
	Args: cobra.ExactArgs(1),
	RunE: runBackup,
}

func runBackup(_ *cobra.Command, args []string) error {
	return runBackupWithWriter(os.Stdout, args[0])
}

// runBackupWithWriter allows injecting a writer for testing.
func runBackupWithWriter(w io.Writer, idOrName string) error {
	app, err := openApp()
	if err != nil {
		return err
	}

	p, err := app.ResolveProfile(idOrName)
	if err != nil {
		return err
	}

	path, err := app.Coordinator.RunBackup(p.ID)
	if err != nil {
		return errors.Wrapf(err, "backing up %s", p.Name)
	}

	fmt.Fprintf(w, "%sBacked up%s %s -> %s\n", colorGreen, colorReset, p.Name, path)
	return nil
}
