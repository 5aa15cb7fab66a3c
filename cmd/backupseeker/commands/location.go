package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/RaSan147/BackupSeeker/internal/errors"
	"github.com/RaSan147/BackupSeeker/internal/profile"
)

var locationCmd = &cobra.Command{
	Use:   "location [cwd|fixed <path>]",
	Short: "Show or set where backups are stored",
	Long: `Show or set the backup root policy.

In "cwd" mode backups go to a backups folder under the current working
directory. In "fixed" mode they go to a configured directory; the path may
contain environment-variable placeholders.

Examples:
  # Show the current policy and resolved root
  backupseeker location

  # Store backups next to the working directory
  backupseeker location cwd

  # Store backups in a fixed directory
  backupseeker location fixed "%USERPROFILE%\Backups\Saves"`,
	Args: cobra.MaximumNArgs(2),
	RunE: runLocation,
}

func runLocation(_ *cobra.Command, args []string) error {
	return runLocationWithWriter(os.Stdout, args)
}

// runLocationWithWriter allows injecting a writer for testing.
func runLocationWithWriter(w io.Writer, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		settings := app.Store.Settings()
		fmt.Fprintf(w, "Mode: %s\n", settings.BackupMode)
		if settings.BackupMode == profile.ModeFixed {
			fmt.Fprintf(w, "Fixed path: %s\n", settings.BackupFixedPath)
		}
		fmt.Fprintf(w, "Backup root: %s\n", app.Store.BackupRoot())
		return nil
	}

	switch args[0] {
	case string(profile.ModeCWD):
		if err := app.Store.SetBackupRootMode(profile.ModeCWD, ""); err != nil {
			return err
		}
	case string(profile.ModeFixed):
		if len(args) < 2 {
			return errors.NewUserError(errors.New("fixed mode requires a path"),
				"Usage: backupseeker location fixed <path>")
		}
		if err := app.Store.SetBackupRootMode(profile.ModeFixed, args[1]); err != nil {
			return err
		}
	default:
		return errors.NewUserError(errors.Newf("unknown mode %q", args[0]),
			"Valid modes: cwd, fixed")
	}

	fmt.Fprintf(w, "%sBackup root%s %s\n", colorGreen, colorReset, app.Store.BackupRoot())
	return nil
}
