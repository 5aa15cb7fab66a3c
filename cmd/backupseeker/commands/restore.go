package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/RaSan147/BackupSeeker/internal/cli"
	"github.com/RaSan147/BackupSeeker/internal/errors"
	"github.com/RaSan147/BackupSeeker/internal/profile"
)

var restorePick bool

func init() {
	restoreCmd.Flags().BoolVar(&restorePick, "pick", false,
		"pick the archive interactively")
}

var restoreCmd = &cobra.Command{
	Use:   "restore <profile> [archive]",
	Short: "Restore a profile's save folder from an archive",
	Long: `Restore the profile's save folder from a backup archive.

With no archive argument the newest regular backup is used. A safety snapshot
of the current save folder is taken before anything is overwritten, so a
restore can always be undone.

Examples:
  # Restore the newest backup
  backupseeker restore Skyrim

  # Restore a specific archive
  backupseeker restore Skyrim /backups/Skyrim/Skyrim_2024-01-01_12-00-00.zip

  # Choose from all archives interactively
  backupseeker restore Skyrim --pick`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRestore,
}

func runRestore(_ *cobra.Command, args []string) error {
	return runRestoreWithWriter(os.Stdout, args)
}

// runRestoreWithWriter allows injecting a writer for testing.
func runRestoreWithWriter(w io.Writer, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}

	p, err := app.ResolveProfile(args[0])
	if err != nil {
		return err
	}

	archivePath, err := pickArchive(app, p, args)
	if err != nil {
		return err
	}
	if archivePath == "" {
		// Interactive pick aborted.
		return nil
	}

	if err := app.Coordinator.RunRestore(p.ID, archivePath); err != nil {
		return errors.Wrapf(err, "restoring %s", p.Name)
	}

	fmt.Fprintf(w, "%sRestored%s %s from %s\n", colorGreen, colorReset, p.Name, archivePath)
	return nil
}

// pickArchive decides which archive to restore: an explicit argument, an
// interactive pick, or the newest regular backup.
func pickArchive(app *cli.App, p *profile.Profile, args []string) (string, error) {
	if len(args) == 2 {
		return args[1], nil
	}

	if restorePick {
		return pickArchiveInteractive(app, p)
	}

	latest, err := app.Coordinator.LatestRegular(p.ID)
	if err != nil {
		return "", errors.NewUserError(err, "Run a backup first, or pass an archive path")
	}
	return latest.Path, nil
}

func pickArchiveInteractive(app *cli.App, p *profile.Profile) (string, error) {
	records, err := app.Coordinator.ListArchives(p.ID)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", errors.NewUserError(errors.Newf("no archives for %s", p.Name),
			"Run a backup first")
	}

	idx, err := fuzzyfinder.Find(
		records,
		func(i int) string {
			r := records[i]
			return fmt.Sprintf("%s [%s] %s", r.Name, r.Kind, r.ModTime.Format("2006-01-02 15:04"))
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			r := records[i]
			return fmt.Sprintf("Name: %s\nKind: %s\nModified: %s\nSize: %s\n\nPath:\n%s",
				r.Name, r.Kind, r.ModTime.Format("2006-01-02 15:04:05"), formatSize(r.Size), r.Path)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "interactive archive pick failed")
	}
	return records[idx].Path, nil
}
