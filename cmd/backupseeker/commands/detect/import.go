package detect

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/RaSan147/BackupSeeker/internal/cli"
	"github.com/RaSan147/BackupSeeker/internal/cli/prompt"
	"github.com/RaSan147/BackupSeeker/internal/errors"
	"github.com/RaSan147/BackupSeeker/internal/profile"
)

var importAll bool

func init() {
	importCmd.Flags().BoolVar(&importAll, "all", false, "import every detected game")
	Cmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import [game-id]",
	Short: "Import detected games as backup profiles",
	Long: `Import detected games as backup profiles.

With a game id, imports that game if its descriptor exists. With --all,
imports every detected game. With neither, prompts to pick one of the
detected games.

A game already imported (same plugin id) is skipped.

Examples:
  backupseeker detect import skyrim
  backupseeker detect import --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func runImport(_ *cobra.Command, args []string) error {
	return runImportWithIO(os.Stdin, os.Stdout, args)
}

// runImportWithIO allows injecting reader and writer for testing.
func runImportWithIO(r io.Reader, w io.Writer, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}

	app.Registry.Reload()

	drafts, err := draftsToImport(app, r, w, args)
	if err != nil || len(drafts) == 0 {
		return err
	}

	var imported int
	for _, d := range drafts {
		p, err := app.Store.AddFromDraft(d)
		if err != nil {
			if errors.Is(err, profile.ErrAlreadyImported) {
				fmt.Fprintf(w, "%sSkipped%s %s (already imported)\n", colorGray, colorReset, d.Name)
				continue
			}
			return errors.Wrapf(err, "importing %s", d.GameID)
		}
		imported++
		fmt.Fprintf(w, "%sImported%s %s (%s)\n", colorGreen, colorReset, p.Name, p.ID)
	}

	if imported == 0 {
		fmt.Fprintln(w, "Nothing imported")
	}
	return nil
}

// draftsToImport picks the drafts for the requested import mode.
func draftsToImport(app *cli.App, r io.Reader, w io.Writer, args []string) ([]profile.Draft, error) {
	if len(args) == 1 {
		d, ok := app.Registry.Get(args[0])
		if !ok {
			return nil, errors.NewUserError(errors.Newf("unknown game id %q", args[0]),
				"Run 'backupseeker detect list' to see known games")
		}
		return []profile.Draft{app.Registry.ToDraft(d)}, nil
	}

	detected := app.Registry.DetectAll()
	if len(detected) == 0 {
		fmt.Fprintln(w, "No games detected")
		return nil, nil
	}

	if importAll {
		return detected, nil
	}

	draft, err := prompt.NewSelectorWithIO(r, w).SelectDraft(detected)
	if err != nil {
		if errors.Is(err, prompt.ErrSelectionCancelled) {
			return nil, nil
		}
		return nil, err
	}
	return []profile.Draft{*draft}, nil
}
