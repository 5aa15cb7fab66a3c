package profile

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/RaSan147/BackupSeeker/internal/errors"
)

func init() {
	Cmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <profile>",
	Aliases: []string{"rm"},
	Short:   "Remove a backup profile",
	Long: `Remove a backup profile.

Existing archives are left on disk; only the profile entry is deleted.

Examples:
  backupseeker profile remove Skyrim`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(_ *cobra.Command, args []string) error {
	return runRemoveWithWriter(os.Stdout, args[0])
}

// runRemoveWithWriter allows injecting a writer for testing.
func runRemoveWithWriter(w io.Writer, idOrName string) error {
	app, err := openApp()
	if err != nil {
		return err
	}

	p, err := app.ResolveProfile(idOrName)
	if err != nil {
		return err
	}

	if err := app.Store.Delete(p.ID); err != nil {
		return errors.Wrapf(err, "removing %s", p.ID)
	}

	fmt.Fprintf(w, "%sRemoved%s %s (%s)\n", colorGreen, colorReset, p.Name, p.ID)
	return nil
}
