package profile

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/RaSan147/BackupSeeker/internal/errors"
)

var (
	editName     string
	editPath     string
	editCompress bool
	editClear    bool
	editIcon     string
)

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "new display name")
	editCmd.Flags().StringVar(&editPath, "path", "", "new save folder path")
	editCmd.Flags().BoolVar(&editCompress, "compress", false, "compress archives")
	editCmd.Flags().BoolVar(&editClear, "clear-on-restore", false, "empty the save folder before restoring")
	editCmd.Flags().StringVar(&editIcon, "icon", "", "emoji or icon path")
	Cmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <profile>",
	Short: "Edit a backup profile",
	Long: `Edit a backup profile. Only the flags given are changed; name and
save path are revalidated.

Examples:
  backupseeker profile edit Skyrim --path "%USERPROFILE%\Saves\Skyrim"
  backupseeker profile edit Skyrim --clear-on-restore`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	return runEditWithWriter(os.Stdout, cmd, args[0])
}

// runEditWithWriter allows injecting a writer for testing.
func runEditWithWriter(w io.Writer, cmd *cobra.Command, idOrName string) error {
	app, err := openApp()
	if err != nil {
		return err
	}

	p, err := app.ResolveProfile(idOrName)
	if err != nil {
		return err
	}

	updated := *p
	if cmd.Flags().Changed("name") {
		updated.Name = editName
	}
	if cmd.Flags().Changed("path") {
		updated.SavePath = editPath
	}
	if cmd.Flags().Changed("compress") {
		updated.UseCompression = editCompress
	}
	if cmd.Flags().Changed("clear-on-restore") {
		updated.ClearFolderOnRestore = editClear
	}
	if cmd.Flags().Changed("icon") {
		updated.Icon = editIcon
	}

	if err := app.Store.Update(updated); err != nil {
		return errors.Wrapf(err, "updating %s", p.ID)
	}

	fmt.Fprintf(w, "%sUpdated%s %s (%s)\n", colorGreen, colorReset, updated.Name, updated.ID)
	return nil
}
