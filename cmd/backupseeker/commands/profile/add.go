package profile

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/RaSan147/BackupSeeker/internal/errors"
	"github.com/RaSan147/BackupSeeker/internal/profile"
)

var (
	addName     string
	addPath     string
	addCompress bool
	addClear    bool
	addIcon     string
)

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "profile display name (required)")
	addCmd.Flags().StringVar(&addPath, "path", "", "save folder path, absolute or portable (required)")
	addCmd.Flags().BoolVar(&addCompress, "compress", true, "compress archives")
	addCmd.Flags().BoolVar(&addClear, "clear-on-restore", false, "empty the save folder before restoring")
	addCmd.Flags().StringVar(&addIcon, "icon", "", "emoji or icon path")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("path")
	Cmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a backup profile",
	Long: `Add a backup profile by hand.

Absolute paths are contracted to a portable form where a matching environment
variable exists, so the profile survives machine and user moves.

Examples:
  backupseeker profile add --name "Skyrim" --path "%USERPROFILE%\Documents\My Games\Skyrim\Saves"
  backupseeker profile add --name "Stardew" --path ~/.config/StardewValley/Saves --clear-on-restore`,
	RunE: runAdd,
}

func runAdd(_ *cobra.Command, _ []string) error {
	return runAddWithWriter(os.Stdout)
}

// runAddWithWriter allows injecting a writer for testing.
func runAddWithWriter(w io.Writer) error {
	app, err := openApp()
	if err != nil {
		return err
	}

	p, err := app.Store.Create(profile.Profile{
		Name:                 addName,
		SavePath:             addPath,
		UseCompression:       addCompress,
		ClearFolderOnRestore: addClear,
		Icon:                 addIcon,
	})
	if err != nil {
		if errors.Is(err, profile.ErrInvalidProfile) {
			return errors.NewUserError(err, "Both --name and --path must be non-empty")
		}
		return err
	}

	fmt.Fprintf(w, "%sAdded%s %s (%s)\n", colorGreen, colorReset, p.Name, p.ID)
	return nil
}
