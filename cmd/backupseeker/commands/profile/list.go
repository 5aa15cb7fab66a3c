package profile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RaSan147/BackupSeeker/internal/errors"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List backup profiles",
	Long: `List all backup profiles.

Examples:
  # List all profiles
  backupseeker profile list

  # Output as JSON
  backupseeker profile list --json`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	return runListWithWriter(os.Stdout)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(w io.Writer) error {
	app, err := openApp()
	if err != nil {
		return err
	}

	profiles := app.Store.List()

	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(profiles), "encoding output")
	}

	if len(profiles) == 0 {
		fmt.Fprintln(w, "No profiles configured")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sID%s\t%sSAVE PATH%s\t%sOPTIONS%s\n",
		colorBold, colorReset, colorBold, colorReset, colorBold, colorReset, colorBold, colorReset)

	for _, p := range profiles {
		fmt.Fprintf(tw, "%s%s%s\t%s%s%s\t%s\t%s\n",
			colorGreen, p.Name, colorReset,
			colorGray, p.ID, colorReset,
			p.SavePath, optionSummary(p.UseCompression, p.ClearFolderOnRestore))
	}
	return errors.Wrap(tw.Flush(), "flushing output")
}

func optionSummary(compress, clear bool) string {
	switch {
	case compress && clear:
		return "compress, clear-on-restore"
	case compress:
		return "compress"
	case clear:
		return "clear-on-restore"
	default:
		return "-"
	}
}
