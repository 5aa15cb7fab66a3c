package detect

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
	Short: "List known games and their detection status",
	Long: `Reload the descriptor catalog and show which known games are present
on this machine.

Examples:
  # Show all known games
  backupseeker detect list

  # Output as JSON
  backupseeker detect list --json`,
	RunE: runList,
}

// listEntry is the JSON output shape for detect list.
type listEntry struct {
	GameID   string `json:"game_id"`
	Name     string `json:"name"`
	Detected bool   `json:"detected"`
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

	app.Registry.Reload()

	var entries []listEntry
	for _, d := range app.Registry.Descriptors() {
		entries = append(entries, listEntry{
			GameID:   d.GameID,
			Name:     d.DisplayName,
			Detected: app.Registry.IsDetected(d),
		})
	}

	if listJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(entries), "encoding output")
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No game descriptors loaded")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sGAME%s\t%sID%s\t%sSTATUS%s\n",
		colorBold, colorReset, colorBold, colorReset, colorBold, colorReset)

	for _, e := range entries {
		status := colorGray + "not found" + colorReset
		if e.Detected {
			status = colorGreen + "detected" + colorReset
		}
		fmt.Fprintf(tw, "%s\t%s%s%s\t%s\n", e.Name, colorGray, e.GameID, colorReset, status)
	}
	return errors.Wrap(tw.Flush(), "flushing output")
}
