package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RaSan147/BackupSeeker/internal/archive"
	"github.com/RaSan147/BackupSeeker/internal/errors"
)

var archivesJSON bool

func init() {
	archivesCmd.Flags().BoolVar(&archivesJSON, "json", false, "Output in JSON format")
}

var archivesCmd = &cobra.Command{
	Use:   "archives <profile>",
	Short: "List a profile's backup archives",
	Long: `List the profile's backup archives, newest first.

Regular backups and the safety snapshots taken before restores are listed
together, ordered by modification time.

Examples:
  # List archives
  backupseeker archives Skyrim

  # Output as JSON
  backupseeker archives Skyrim --json`,
	Args: cobra.ExactArgs(1),
	RunE: runArchives,
}

func runArchives(_ *cobra.Command, args []string) error {
	return runArchivesWithWriter(os.Stdout, args[0])
}

// runArchivesWithWriter allows injecting a writer for testing.
func runArchivesWithWriter(w io.Writer, idOrName string) error {
	app, err := openApp()
	if err != nil {
		return err
	}

	p, err := app.ResolveProfile(idOrName)
	if err != nil {
		return err
	}

	records, err := app.Coordinator.ListArchives(p.ID)
	if err != nil {
		return errors.Wrapf(err, "listing archives for %s", p.Name)
	}

	if archivesJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(records), "encoding output")
	}

	fmt.Fprintf(w, "%sProfile: %s%s\n", colorCyan+colorBold, p.Name, colorReset)

	if len(records) == 0 {
		fmt.Fprintf(w, "  %s(no archives)%s\n", colorGray, colorReset)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %sNAME%s\t%sKIND%s\t%sMODIFIED%s\t%sSIZE%s\n",
		colorBold, colorReset, colorBold, colorReset, colorBold, colorReset, colorBold, colorReset)

	for _, r := range records {
		kindColor := colorGreen
		if r.Kind == archive.KindSafety {
			kindColor = colorYellow
		}
		fmt.Fprintf(tw, "  %s\t%s%s%s\t%s\t%s\n",
			r.Name, kindColor, r.Kind, colorReset,
			r.ModTime.Format("2006-01-02 15:04:05"), formatSize(r.Size))
	}
	return errors.Wrap(tw.Flush(), "flushing output")
}
