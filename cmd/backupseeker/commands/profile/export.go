package profile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/RaSan147/BackupSeeker/internal/errors"
	"github.com/RaSan147/BackupSeeker/internal/profile"
	"github.com/RaSan147/BackupSeeker/pkg/fileutil"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json, yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	Cmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [profile]",
	Short: "Export profiles",
	Long: `Export all profiles, or a single profile, as JSON or YAML.

Examples:
  # Export everything as JSON
  backupseeker profile export

  # Export one profile as YAML to a file
  backupseeker profile export Skyrim --format yaml -o skyrim.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(_ *cobra.Command, args []string) error {
	if exportOutput != "" {
		return runExportToFile(exportOutput, args)
	}
	return runExportWithWriter(os.Stdout, args)
}

// exportEntry is the export wire shape; unlike the persisted store it
// includes the active file patterns.
type exportEntry struct {
	ID                   string   `json:"id" yaml:"id"`
	Name                 string   `json:"name" yaml:"name"`
	SavePath             string   `json:"save_path" yaml:"save_path"`
	FilePatterns         []string `json:"file_patterns" yaml:"file_patterns"`
	UseCompression       bool     `json:"use_compression" yaml:"use_compression"`
	ClearFolderOnRestore bool     `json:"clear_folder_on_restore" yaml:"clear_folder_on_restore"`
	PluginID             string   `json:"plugin_id,omitempty" yaml:"plugin_id,omitempty"`
	Icon                 string   `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// collectEntries gathers the profiles to export.
func collectEntries(args []string) ([]exportEntry, error) {
	app, err := openApp()
	if err != nil {
		return nil, err
	}

	var profiles []*profile.Profile
	if len(args) == 1 {
		p, err := app.ResolveProfile(args[0])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	} else {
		profiles = app.Store.List()
	}

	entries := make([]exportEntry, len(profiles))
	for i, p := range profiles {
		entries[i] = exportEntry{
			ID:                   p.ID,
			Name:                 p.Name,
			SavePath:             p.SavePath,
			FilePatterns:         p.FilePatterns,
			UseCompression:       p.UseCompression,
			ClearFolderOnRestore: p.ClearFolderOnRestore,
			PluginID:             p.PluginID,
			Icon:                 p.Icon,
		}
	}
	return entries, nil
}

// runExportToFile writes the export atomically to a file.
func runExportToFile(path string, args []string) error {
	entries, err := collectEntries(args)
	if err != nil {
		return err
	}

	switch exportFormat {
	case "json":
		return errors.Wrap(fileutil.AtomicWriteJSON(path, entries), "writing export")
	case "yaml":
		return errors.Wrap(fileutil.AtomicWriteYAML(path, entries), "writing export")
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", exportFormat),
			"Valid formats: json, yaml")
	}
}

// runExportWithWriter allows injecting a writer for testing.
func runExportWithWriter(w io.Writer, args []string) error {
	entries, err := collectEntries(args)
	if err != nil {
		return err
	}

	switch exportFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(entries), "encoding output")
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return errors.Wrap(err, "encoding output")
		}
		_, err = fmt.Fprint(w, string(data))
		return errors.Wrap(err, "writing output")
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", exportFormat),
			"Valid formats: json, yaml")
	}
}
