package profile

import (
	"strings"

	"github.com/RaSan147/BackupSeeker/internal/pathcodec"
)

// DefaultFilePatterns matches every file in the save directory.
var DefaultFilePatterns = []string{"*"}

// Profile is a named backup target.
type Profile struct {
	// ID is a stable opaque identifier, assigned at creation and never
	// reassigned.
	ID string `json:"id"`

	// Name is the display name; it also derives the on-disk backup
	// subdirectory and must be non-empty.
	Name string `json:"name"`

	// SavePath is the portable path of the save directory. It may contain
	// environment-variable placeholders and is resolved to an absolute path
	// only at use time.
	SavePath string `json:"save_path"`

	// FilePatterns restricts which files are archived. It is intentionally
	// not persisted and resets to DefaultFilePatterns on every load.
	FilePatterns []string `json:"-"`

	// UseCompression selects deflate vs. store-only archiving.
	UseCompression bool `json:"use_compression"`

	// ClearFolderOnRestore empties the target directory before extracting.
	ClearFolderOnRestore bool `json:"clear_folder_on_restore"`

	// PluginID back-references the detection descriptor that produced this
	// profile; empty for manually created profiles.
	PluginID string `json:"plugin_id"`

	// Icon is an emoji or asset path. Purely cosmetic.
	Icon string `json:"icon"`
}

// Draft is a detection result not yet committed as a persisted Profile.
type Draft struct {
	GameID               string   `json:"game_id"`
	Name                 string   `json:"name"`
	SavePath             string   `json:"save_path"`
	FilePatterns         []string `json:"file_patterns,omitempty"`
	UseCompression       bool     `json:"use_compression"`
	ClearFolderOnRestore bool     `json:"clear_folder_on_restore"`
	Icon                 string   `json:"icon,omitempty"`
}

// normalizeSavePath reconstructs the portable form of a loaded save path.
//
// Paths written by older builds can embed an accidental absolute prefix
// before an environment-variable placeholder (e.g. "C:\...\%PUBLIC%\...");
// the prefix is stripped so only the contracted form remains. Paths that are
// not portable at all are re-contracted.
func normalizeSavePath(raw string) string {
	if raw == "" {
		return ""
	}

	if idx := firstPlaceholderIndex(raw); idx > 0 {
		raw = raw[idx:]
	}
	if strings.HasPrefix(raw, "%") || strings.HasPrefix(raw, "$") {
		return raw
	}
	return pathcodec.Contract(raw)
}

// firstPlaceholderIndex returns the position of the first % or $ in s, or -1.
func firstPlaceholderIndex(s string) int {
	p := strings.IndexByte(s, '%')
	d := strings.IndexByte(s, '$')
	switch {
	case p == -1:
		return d
	case d == -1:
		return p
	case p < d:
		return p
	default:
		return d
	}
}
