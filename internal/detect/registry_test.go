package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaSan147/BackupSeeker/internal/logging"
)

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestRegistry(t *testing.T, jsoncPath, tomlPath string, opts ...Option) *Registry {
	t.Helper()
	r := NewRegistry(jsoncPath, tomlPath, logging.ForTest(t), opts...)
	r.Reload()
	return r
}

func TestReload_EmbeddedDefaults(t *testing.T) {
	r := newTestRegistry(t, "", "")

	ids := map[string]bool{}
	for _, d := range r.Descriptors() {
		ids[d.GameID] = true
	}
	// Compiled catalog plus the embedded JSONC defaults.
	assert.True(t, ids["ac3_remastered"])
	assert.True(t, ids["skyrim"])
	assert.True(t, ids["stardew_valley"])
	assert.True(t, ids["minecraft_java"])
}

func TestReload_CommentStripping(t *testing.T) {
	path := writeCatalog(t, "games.jsonc", `
// leading comment
[
  // entry comment
  {"id": "one", "name": "One", "save_paths": ["~/one"]}
]
`)
	r := newTestRegistry(t, path, "")

	d, ok := r.Get("one")
	require.True(t, ok)
	assert.Equal(t, "One", d.DisplayName)
}

func TestReload_BadEntryIsolated(t *testing.T) {
	path := writeCatalog(t, "games.jsonc", `[
  {"id": "good", "name": "Good", "save_paths": ["~/good"]},
  {"id": "no_paths", "name": "Broken"},
  {"id": "bad_key", "name": "Bad", "save_paths": ["~/x"], "registry_keys": [["only-one"]]},
  {"id": "also_good", "name": "Also Good", "save_paths": ["~/also"]}
]`)
	r := newTestRegistry(t, path, "")

	_, ok := r.Get("good")
	assert.True(t, ok)
	_, ok = r.Get("also_good")
	assert.True(t, ok)
	_, ok = r.Get("no_paths")
	assert.False(t, ok)
	_, ok = r.Get("bad_key")
	assert.False(t, ok)
}

func TestReload_UnparsableCatalogDropsSourceOnly(t *testing.T) {
	path := writeCatalog(t, "games.jsonc", `{not an array`)
	r := newTestRegistry(t, path, "")

	// Compiled descriptors survive a broken data catalog.
	_, ok := r.Get("ac3_remastered")
	assert.True(t, ok)
}

func TestReload_DataOverridesBuiltin(t *testing.T) {
	path := writeCatalog(t, "games.jsonc", `[
  {"id": "ac3_remastered", "name": "AC3 Custom", "save_paths": ["~/custom"]}
]`)
	r := newTestRegistry(t, path, "")

	d, ok := r.Get("ac3_remastered")
	require.True(t, ok)
	assert.Equal(t, "AC3 Custom", d.DisplayName)
	assert.Equal(t, []string{"~/custom"}, d.SavePaths)
}

func TestReload_TOMLSupplementWinsLast(t *testing.T) {
	jsonc := writeCatalog(t, "games.jsonc", `[
  {"id": "shared", "name": "From JSONC", "save_paths": ["~/a"]}
]`)
	tomlPath := writeCatalog(t, "games.toml", `
[[games]]
id = "shared"
name = "From TOML"
save_paths = ["~/b"]

[[games]]
id = "toml_only"
name = "TOML Only"
save_paths = ["~/c"]
file_patterns = ["*.sav"]
`)
	r := newTestRegistry(t, jsonc, tomlPath)

	d, ok := r.Get("shared")
	require.True(t, ok)
	assert.Equal(t, "From TOML", d.DisplayName)

	d, ok = r.Get("toml_only")
	require.True(t, ok)
	assert.Equal(t, []string{"*.sav"}, d.FilePatterns)
}

func TestReload_RebuildsFromScratch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"id": "transient", "name": "Transient", "save_paths": ["~/t"]}
]`), 0o644))

	r := newTestRegistry(t, path, "")
	_, ok := r.Get("transient")
	require.True(t, ok)

	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))
	r.Reload()
	_, ok = r.Get("transient")
	assert.False(t, ok)
}

func TestIsDetected_SavePathExists(t *testing.T) {
	saveDir := t.TempDir()
	t.Setenv("BSEEK_DETECT_HOME", saveDir)
	r := newTestRegistry(t, "", "")

	d := Descriptor{
		GameID:      "probe",
		DisplayName: "Probe",
		SavePaths:   []string{"$BSEEK_DETECT_HOME/missing", "$BSEEK_DETECT_HOME"},
	}
	assert.True(t, r.IsDetected(d))

	d.SavePaths = []string{"$BSEEK_DETECT_HOME/missing"}
	assert.False(t, r.IsDetected(d))
}

func TestIsDetected_RegistryFallback(t *testing.T) {
	installDir := t.TempDir()
	lookup := LookupFunc(func(keyPath, valueName string) (string, error) {
		if keyPath == `HKEY_LOCAL_MACHINE\SOFTWARE\Probe` && valueName == "Install" {
			return installDir, nil
		}
		return "", os.ErrNotExist
	})
	r := newTestRegistry(t, "", "", WithLookup(lookup))

	d := Descriptor{
		GameID:       "probe",
		DisplayName:  "Probe",
		SavePaths:    []string{filepath.Join(t.TempDir(), "nope")},
		RegistryKeys: []RegistryKey{{KeyPath: `HKEY_LOCAL_MACHINE\SOFTWARE\Probe`, ValueName: "Install"}},
	}
	assert.True(t, r.IsDetected(d))

	// Lookup errors are "not detected", never fatal.
	d.RegistryKeys = []RegistryKey{{KeyPath: `HKEY_LOCAL_MACHINE\SOFTWARE\Other`, ValueName: "Install"}}
	assert.False(t, r.IsDetected(d))
}

func TestToDraft(t *testing.T) {
	saveDir := t.TempDir()
	t.Setenv("BSEEK_DETECT_HOME", saveDir)
	r := newTestRegistry(t, "", "")

	d := Descriptor{
		GameID:       "probe",
		DisplayName:  "Probe",
		SavePaths:    []string{"$BSEEK_DETECT_HOME/missing", "$BSEEK_DETECT_HOME"},
		FilePatterns: []string{"*.sav"},
		Icon:         "🎮",
	}
	draft := r.ToDraft(d)

	assert.Equal(t, "probe", draft.GameID)
	assert.Equal(t, "Probe", draft.Name)
	assert.Equal(t, "$BSEEK_DETECT_HOME", draft.SavePath)
	assert.Equal(t, []string{"*.sav"}, draft.FilePatterns)
	assert.True(t, draft.UseCompression)
	assert.True(t, draft.ClearFolderOnRestore)
	assert.Equal(t, "🎮", draft.Icon)
}

func TestToDraft_FallsBackToFirstCandidate(t *testing.T) {
	r := newTestRegistry(t, "", "")

	d := Descriptor{
		GameID:      "probe",
		DisplayName: "Probe",
		SavePaths:   []string{filepath.Join(t.TempDir(), "a"), filepath.Join(t.TempDir(), "b")},
	}
	draft := r.ToDraft(d)
	assert.Equal(t, d.SavePaths[0], draft.SavePath)
}

func TestDetectAll(t *testing.T) {
	saveDir := t.TempDir()
	t.Setenv("BSEEK_DETECT_HOME", saveDir)

	jsonc := writeCatalog(t, "games.jsonc", `[
  {"id": "present", "name": "Present", "save_paths": ["$BSEEK_DETECT_HOME"]},
  {"id": "absent", "name": "Absent", "save_paths": ["$BSEEK_DETECT_HOME/nope"]}
]`)
	r := newTestRegistry(t, jsonc, "")

	drafts := r.DetectAll()
	ids := map[string]bool{}
	for _, d := range drafts {
		ids[d.GameID] = true
	}
	assert.True(t, ids["present"])
	assert.False(t, ids["absent"])
}
