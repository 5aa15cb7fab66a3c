package detect

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaSan147/BackupSeeker/cmd/backupseeker/commands/flags"
	"github.com/RaSan147/BackupSeeker/internal/config"
)

// setTestConfig installs a catalog with one detected and one absent game.
func setTestConfig(t *testing.T) {
	t.Helper()

	saveDir := t.TempDir()
	t.Setenv("BSEEK_DETECT_CMD", saveDir)

	dir := t.TempDir()
	catalog := filepath.Join(dir, "games.jsonc")
	require.NoError(t, os.WriteFile(catalog, []byte(`[
  {"id": "present", "name": "Present Game", "save_paths": ["$BSEEK_DETECT_CMD"]},
  {"id": "absent", "name": "Absent Game", "save_paths": ["$BSEEK_DETECT_CMD/nope"]}
]`), 0o644))

	flags.SetRuntimeConfig(&config.Config{
		Version:         1,
		ProfileFile:     filepath.Join(dir, "gsm_config.json"),
		CatalogFile:     catalog,
		TOMLCatalogFile: filepath.Join(dir, "games.toml"),
		IconCacheDir:    filepath.Join(dir, "icons"),
	})
}

func TestDetectList(t *testing.T) {
	setTestConfig(t)

	listJSON = false
	var buf bytes.Buffer
	require.NoError(t, runListWithWriter(&buf))

	out := buf.String()
	assert.Contains(t, out, "Present Game")
	assert.Contains(t, out, "detected")
	assert.Contains(t, out, "Absent Game")
	assert.Contains(t, out, "not found")
}

func TestDetectList_JSON(t *testing.T) {
	setTestConfig(t)

	listJSON = true
	defer func() { listJSON = false }()

	var buf bytes.Buffer
	require.NoError(t, runListWithWriter(&buf))

	var entries []listEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))

	byID := map[string]listEntry{}
	for _, e := range entries {
		byID[e.GameID] = e
	}
	assert.True(t, byID["present"].Detected)
	assert.False(t, byID["absent"].Detected)
}

func TestImport_ByGameID(t *testing.T) {
	setTestConfig(t)

	var buf bytes.Buffer
	require.NoError(t, runImportWithIO(strings.NewReader(""), &buf, []string{"present"}))
	assert.Contains(t, buf.String(), "Imported")

	// A second import of the same game is refused.
	buf.Reset()
	require.NoError(t, runImportWithIO(strings.NewReader(""), &buf, []string{"present"}))
	assert.Contains(t, buf.String(), "Skipped")
}

func TestImport_UnknownGameID(t *testing.T) {
	setTestConfig(t)

	var buf bytes.Buffer
	err := runImportWithIO(strings.NewReader(""), &buf, []string{"never_heard_of_it"})
	assert.Error(t, err)
}

func TestImport_All(t *testing.T) {
	setTestConfig(t)

	importAll = true
	defer func() { importAll = false }()

	var buf bytes.Buffer
	require.NoError(t, runImportWithIO(strings.NewReader(""), &buf, nil))
	assert.Contains(t, buf.String(), "Present Game")
	assert.NotContains(t, buf.String(), "Absent Game")
}

func TestImport_PromptSelection(t *testing.T) {
	setTestConfig(t)

	// One detected game auto-selects without prompting.
	var buf bytes.Buffer
	require.NoError(t, runImportWithIO(strings.NewReader("\n"), &buf, nil))
	assert.Contains(t, buf.String(), "Imported")
}
