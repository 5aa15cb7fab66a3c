package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(dir, 0))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent
	require.NoError(t, EnsureDir(dir, 0))
}

func TestConfigFile_UnderConfigDir(t *testing.T) {
	assert.Equal(t, filepath.Join(ConfigDir(), "gsm_config.json"), ConfigFile())
	assert.Equal(t, filepath.Join(ConfigDir(), "games.jsonc"), CatalogFile())
	assert.Equal(t, filepath.Join(CacheDir(), "icons"), IconCacheDir())
}

func TestDefaultBackupRoot(t *testing.T) {
	root := DefaultBackupRoot()
	assert.Equal(t, "backups", filepath.Base(root))
}
