package detect

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaSan147/BackupSeeker/internal/logging"
)

func TestIconStore_LiteralPassThrough(t *testing.T) {
	s := NewIconStore(t.TempDir())

	for _, icon := range []string{"", "⚔️", "🐉", "star"} {
		got, err := s.Resolve("game", icon)
		require.NoError(t, err)
		assert.Equal(t, icon, got)
	}
}

func TestIconStore_AlreadyCachedPassThrough(t *testing.T) {
	dir := t.TempDir()
	s := NewIconStore(dir)

	cached := filepath.Join(dir, "game.png")
	got, err := s.Resolve("game", cached)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestIconStore_FetchesRemoteURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	s := NewIconStore(dir)

	got, err := s.Resolve("skyrim", srv.URL+"/icons/dragon.png?size=64")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "skyrim.png"), got)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestIconStore_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewIconStore(t.TempDir())
	_, err := s.Resolve("skyrim", srv.URL+"/missing.png")
	assert.Error(t, err)
}

func TestIconStore_CopiesLocalFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "art.ico")
	require.NoError(t, os.WriteFile(src, []byte("ico-bytes"), 0o644))

	dir := t.TempDir()
	s := NewIconStore(dir)

	got, err := s.Resolve("stardew", src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "stardew.ico"), got)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "ico-bytes", string(data))
}

func TestIconStore_MissingLocalFile(t *testing.T) {
	s := NewIconStore(t.TempDir())
	_, err := s.Resolve("game", filepath.Join(t.TempDir(), "gone.png"))
	assert.Error(t, err)
}

func TestRegistry_IconFailureYieldsEmptyIcon(t *testing.T) {
	r := NewRegistry("", "", logging.ForTest(t), WithIconStore(NewIconStore(t.TempDir())))
	r.Reload()

	d := Descriptor{
		GameID:      "probe",
		DisplayName: "Probe",
		SavePaths:   []string{"~/probe"},
		Icon:        filepath.Join(t.TempDir(), "missing.png"),
	}
	draft := r.ToDraft(d)
	assert.Empty(t, draft.Icon)
}
