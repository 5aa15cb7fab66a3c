package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under dir from a map of relative path to content.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// readTree returns all regular files under dir keyed by slash-separated
// relative path.
func readTree(t *testing.T, dir string) map[string]string {
	t.Helper()
	found := map[string]string{}
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		found[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return found
}

func TestCreateExtract_RoundTrip(t *testing.T) {
	src := t.TempDir()
	files := map[string]string{
		"save1.dat":        "alpha",
		"nested/save2.dat": "beta",
		"nested/deep/cfg":  "gamma",
	}
	writeTree(t, src, files)

	dest := filepath.Join(t.TempDir(), "out.zip")
	rec, err := Create(src, dest, nil, true)
	require.NoError(t, err)
	assert.Equal(t, KindRegular, rec.Kind)
	assert.Equal(t, "out.zip", rec.Name)
	assert.Positive(t, rec.Size)

	target := t.TempDir()
	require.NoError(t, Extract(dest, target))
	assert.Equal(t, files, readTree(t, target))
}

func TestCreate_StoreOnly(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"a.txt": "uncompressed content"})

	dest := filepath.Join(t.TempDir(), "out.zip")
	_, err := Create(src, dest, nil, false)
	require.NoError(t, err)

	zr, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer zr.Close()
	require.Len(t, zr.File, 1)
	assert.Equal(t, zip.Store, zr.File[0].Method)
}

func TestCreate_Patterns(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"slot1.sav":  "keep",
		"notes.txt":  "skip",
		"sub/s2.sav": "keep",
	})

	dest := filepath.Join(t.TempDir(), "out.zip")
	_, err := Create(src, dest, []string{"*.sav"}, true)
	require.NoError(t, err)

	target := t.TempDir()
	require.NoError(t, Extract(dest, target))
	got := readTree(t, target)
	assert.Equal(t, map[string]string{"slot1.sav": "keep", "sub/s2.sav": "keep"}, got)
}

func TestCreate_SourceNotFound(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.zip")
	_, err := Create(filepath.Join(t.TempDir(), "missing"), dest, nil, true)
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.NoFileExists(t, dest)
}

func TestCreate_EmptySource(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.zip")
	_, err := Create(t.TempDir(), dest, nil, true)
	assert.ErrorIs(t, err, ErrEmptySource)
	assert.NoFileExists(t, dest)
}

func TestCreate_NoPatternMatch(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"readme.md": "x"})

	_, err := Create(src, filepath.Join(t.TempDir(), "out.zip"), []string{"*.sav"}, true)
	assert.ErrorIs(t, err, ErrEmptySource)
}

// writeZip builds a zip file with the given entry names and contents,
// bypassing Create so hostile entry names can be tested.
func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestExtract_RejectsTraversal(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "evil.zip")
	writeZip(t, zipPath, map[string]string{"../escape.txt": "pwn"})

	parent := t.TempDir()
	dest := filepath.Join(parent, "target")

	err := Extract(zipPath, dest)
	require.ErrorIs(t, err, ErrExtractionFailed)
	assert.NoFileExists(t, filepath.Join(parent, "escape.txt"))
}

func TestExtract_CorruptArchive(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.zip")
	require.NoError(t, os.WriteFile(bad, []byte("not a zip"), 0o644))

	err := Extract(bad, t.TempDir())
	assert.ErrorIs(t, err, ErrArchiveCorrupt)
}

func TestExtract_CreatesDestination(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"f": "v"})
	zipPath := filepath.Join(t.TempDir(), "a.zip")
	_, err := Create(src, zipPath, nil, true)
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "does", "not", "exist")
	require.NoError(t, Extract(zipPath, dest))
	assert.FileExists(t, filepath.Join(dest, "f"))
}

func TestValidate(t *testing.T) {
	good := filepath.Join(t.TempDir(), "good.zip")
	writeZip(t, good, map[string]string{"inside/file.txt": "ok"})
	assert.NoError(t, Validate(good))

	evil := filepath.Join(t.TempDir(), "evil.zip")
	writeZip(t, evil, map[string]string{"../../outside": "bad"})
	assert.ErrorIs(t, Validate(evil), ErrExtractionFailed)

	missing := filepath.Join(t.TempDir(), "missing.zip")
	assert.ErrorIs(t, Validate(missing), ErrArchiveCorrupt)
}

func TestList(t *testing.T) {
	regular := t.TempDir()
	safety := t.TempDir()

	old := filepath.Join(regular, "Demo_2023-01-01_10-00-00.zip")
	newer := filepath.Join(regular, "Demo_2024-01-01_10-00-00.zip")
	safe := filepath.Join(safety, "SAFETY_2023-06-01_10-00-00.zip")
	for _, p := range []string{old, newer, safe} {
		require.NoError(t, os.WriteFile(p, []byte("zipdata"), 0o644))
	}
	// Not a zip, must be ignored.
	require.NoError(t, os.WriteFile(filepath.Join(regular, "notes.txt"), []byte("x"), 0o644))

	base := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(old, base, base))
	require.NoError(t, os.Chtimes(safe, base.Add(10*time.Minute), base.Add(10*time.Minute)))
	require.NoError(t, os.Chtimes(newer, base.Add(20*time.Minute), base.Add(20*time.Minute)))

	records, err := List(regular, safety)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Demo_2024-01-01_10-00-00.zip", records[0].Name)
	assert.Equal(t, KindSafety, records[1].Kind)
	assert.Equal(t, "Demo_2023-01-01_10-00-00.zip", records[2].Name)
}

func TestList_MissingDirs(t *testing.T) {
	records, err := List(filepath.Join(t.TempDir(), "nope"), "")
	require.NoError(t, err)
	assert.Empty(t, records)
}
