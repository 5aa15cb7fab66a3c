package archive

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// TimestampLayout is the sortable timestamp embedded in archive filenames so
// lexical and chronological ordering coincide.
const TimestampLayout = "2006-01-02_15-04-05"

// Timestamp renders t in the archive filename layout.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Create walks sourceDir recursively and archives every file matching
// patterns into a zip file at destFile, preserving relative paths.
// An empty pattern set matches everything. Deflate compression is used when
// compress is true, store-only otherwise.
//
// Returns ErrSourceNotFound if sourceDir does not exist and ErrEmptySource
// if no files matched. A partially written destination is removed on failure.
func Create(sourceDir, destFile string, patterns []string, compress bool) (rec *Record, err error) {
	info, statErr := os.Stat(sourceDir)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return nil, errors.Wrapf(ErrSourceNotFound, "%s", sourceDir)
		}
		return nil, errors.Wrapf(statErr, "stat %s", sourceDir)
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(ErrSourceNotFound, "%s is not a directory", sourceDir)
	}

	var files []string
	walkErr := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if matchesAny(d.Name(), patterns) {
			files = append(files, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, "walking %s", sourceDir)
	}

	if len(files) == 0 {
		return nil, errors.Wrapf(ErrEmptySource, "%s", sourceDir)
	}

	out, err := os.Create(destFile)
	if err != nil {
		return nil, errors.Wrap(err, "creating archive file")
	}
	defer func() {
		if err != nil {
			out.Close()
			os.Remove(destFile)
		}
	}()

	method := zip.Store
	if compress {
		method = zip.Deflate
	}

	zw := zip.NewWriter(out)
	for _, file := range files {
		if err := addFile(zw, sourceDir, file, method); err != nil {
			zw.Close()
			return nil, errors.Wrapf(err, "archiving %s", file)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "finalizing archive")
	}
	if err := out.Close(); err != nil {
		return nil, errors.Wrap(err, "closing archive file")
	}

	st, err := os.Stat(destFile)
	if err != nil {
		return nil, errors.Wrap(err, "stat created archive")
	}

	return &Record{
		Path:    destFile,
		Name:    filepath.Base(destFile),
		Kind:    KindRegular,
		ModTime: st.ModTime(),
		Size:    st.Size(),
	}, nil
}

// addFile writes a single file entry with its path relative to sourceDir.
func addFile(zw *zip.Writer, sourceDir, file string, method uint16) error {
	rel, err := filepath.Rel(sourceDir, file)
	if err != nil {
		return errors.Wrap(err, "resolving relative path")
	}

	info, err := os.Stat(file)
	if err != nil {
		return errors.Wrap(err, "stat file")
	}

	hdr := &zip.FileHeader{
		Name:     filepath.ToSlash(rel),
		Method:   method,
		Modified: info.ModTime(),
	}
	hdr.SetMode(info.Mode())

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return errors.Wrap(err, "creating entry")
	}

	f, err := os.Open(file)
	if err != nil {
		return errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return errors.Wrap(err, "writing entry")
	}
	return nil
}

// Extract extracts all entries of archiveFile into destDir, creating it if
// absent. Entries are placed using their stored relative paths; any entry
// that would resolve outside destDir is rejected with ErrExtractionFailed
// before anything is written for it.
func Extract(archiveFile, destDir string) error {
	zr, err := zip.OpenReader(archiveFile)
	if err != nil {
		return errors.Wrapf(ErrArchiveCorrupt, "opening %s: %v", archiveFile, err)
	}
	defer zr.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return errors.Wrap(err, "creating destination directory")
	}

	for _, f := range zr.File {
		if err := extractEntry(f, destDir); err != nil {
			return err
		}
	}
	return nil
}

// Validate opens archiveFile and pre-checks every entry name, so a restore
// can refuse a bad archive before any destructive step. It returns
// ErrArchiveCorrupt when the file cannot be opened as a zip and
// ErrExtractionFailed when an entry would escape the destination.
func Validate(archiveFile string) error {
	zr, err := zip.OpenReader(archiveFile)
	if err != nil {
		return errors.Wrapf(ErrArchiveCorrupt, "opening %s: %v", archiveFile, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if _, err := entryPath(f.Name, "."); err != nil {
			return err
		}
	}
	return nil
}

// entryPath resolves an entry name beneath destDir, rejecting traversal.
func entryPath(name, destDir string) (string, error) {
	cleanDest := filepath.Clean(destDir)
	target := filepath.Join(cleanDest, filepath.FromSlash(name))
	if target != cleanDest && !strings.HasPrefix(target, cleanDest+string(os.PathSeparator)) {
		return "", errors.Wrapf(ErrExtractionFailed, "entry %q escapes destination", name)
	}
	return target, nil
}

func extractEntry(f *zip.File, destDir string) error {
	target, err := entryPath(f.Name, destDir)
	if err != nil {
		return err
	}

	if f.FileInfo().IsDir() {
		return errors.Wrap(os.MkdirAll(target, 0o755), "creating directory entry")
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrap(err, "creating parent directory")
	}

	rc, err := f.Open()
	if err != nil {
		return errors.Wrapf(ErrExtractionFailed, "opening entry %q: %v", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "creating %s", target)
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return errors.Wrapf(ErrExtractionFailed, "writing %s: %v", target, err)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", target)
	}

	if mode := f.Mode(); mode != 0 {
		if err := os.Chmod(target, mode.Perm()); err != nil {
			return errors.Wrapf(err, "setting permissions on %s", target)
		}
	}
	return nil
}

// matchesAny reports whether name matches at least one glob pattern.
// A nil or empty pattern set matches everything.
func matchesAny(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if p == "*" || p == "" {
			return true
		}
		if ok, err := filepath.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}
