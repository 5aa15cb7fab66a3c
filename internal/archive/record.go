package archive

import (
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for archive operations.
var (
	// ErrSourceNotFound indicates the backup source directory does not exist.
	ErrSourceNotFound = errors.New("source path not found")

	// ErrEmptySource indicates the source directory contains no matching files.
	ErrEmptySource = errors.New("source folder is empty")

	// ErrArchiveCorrupt indicates the selected archive cannot be opened.
	ErrArchiveCorrupt = errors.New("archive corrupt")

	// ErrExtractionFailed indicates an entry could not be written, including
	// entries whose resolved output path escapes the destination directory.
	ErrExtractionFailed = errors.New("extraction failed")
)

// Kind distinguishes explicit backups from automatic pre-restore snapshots.
type Kind string

const (
	// KindRegular marks an archive created by an explicit backup.
	KindRegular Kind = "Regular"
	// KindSafety marks a snapshot auto-created immediately before a restore.
	KindSafety Kind = "Safety"
)

// Record is a derived view of one archive file on disk. Records are never
// persisted; they are rebuilt from the filesystem on every listing.
type Record struct {
	// Path is the absolute location of the archive file.
	Path string `json:"path"`

	// Name is the archive filename.
	Name string `json:"name"`

	// Kind reports whether this is a regular backup or a safety snapshot.
	Kind Kind `json:"kind"`

	// ModTime is the file's modification time.
	ModTime time.Time `json:"mod_time"`

	// Size is the file's length in bytes.
	Size int64 `json:"size"`
}

// List returns every *.zip file under the regular and safety directories of
// a profile as Records, sorted by modification time descending with kind and
// name as tiebreaks. Missing directories contribute no records.
func List(regularDir, safetyDir string) ([]Record, error) {
	var records []Record

	for _, src := range []struct {
		dir  string
		kind Kind
	}{
		{dir: regularDir, kind: KindRegular},
		{dir: safetyDir, kind: KindSafety},
	} {
		if src.dir == "" {
			continue
		}
		found, err := scanDir(src.dir, src.kind)
		if err != nil {
			return nil, err
		}
		records = append(records, found...)
	}

	slices.SortFunc(records, func(a, b Record) int {
		switch {
		case a.ModTime.After(b.ModTime):
			return -1
		case a.ModTime.Before(b.ModTime):
			return 1
		}
		if a.Kind != b.Kind {
			if a.Kind == KindRegular {
				return -1
			}
			return 1
		}
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})

	return records, nil
}

func scanDir(dir string, kind Kind) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading %s", dir)
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".zip" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		records = append(records, Record{
			Path:    filepath.Join(dir, entry.Name()),
			Name:    entry.Name(),
			Kind:    kind,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}
	return records, nil
}
