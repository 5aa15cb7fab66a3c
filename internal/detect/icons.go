package detect

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/RaSan147/BackupSeeker/internal/paths"
)

// maxLiteralIconLen separates short literals (emoji, glyph ids) from paths.
const maxLiteralIconLen = 8

// IconStore materializes descriptor icons into a local cache directory so
// profiles never reference files that can disappear with the source.
type IconStore struct {
	dir    string
	client *http.Client
}

// NewIconStore caches icons under dir. The HTTP client times out after ten
// seconds so a dead icon host cannot stall detection.
func NewIconStore(dir string) *IconStore {
	return &IconStore{
		dir:    dir,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve returns the effective icon value for a game:
//
//   - short literals (emoji) and values already inside the cache directory
//     pass through unchanged
//   - remote URLs are fetched into the cache, keyed by game id
//   - local file paths are copied into the cache, keyed by game id
//
// Fetch and copy failures return an error so the caller can fall back to an
// empty icon; they never abort detection.
func (s *IconStore) Resolve(gameID, icon string) (string, error) {
	if icon == "" || len(icon) <= maxLiteralIconLen && !strings.ContainsAny(icon, `/\`) {
		return icon, nil
	}
	if within(s.dir, icon) {
		return icon, nil
	}

	if strings.HasPrefix(icon, "http://") || strings.HasPrefix(icon, "https://") {
		return s.fetch(gameID, icon)
	}
	return s.copyIn(gameID, icon)
}

func (s *IconStore) fetch(gameID, url string) (string, error) {
	resp, err := s.client.Get(url)
	if err != nil {
		return "", errors.Wrapf(err, "fetching icon for %s", gameID)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf("fetching icon for %s: status %d", gameID, resp.StatusCode)
	}
	return s.write(gameID, extOf(url), resp.Body)
}

func (s *IconStore) copyIn(gameID, src string) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", errors.Wrapf(err, "reading icon for %s", gameID)
	}
	defer f.Close()
	return s.write(gameID, filepath.Ext(src), f)
}

func (s *IconStore) write(gameID, ext string, src io.Reader) (string, error) {
	if ext == "" {
		ext = ".png"
	}
	if err := paths.EnsureDir(s.dir, 0); err != nil {
		return "", err
	}
	dest := filepath.Join(s.dir, gameID+ext)
	f, err := os.Create(dest)
	if err != nil {
		return "", errors.Wrapf(err, "caching icon for %s", gameID)
	}
	defer f.Close()
	if _, err := io.Copy(f, src); err != nil {
		os.Remove(dest)
		return "", errors.Wrapf(err, "caching icon for %s", gameID)
	}
	return dest, nil
}

// within reports whether path sits under dir.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// extOf extracts a file extension from a URL, ignoring query strings.
func extOf(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	return filepath.Ext(url)
}
