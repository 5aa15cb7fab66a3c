package backup

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/RaSan147/BackupSeeker/internal/archive"
	"github.com/RaSan147/BackupSeeker/internal/pathcodec"
	"github.com/RaSan147/BackupSeeker/internal/profile"
)

// Coordinator orchestrates backup and restore runs against the real
// filesystem. Operations are blocking and run to completion or failure;
// callers wanting responsiveness must offload the call themselves.
type Coordinator struct {
	store *profile.Store
	log   *slog.Logger
	now   func() time.Time
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithClock overrides the coordinator's time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// NewCoordinator creates a coordinator over the given store.
func NewCoordinator(store *profile.Store, log *slog.Logger, opts ...Option) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	c := &Coordinator{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunBackup performs a backup for the profile with the given ID and returns
// the created archive's path. The source is never mutated.
//
// Returns archive.ErrSourceNotFound if the resolved save path does not exist
// and archive.ErrEmptySource if it contains no matching files.
func (c *Coordinator) RunBackup(profileID string) (string, error) {
	p, err := c.store.Get(profileID)
	if err != nil {
		return "", err
	}

	source := pathcodec.Expand(p.SavePath)
	c.log.Debug("validating backup source", "profile", p.Name, "source", source)
	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(archive.ErrSourceNotFound, "%s", source)
		}
		return "", errors.Wrapf(err, "stat %s", source)
	}

	destDir, err := c.store.BackupDirFor(p.Name)
	if err != nil {
		return "", err
	}
	destFile := filepath.Join(destDir, p.Name+"_"+archive.Timestamp(c.now())+".zip")

	c.log.Debug("archiving", "profile", p.Name, "dest", destFile)
	rec, err := archive.Create(source, destFile, p.FilePatterns, p.UseCompression)
	if err != nil {
		return "", err
	}

	c.log.Info("backup complete", "profile", p.Name, "archive", rec.Name, "bytes", rec.Size)
	return rec.Path, nil
}

// RunRestore restores the given archive into the profile's save path.
//
// The archive is validated before anything else, then the current target
// content (if any) is snapshotted into the safety directory, then the target
// is optionally cleared, then the archive is extracted. The safety snapshot
// always completes (or is correctly skipped for a missing or empty target)
// before any data in the target is destroyed or overwritten.
func (c *Coordinator) RunRestore(profileID, archivePath string) error {
	p, err := c.store.Get(profileID)
	if err != nil {
		return err
	}

	c.log.Debug("validating archive", "profile", p.Name, "archive", archivePath)
	if err := archive.Validate(archivePath); err != nil {
		return err
	}

	target := pathcodec.Expand(p.SavePath)

	if hasContent(target) {
		safetyDir, err := c.store.SafetyDirFor(p.Name)
		if err != nil {
			return err
		}
		safetyFile := filepath.Join(safetyDir, "SAFETY_"+archive.Timestamp(c.now())+".zip")

		c.log.Debug("snapshotting", "profile", p.Name, "snapshot", safetyFile)
		// The snapshot archives the target wholesale, ignoring the profile's
		// file patterns.
		if _, err := archive.Create(target, safetyFile, nil, true); err != nil {
			return errors.Wrap(err, "creating safety snapshot")
		}
	}

	if p.ClearFolderOnRestore {
		c.log.Debug("clearing", "profile", p.Name, "target", target)
		if err := os.RemoveAll(target); err != nil {
			return errors.Wrapf(err, "clearing %s", target)
		}
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", target)
	}

	c.log.Debug("extracting", "profile", p.Name, "archive", archivePath)
	if err := archive.Extract(archivePath, target); err != nil {
		return err
	}

	c.log.Info("restore complete", "profile", p.Name, "archive", filepath.Base(archivePath))
	return nil
}

// ListArchives returns the archive records for a profile, newest first.
func (c *Coordinator) ListArchives(profileID string) ([]archive.Record, error) {
	p, err := c.store.Get(profileID)
	if err != nil {
		return nil, err
	}

	regular := filepath.Join(c.store.BackupRoot(), p.Name)
	safety := filepath.Join(regular, profile.SafetyDirName)
	return archive.List(regular, safety)
}

// LatestRegular returns the newest regular archive for a profile, or an
// error when none exist.
func (c *Coordinator) LatestRegular(profileID string) (*archive.Record, error) {
	records, err := c.ListArchives(profileID)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Kind == archive.KindRegular {
			return &records[i], nil
		}
	}
	return nil, errors.Wrapf(ErrNoArchives, "profile %q", profileID)
}

// ErrNoArchives indicates a profile has no regular archives to restore from.
var ErrNoArchives = errors.New("no archives found")

// hasContent reports whether dir exists and contains at least one entry.
func hasContent(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) > 0
}
