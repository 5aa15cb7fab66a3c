package profile

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/RaSan147/BackupSeeker/internal/pathcodec"
	"github.com/RaSan147/BackupSeeker/internal/paths"
	"github.com/RaSan147/BackupSeeker/pkg/fileutil"
)

// BackupMode selects how the backup root is derived.
type BackupMode string

const (
	// ModeCWD places backups under a backups folder in the current working
	// directory.
	ModeCWD BackupMode = "cwd"
	// ModeFixed places backups under a user-chosen path.
	ModeFixed BackupMode = "fixed"
)

// SafetyDirName is the per-profile subdirectory holding safety snapshots.
const SafetyDirName = "Safety"

// Sentinel errors for store operations.
var (
	// ErrProfileNotFound indicates no profile matches the given ID or name.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidProfile indicates a profile failed validation (empty name or
	// save path).
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrAlreadyImported indicates a draft's game ID matches an existing
	// profile's plugin ID.
	ErrAlreadyImported = errors.New("draft already imported")

	// ErrFixedPathRequired indicates fixed backup mode was requested without
	// a path.
	ErrFixedPathRequired = errors.New("fixed backup mode requires a path")

	// ErrPersistenceFailed indicates the configuration could not be written.
	// In-memory state remains authoritative for the session.
	ErrPersistenceFailed = errors.New("persisting configuration failed")
)

// Settings is the process-wide configuration owned by the store. Theme and
// window layout hints are opaque to the core and round-trip untouched.
type Settings struct {
	Theme           string
	WindowGeometry  string
	TableWidths     []int
	BackupMode      BackupMode
	BackupFixedPath string
}

// configFile is the persisted JSON shape of the store.
type configFile struct {
	Games              []Profile `json:"games"`
	Theme              string    `json:"theme"`
	WindowGeometry     string    `json:"window_geometry,omitempty"`
	TableWidths        []int     `json:"table_widths"`
	BackupLocationMode string    `json:"backup_location_mode"`
	BackupFixedPath    string    `json:"backup_fixed_path"`
	LastUpdated        string    `json:"last_updated"`
}

// Store is the durable record of named backup profiles and application
// settings. It is the sole writer of the persisted configuration file and
// assumes a single writer for the process lifetime.
type Store struct {
	path       string
	log        *slog.Logger
	games      map[string]*Profile
	settings   Settings
	backupRoot string
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the store's time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a store persisting to the given file path.
// Call Load before first use; the store starts empty.
func NewStore(path string, log *slog.Logger, opts ...Option) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{
		path:  path,
		log:   log,
		games: make(map[string]*Profile),
		settings: Settings{
			Theme:      "system",
			BackupMode: ModeCWD,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.updateBackupRoot()
	return s
}

// Load reads the persisted configuration. A missing file is not an error: the
// store starts empty. Structurally invalid content is quarantined by renaming
// the file with a .corrupted suffix and the store starts empty; this is
// logged, never fatal.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "reading %s", s.path)
	}

	var cfg configFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.log.Error("config file is corrupted, renaming and starting fresh",
			"path", s.path, "error", err)
		s.quarantine()
		s.games = make(map[string]*Profile)
		return nil
	}

	s.games = make(map[string]*Profile, len(cfg.Games))
	for i := range cfg.Games {
		p := cfg.Games[i]
		if p.ID == "" {
			continue
		}
		p.SavePath = normalizeSavePath(p.SavePath)
		p.FilePatterns = slices.Clone(DefaultFilePatterns)
		s.games[p.ID] = &p
	}

	s.settings.Theme = cfg.Theme
	if s.settings.Theme == "" {
		s.settings.Theme = "system"
	}
	s.settings.WindowGeometry = cfg.WindowGeometry
	s.settings.TableWidths = cfg.TableWidths
	if cfg.BackupLocationMode == string(ModeFixed) {
		s.settings.BackupMode = ModeFixed
	} else {
		s.settings.BackupMode = ModeCWD
	}
	s.settings.BackupFixedPath = cfg.BackupFixedPath

	s.updateBackupRoot()
	return nil
}

// quarantine moves the corrupt config aside non-destructively.
func (s *Store) quarantine() {
	bad := s.path + ".corrupted"
	if err := os.Rename(s.path, bad); err != nil {
		s.log.Error("failed to rename corrupted config file", "error", err)
	}
}

// Save writes the full store atomically: the content goes to a temporary file
// that replaces the target, so a write failure never corrupts the previous
// good file. Failures are wrapped in ErrPersistenceFailed; in-memory state
// stays authoritative either way.
func (s *Store) Save() error {
	cfg := configFile{
		Games:              make([]Profile, 0, len(s.games)),
		Theme:              s.settings.Theme,
		WindowGeometry:     s.settings.WindowGeometry,
		TableWidths:        s.settings.TableWidths,
		BackupLocationMode: string(s.settings.BackupMode),
		BackupFixedPath:    s.settings.BackupFixedPath,
		LastUpdated:        s.now().Format(time.RFC3339),
	}
	for _, p := range s.List() {
		cfg.Games = append(cfg.Games, *p)
	}

	if err := paths.EnsureDir(filepath.Dir(s.path), 0); err != nil {
		s.log.Error("config save failed", "error", err)
		return errors.Wrapf(ErrPersistenceFailed, "creating config directory: %v", err)
	}
	if err := fileutil.AtomicWriteJSON(s.path, cfg); err != nil {
		s.log.Error("config save failed", "error", err)
		return errors.Wrapf(ErrPersistenceFailed, "%v", err)
	}
	return nil
}

// List returns all profiles sorted by name, then ID.
func (s *Store) List() []*Profile {
	out := make([]*Profile, 0, len(s.games))
	for _, p := range s.games {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *Profile) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Get returns the profile with the given ID.
func (s *Store) Get(id string) (*Profile, error) {
	p, ok := s.games[id]
	if !ok {
		return nil, errors.Wrapf(ErrProfileNotFound, "id %q", id)
	}
	return p, nil
}

// Resolve finds a profile by ID, falling back to an exact name match when the
// name is unambiguous.
func (s *Store) Resolve(idOrName string) (*Profile, error) {
	if p, ok := s.games[idOrName]; ok {
		return p, nil
	}
	var match *Profile
	for _, p := range s.games {
		if p.Name == idOrName {
			if match != nil {
				return nil, errors.Wrapf(ErrProfileNotFound, "name %q is ambiguous", idOrName)
			}
			match = p
		}
	}
	if match == nil {
		return nil, errors.Wrapf(ErrProfileNotFound, "%q", idOrName)
	}
	return match, nil
}

// Create validates and stores a manually created profile, assigns it a fresh
// ID, and persists immediately. The save path is cleaned and contracted to
// its portable form.
func (s *Store) Create(p Profile) (*Profile, error) {
	if err := validate(&p); err != nil {
		return nil, err
	}
	p.ID = s.newID("manual")
	if len(p.FilePatterns) == 0 {
		p.FilePatterns = slices.Clone(DefaultFilePatterns)
	}
	s.games[p.ID] = &p
	return &p, s.Save()
}

// AddFromDraft builds a new profile from a detection draft, assigns a fresh
// ID embedding a timestamp component, stores it, and persists immediately.
// A draft whose game ID matches an existing profile's plugin ID is refused
// with ErrAlreadyImported.
func (s *Store) AddFromDraft(d Draft) (*Profile, error) {
	for _, p := range s.games {
		if p.PluginID != "" && p.PluginID == d.GameID {
			return nil, errors.Wrapf(ErrAlreadyImported, "game %q", d.GameID)
		}
	}

	p := Profile{
		Name:                 d.Name,
		SavePath:             d.SavePath,
		FilePatterns:         slices.Clone(d.FilePatterns),
		UseCompression:       d.UseCompression,
		ClearFolderOnRestore: d.ClearFolderOnRestore,
		PluginID:             d.GameID,
		Icon:                 d.Icon,
	}
	if err := validate(&p); err != nil {
		return nil, err
	}
	p.ID = s.newID("plugin_" + d.GameID)
	if len(p.FilePatterns) == 0 {
		p.FilePatterns = slices.Clone(DefaultFilePatterns)
	}
	s.games[p.ID] = &p
	return &p, s.Save()
}

// Update replaces an existing profile after revalidating its name and save
// path, then persists. The profile ID cannot change.
func (s *Store) Update(p Profile) error {
	existing, ok := s.games[p.ID]
	if !ok {
		return errors.Wrapf(ErrProfileNotFound, "id %q", p.ID)
	}
	if err := validate(&p); err != nil {
		return err
	}
	if len(p.FilePatterns) == 0 {
		p.FilePatterns = existing.FilePatterns
	}
	s.games[p.ID] = &p
	return s.Save()
}

// Delete removes a profile and persists. Previously created archive files are
// left untouched.
func (s *Store) Delete(id string) error {
	if _, ok := s.games[id]; !ok {
		return errors.Wrapf(ErrProfileNotFound, "id %q", id)
	}
	delete(s.games, id)
	return s.Save()
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() Settings {
	cp := s.settings
	cp.TableWidths = slices.Clone(s.settings.TableWidths)
	return cp
}

// SetTheme updates the theme and persists.
func (s *Store) SetTheme(theme string) error {
	s.settings.Theme = theme
	return s.Save()
}

// SetWindowGeometry updates the opaque window layout hint and persists.
func (s *Store) SetWindowGeometry(geometry string) error {
	s.settings.WindowGeometry = geometry
	return s.Save()
}

// SetTableWidths updates the opaque table layout hint and persists.
func (s *Store) SetTableWidths(widths []int) error {
	s.settings.TableWidths = slices.Clone(widths)
	return s.Save()
}

// SetBackupRootMode updates the backup-root policy, recomputes the effective
// backup root, ensures it exists, and persists. The fixed path is stored as
// given by the user; it is expanded only when the effective root is computed.
func (s *Store) SetBackupRootMode(mode BackupMode, fixedPath string) error {
	switch mode {
	case ModeCWD:
		s.settings.BackupMode = ModeCWD
		s.settings.BackupFixedPath = ""
	case ModeFixed:
		fixedPath = pathcodec.CleanInput(fixedPath)
		if fixedPath == "" {
			return ErrFixedPathRequired
		}
		s.settings.BackupMode = ModeFixed
		s.settings.BackupFixedPath = fixedPath
	default:
		return errors.Newf("unknown backup mode %q", mode)
	}

	s.updateBackupRoot()
	if err := paths.EnsureDir(s.backupRoot, 0); err != nil {
		return errors.Wrapf(err, "creating backup root %s", s.backupRoot)
	}
	return s.Save()
}

// BackupRoot returns the effective backup root directory.
func (s *Store) BackupRoot() string {
	return s.backupRoot
}

// BackupDirFor returns (creating if absent) the regular backup directory for
// a profile name.
func (s *Store) BackupDirFor(profileName string) (string, error) {
	dir := filepath.Join(s.backupRoot, profileName)
	if err := paths.EnsureDir(dir, 0); err != nil {
		return "", errors.Wrapf(err, "creating backup directory %s", dir)
	}
	return dir, nil
}

// SafetyDirFor returns (creating if absent) the safety snapshot directory for
// a profile name.
func (s *Store) SafetyDirFor(profileName string) (string, error) {
	dir := filepath.Join(s.backupRoot, profileName, SafetyDirName)
	if err := paths.EnsureDir(dir, 0); err != nil {
		return "", errors.Wrapf(err, "creating safety directory %s", dir)
	}
	return dir, nil
}

// updateBackupRoot recomputes the effective backup root from the current
// mode and fixed path.
func (s *Store) updateBackupRoot() {
	if s.settings.BackupMode == ModeFixed && s.settings.BackupFixedPath != "" {
		s.backupRoot = pathcodec.Expand(s.settings.BackupFixedPath)
		return
	}
	s.backupRoot = paths.DefaultBackupRoot()
}

// newID generates a fresh profile ID embedding a timestamp component. On a
// same-second collision a short random fragment is appended.
func (s *Store) newID(prefix string) string {
	id := prefix + "_" + s.now().Format("20060102150405")
	if _, taken := s.games[id]; taken {
		id += "_" + uuid.NewString()[:8]
	}
	return id
}

// validate checks and normalizes a profile in place.
func validate(p *Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return errors.Wrap(ErrInvalidProfile, "name must not be empty")
	}
	p.SavePath = pathcodec.CleanInput(p.SavePath)
	if p.SavePath == "" {
		return errors.Wrap(ErrInvalidProfile, "save path must not be empty")
	}
	if !strings.ContainsAny(p.SavePath, "%$~") && filepath.IsAbs(p.SavePath) {
		p.SavePath = pathcodec.Contract(p.SavePath)
	}
	return nil
}
