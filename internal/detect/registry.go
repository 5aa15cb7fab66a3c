package detect

import (
	"log/slog"
	"os"

	"github.com/RaSan147/BackupSeeker/internal/pathcodec"
	"github.com/RaSan147/BackupSeeker/internal/profile"
)

// Registry maintains the descriptor catalog and evaluates which described
// applications are present on this machine. Descriptors are rebuilt from
// scratch on every Reload and never mutated in place.
type Registry struct {
	log    *slog.Logger
	lookup Lookup
	icons  *IconStore

	jsoncPath string
	tomlPath  string

	order []string
	byID  map[string]Descriptor
}

// Option configures a Registry.
type Option func(*Registry)

// WithLookup replaces the platform registry lookup. Useful in tests.
func WithLookup(l Lookup) Option {
	return func(r *Registry) { r.lookup = l }
}

// WithIconStore attaches an icon cache. Without one, icons pass through
// unresolved.
func WithIconStore(s *IconStore) Option {
	return func(r *Registry) { r.icons = s }
}

// NewRegistry builds a registry reading user catalogs from jsoncPath and
// tomlPath. Either path may be empty or point at a missing file; the embedded
// default catalog stands in for a missing JSONC file.
func NewRegistry(jsoncPath, tomlPath string, log *slog.Logger, opts ...Option) *Registry {
	r := &Registry{
		log:       log,
		lookup:    platformLookup(),
		jsoncPath: jsoncPath,
		tomlPath:  tomlPath,
		byID:      map[string]Descriptor{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reload clears and rebuilds the descriptor mapping. Load order is compiled
// descriptors, then the JSONC catalog, then the TOML catalog; a later entry
// with a duplicate game id replaces the earlier one. Individual bad entries
// are skipped, and an unreadable catalog file only drops that source.
func (r *Registry) Reload() {
	r.order = nil
	r.byID = map[string]Descriptor{}

	for _, d := range Builtin() {
		if err := d.validate(); err != nil {
			r.log.Warn("skipping compiled descriptor", "error", err)
			continue
		}
		r.put(d)
	}

	r.loadCatalog("jsonc", r.readJSONC())
	if r.tomlPath != "" {
		if data, err := os.ReadFile(r.tomlPath); err == nil {
			descriptors, skipped, perr := parseTOMLCatalog(data)
			r.report("toml", descriptors, skipped, perr)
		}
	}
}

// readJSONC returns the user catalog file if it exists, else the embedded
// default catalog.
func (r *Registry) readJSONC() []byte {
	if r.jsoncPath != "" {
		if data, err := os.ReadFile(r.jsoncPath); err == nil {
			return data
		}
	}
	return defaultCatalog
}

func (r *Registry) loadCatalog(source string, data []byte) {
	descriptors, skipped, err := parseJSONCCatalog(data)
	r.report(source, descriptors, skipped, err)
}

func (r *Registry) report(source string, descriptors []Descriptor, skipped int, err error) {
	if err != nil {
		r.log.Warn("descriptor catalog unreadable", "source", source, "error", err)
		return
	}
	if skipped > 0 {
		r.log.Warn("skipped invalid descriptor entries", "source", source, "count", skipped)
	}
	for _, d := range descriptors {
		r.put(d)
	}
}

func (r *Registry) put(d Descriptor) {
	if _, ok := r.byID[d.GameID]; !ok {
		r.order = append(r.order, d.GameID)
	}
	r.byID[d.GameID] = d
}

// Descriptors returns the current catalog in load order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Get returns the descriptor for a game id.
func (r *Registry) Get(gameID string) (Descriptor, bool) {
	d, ok := r.byID[gameID]
	return d, ok
}

// IsDetected reports whether any candidate save path expands to an existing
// location, or a platform registry key resolves to an existing install path.
// Lookup failures and unsupported platforms count as not detected.
func (r *Registry) IsDetected(d Descriptor) bool {
	if _, ok := r.firstExistingPath(d); ok {
		return true
	}
	for _, key := range d.RegistryKeys {
		value, err := r.lookup.StringValue(key.KeyPath, key.ValueName)
		if err != nil || value == "" {
			continue
		}
		if _, err := os.Stat(pathcodec.Expand(value)); err == nil {
			return true
		}
	}
	return false
}

// firstExistingPath returns the first candidate save path that exists on
// disk, in portable form.
func (r *Registry) firstExistingPath(d Descriptor) (string, bool) {
	for _, portable := range d.SavePaths {
		if _, err := os.Stat(pathcodec.Expand(portable)); err == nil {
			return portable, true
		}
	}
	return "", false
}

// DetectAll returns a draft for every descriptor currently detected, in load
// order.
func (r *Registry) DetectAll() []profile.Draft {
	var drafts []profile.Draft
	for _, d := range r.Descriptors() {
		if r.IsDetected(d) {
			drafts = append(drafts, r.ToDraft(d))
		}
	}
	return drafts
}

// ToDraft builds an importable draft from a descriptor. The save path is the
// first candidate that exists, falling back to the first candidate so the
// user can still aim at the conventional default location.
func (r *Registry) ToDraft(d Descriptor) profile.Draft {
	savePath, ok := r.firstExistingPath(d)
	if !ok && len(d.SavePaths) > 0 {
		savePath = d.SavePaths[0]
	}
	return profile.Draft{
		GameID:               d.GameID,
		Name:                 d.DisplayName,
		SavePath:             savePath,
		FilePatterns:         d.FilePatterns,
		UseCompression:       true,
		ClearFolderOnRestore: true,
		Icon:                 r.resolveIcon(d),
	}
}

// resolveIcon materializes the descriptor's icon through the icon store when
// one is attached. Failures are non-fatal and yield an empty icon.
func (r *Registry) resolveIcon(d Descriptor) string {
	if r.icons == nil {
		return d.Icon
	}
	resolved, err := r.icons.Resolve(d.GameID, d.Icon)
	if err != nil {
		r.log.Warn("icon unavailable", "game", d.GameID, "error", err)
		return ""
	}
	return resolved
}
