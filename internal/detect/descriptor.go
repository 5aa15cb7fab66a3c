package detect

import (
	"github.com/cockroachdb/errors"
)

// ErrBadDescriptor indicates a descriptor entry failed to load or parse.
// Such failures are isolated to the entry and never abort a reload.
var ErrBadDescriptor = errors.New("invalid descriptor")

// RegistryKey identifies a platform registry value used for best-effort
// install detection.
type RegistryKey struct {
	KeyPath   string
	ValueName string
}

// Descriptor describes a known application's likely save locations,
// independent of any user profile. Descriptors are values: they are rebuilt
// on every reload and never mutated.
type Descriptor struct {
	// GameID is the stable identifier; it prevents duplicate import and keys
	// the resolved icon.
	GameID string

	// DisplayName is the human-readable name.
	DisplayName string

	// SavePaths is the ordered list of candidate portable save paths.
	SavePaths []string

	// FilePatterns optionally restricts archived files for profiles created
	// from this descriptor.
	FilePatterns []string

	// RegistryKeys are optional platform registry lookups, best-effort.
	RegistryKeys []RegistryKey

	// Icon is an emoji, a local file path, or a remote URL.
	Icon string
}

// validate rejects descriptors missing the fields detection depends on.
func (d Descriptor) validate() error {
	if d.GameID == "" {
		return errors.Wrap(ErrBadDescriptor, "missing id")
	}
	if d.DisplayName == "" {
		return errors.Wrapf(ErrBadDescriptor, "%s: missing name", d.GameID)
	}
	if len(d.SavePaths) == 0 {
		return errors.Wrapf(ErrBadDescriptor, "%s: no save paths", d.GameID)
	}
	return nil
}
