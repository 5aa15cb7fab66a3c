//go:build !windows

package detect

import (
	"github.com/cockroachdb/errors"
)

var errNoRegistry = errors.New("platform has no registry")

// platformLookup returns a no-op lookup on platforms without a registry.
func platformLookup() Lookup {
	return LookupFunc(func(string, string) (string, error) {
		return "", errNoRegistry
	})
}
