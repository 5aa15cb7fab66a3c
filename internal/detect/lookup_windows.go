//go:build windows

package detect

import (
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows/registry"
)

// platformLookup returns the native Windows registry lookup.
func platformLookup() Lookup {
	return LookupFunc(windowsStringValue)
}

func windowsStringValue(keyPath, valueName string) (string, error) {
	root, sub, err := splitRoot(keyPath)
	if err != nil {
		return "", err
	}
	key, err := registry.OpenKey(root, sub, registry.QUERY_VALUE)
	if err != nil {
		return "", errors.Wrapf(err, "opening %s", keyPath)
	}
	defer key.Close()

	value, _, err := key.GetStringValue(valueName)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s\\%s", keyPath, valueName)
	}
	return value, nil
}

func splitRoot(keyPath string) (registry.Key, string, error) {
	rootName, sub, ok := strings.Cut(keyPath, `\`)
	if !ok {
		return 0, "", errors.Newf("registry key %q has no subkey", keyPath)
	}
	switch strings.ToUpper(rootName) {
	case "HKEY_LOCAL_MACHINE", "HKLM":
		return registry.LOCAL_MACHINE, sub, nil
	case "HKEY_CURRENT_USER", "HKCU":
		return registry.CURRENT_USER, sub, nil
	case "HKEY_CLASSES_ROOT", "HKCR":
		return registry.CLASSES_ROOT, sub, nil
	case "HKEY_USERS", "HKU":
		return registry.USERS, sub, nil
	default:
		return 0, "", errors.Newf("unsupported registry root %q", rootName)
	}
}
