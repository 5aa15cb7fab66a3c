package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "backupseeker"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// Note: It returns an empty string on error for backward compatibility.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigDir returns the application configuration directory.
// On Linux: ~/.config/backupseeker
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// CacheDir returns the application cache directory.
// On Linux: ~/.cache/backupseeker
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// ConfigFile returns the default path of the persisted profile configuration.
// Returns: <ConfigDir>/gsm_config.json
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "gsm_config.json")
}

// CatalogFile returns the default path of the user descriptor catalog.
// Returns: <ConfigDir>/games.jsonc
func CatalogFile() string {
	return filepath.Join(ConfigDir(), "games.jsonc")
}

// TOMLCatalogFile returns the default path of the TOML descriptor catalog.
// Returns: <ConfigDir>/games.toml
func TOMLCatalogFile() string {
	return filepath.Join(ConfigDir(), "games.toml")
}

// IconCacheDir returns the directory used to materialize descriptor icons.
// Returns: <CacheDir>/icons
func IconCacheDir() string {
	return filepath.Join(CacheDir(), "icons")
}

// DefaultBackupRoot returns the backup root used in "cwd" mode:
// a backups folder under the current working directory.
func DefaultBackupRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "backups"
	}
	return filepath.Join(cwd, "backups")
}
