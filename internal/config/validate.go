package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionUnsupported indicates the version field is not a known version.
	ErrVersionUnsupported = errors.New("unsupported config version")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, ErrVersionUnsupported)
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"profile_file", cfg.ProfileFile},
		{"catalog_file", cfg.CatalogFile},
		{"toml_catalog_file", cfg.TOMLCatalogFile},
		{"icon_cache_dir", cfg.IconCacheDir},
	} {
		if field.value == "" {
			continue
		}
		if err := validatePath(field.value); err != nil {
			errs = append(errs, &PathError{
				Field: field.name,
				Path:  field.value,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
