// Package flags provides shared flag and config accessors for CLI commands.
// This package exists to avoid import cycles between the root command
// and noun subpackages (profile, detect).
package flags

import (
	"github.com/RaSan147/BackupSeeker/internal/config"
)

// runtimeConfig holds the configuration loaded by the root command.
var runtimeConfig *config.Config

// SetRuntimeConfig stores the loaded configuration.
// Called by the root command after config loading, and by tests.
func SetRuntimeConfig(cfg *config.Config) {
	runtimeConfig = cfg
}

// RuntimeConfig returns the loaded configuration, or nil before loading.
func RuntimeConfig() *config.Config {
	return runtimeConfig
}
