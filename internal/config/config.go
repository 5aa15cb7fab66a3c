// Package config provides runtime configuration for backupseeker using Viper.
//
// This is the process configuration (file locations, catalog paths), distinct
// from the persisted profile store it points at.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/RaSan147/BackupSeeker/internal/paths"
)

// Config represents the top-level runtime configuration.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// ProfileFile is the persisted profile store (gsm_config.json).
	ProfileFile string `mapstructure:"profile_file" yaml:"profile_file"`

	// CatalogFile is the user JSONC descriptor catalog.
	CatalogFile string `mapstructure:"catalog_file" yaml:"catalog_file"`

	// TOMLCatalogFile is the supplemental TOML descriptor catalog.
	TOMLCatalogFile string `mapstructure:"toml_catalog_file" yaml:"toml_catalog_file"`

	// IconCacheDir holds materialized descriptor icons.
	IconCacheDir string `mapstructure:"icon_cache_dir" yaml:"icon_cache_dir"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("BACKUPSEEKER")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("profile_file", paths.ConfigFile())
	viper.SetDefault("catalog_file", paths.CatalogFile())
	viper.SetDefault("toml_catalog_file", paths.TOMLCatalogFile())
	viper.SetDefault("icon_cache_dir", paths.IconCacheDir())
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("validating config: %w", errs[0])
	}

	return &cfg, nil
}
