// Package config provides runtime configuration for the backupseeker CLI.
//
// This package handles loading and validating the tool's own configuration
// file. It is distinct from the persisted profile store (gsm_config.json),
// which is owned and written by the profile package; config only decides
// where that file and the descriptor catalogs live.
//
// # Configuration File
//
// The default configuration file location is ~/.config/backupseeker/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	profile_file: /custom/gsm_config.json   # optional
//	catalog_file: /custom/games.jsonc       # optional
//	toml_catalog_file: /custom/games.toml   # optional
//	icon_cache_dir: /custom/icons           # optional
//
// Every value can also be supplied through a BACKUPSEEKER_* environment
// variable, e.g. BACKUPSEEKER_PROFILE_FILE.
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load(flagConfigPath)
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// An empty path searches the default locations and falls back to defaults
// when no file exists; an explicit path must exist.
package config
