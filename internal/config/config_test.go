package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInit(t *testing.T) {
	viper.Reset()

	Init()

	if viper.GetInt("version") != 1 {
		t.Errorf("expected version default 1, got %d", viper.GetInt("version"))
	}
	if viper.GetString("profile_file") == "" {
		t.Error("expected profile_file default to be set")
	}
	if viper.GetString("icon_cache_dir") == "" {
		t.Error("expected icon_cache_dir default to be set")
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()

	// Point XDG config home at a temp dir to avoid loading system config
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Errorf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config to be returned")
	}
	if cfg.Version != 1 {
		t.Errorf("expected default version 1, got %d", cfg.Version)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("profile_file: /data/gsm_config.json\ncatalog_file: /data/games.jsonc\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ProfileFile != "/data/gsm_config.json" {
		t.Errorf("expected profile_file override, got %q", cfg.ProfileFile)
	}
	if cfg.CatalogFile != "/data/games.jsonc" {
		t.Errorf("expected catalog_file override, got %q", cfg.CatalogFile)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	viper.Reset()
	Init()

	_, err := Load("/non/existent/path/config.yaml")
	if err == nil {
		t.Error("Load() with non-existent explicit path should error")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "invalid version",
			content: "version: 2\n",
		},
		{
			name:    "invalid path",
			content: "profile_file: \"\\x00bad\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			Init()

			dir := t.TempDir()
			configPath := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			if _, err := Load(configPath); err == nil {
				t.Error("Load() expected error, got nil")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Version: 1, ProfileFile: "/data/gsm_config.json"}
	if errs := Validate(cfg); len(errs) != 0 {
		t.Errorf("Validate() unexpected errors: %v", errs)
	}

	cfg = &Config{Version: 0}
	errs := Validate(cfg)
	if len(errs) != 1 || errs[0] != ErrVersionUnsupported {
		t.Errorf("Validate() expected version error, got %v", errs)
	}

	if errs := Validate(nil); len(errs) != 1 {
		t.Errorf("Validate(nil) expected one error, got %v", errs)
	}
}
