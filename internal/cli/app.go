// Package cli assembles the application services behind the CLI commands.
package cli

import (
	"log/slog"

	"github.com/RaSan147/BackupSeeker/internal/backup"
	"github.com/RaSan147/BackupSeeker/internal/config"
	"github.com/RaSan147/BackupSeeker/internal/detect"
	"github.com/RaSan147/BackupSeeker/internal/errors"
	"github.com/RaSan147/BackupSeeker/internal/profile"
)

// App bundles the long-lived services a command needs: the profile store,
// the backup coordinator, and the detection registry.
type App struct {
	Config      *config.Config
	Log         *slog.Logger
	Store       *profile.Store
	Coordinator *backup.Coordinator
	Registry    *detect.Registry
}

// Open builds the application services from a loaded configuration and loads
// the persisted profile store. A corrupt store file is quarantined by the
// store itself, so Open only fails on real I/O problems.
func Open(cfg *config.Config, log *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("configuration not loaded")
	}

	store := profile.NewStore(cfg.ProfileFile, log)
	if err := store.Load(); err != nil {
		return nil, errors.Wrap(err, "loading profiles")
	}

	registry := detect.NewRegistry(cfg.CatalogFile, cfg.TOMLCatalogFile, log,
		detect.WithIconStore(detect.NewIconStore(cfg.IconCacheDir)))

	return &App{
		Config:      cfg,
		Log:         log,
		Store:       store,
		Coordinator: backup.NewCoordinator(store, log),
		Registry:    registry,
	}, nil
}

// ResolveProfile finds a profile by ID or unique name, attaching a usage
// suggestion when nothing matches.
func (a *App) ResolveProfile(idOrName string) (*profile.Profile, error) {
	p, err := a.Store.Resolve(idOrName)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, errors.NewUserError(err, "Run 'backupseeker profile list' to see available profiles")
		}
		return nil, err
	}
	return p, nil
}
