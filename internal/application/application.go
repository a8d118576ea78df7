package application

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/eugenenazirov/aqua-prebuild/internal/config"
	"github.com/eugenenazirov/aqua-prebuild/internal/resolver"
	"github.com/eugenenazirov/aqua-prebuild/internal/storage"
)

const banner = "ESP32 Aqua Project - Pre-build Configuration Check"

// App encapsulates the pre-build dependencies.
type App struct {
	root     string
	store    storage.FileStore
	resolver resolver.Resolver
	logger   *zap.Logger
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if cfg.ProjectRoot == "" {
		return nil, fmt.Errorf("project root is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	store := storage.NewOSStore()

	return &App{
		root:     cfg.ProjectRoot,
		store:    store,
		resolver: resolver.New(store, logger),
		logger:   logger,
	}, nil
}

// Run makes sure the project's config file is in place before the build continues.
func (a *App) Run() (resolver.Outcome, error) {
	a.logger.Info(banner, zap.String("project_dir", a.root))

	outcome, err := a.resolver.Resolve(a.root)
	if err != nil {
		return outcome, fmt.Errorf("resolve config: %w", err)
	}

	a.logger.Debug("pre-build check complete", zap.Stringer("outcome", outcome))
	return outcome, nil
}

// Paths returns the config locations derived from the project root.
func (a *App) Paths() resolver.Paths {
	return resolver.PathsFor(a.root)
}
