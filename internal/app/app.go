package app

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/keks/internal/database"
	"github.com/thenoetrevino/keks/internal/importer"
	fortuneservice "github.com/thenoetrevino/keks/internal/services/fortune"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	logger *slog.Logger

	// Service layer (business logic)
	FortuneService fortuneservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		repo:           repo,
		logger:         cfg.logger,
		FortuneService: fortuneservice.NewService(repo, cfg.logger),
	}
}

// Repo returns the underlying store for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Import loads a quote file into the store. See importer.ImportFromFile.
func (a *App) Import(ctx context.Context, path, code string, opts ...importer.Option) (*importer.Result, error) {
	opts = append([]importer.Option{importer.WithLogger(a.logger)}, opts...)
	return importer.ImportFromFile(ctx, a.repo, path, code, opts...)
}

// Close releases the store. Safe to call more than once.
func (a *App) Close() error {
	return a.repo.Close()
}
