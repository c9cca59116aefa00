package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/keks/internal/app"
	"github.com/thenoetrevino/keks/internal/cli/styles"
	"github.com/thenoetrevino/keks/internal/config"
	"github.com/thenoetrevino/keks/internal/database"
	"github.com/thenoetrevino/keks/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	owned  bool // App was created here and must be closed here
}

// NewCLI loads the configuration and opens the store
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	styles.Init(cfg.ColorScheme)

	store, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:    app.New(store, app.WithLogger(logging.Logger)),
		Config: cfg,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
