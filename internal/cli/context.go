package cli

import (
	"context"

	"github.com/thenoetrevino/keks/internal/app"
	"github.com/thenoetrevino/keks/internal/config"
)

type contextKey string

const appContextKey contextKey = "keksApp"

// WithApp returns a context carrying an already constructed App. Commands
// executed with this context use it instead of opening the configured store.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appContextKey, a)
}

// GetCLIFromContext returns a CLI bound to the App stored in ctx, or a fresh
// CLI opened from the user's configuration when there is none
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appContextKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}
	return NewCLI(ctx)
}
