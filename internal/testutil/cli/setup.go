package cli

import (
	"testing"

	"github.com/thenoetrevino/keks/internal/app"
	"github.com/thenoetrevino/keks/internal/database"
	"github.com/thenoetrevino/keks/internal/testutil"
)

// SetupCLITest creates an in-memory store and returns both the store and App instance.
// This helper is isolated in its own package to avoid import cycles when
// service tests import testutil
func SetupCLITest(t *testing.T) (*database.Store, *app.App) {
	t.Helper()
	store := testutil.SetupTestStore(t)
	return store, app.New(store)
}
