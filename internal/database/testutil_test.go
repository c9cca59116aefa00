package database

import (
	"context"
	"path/filepath"
	"testing"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestStore creates an initialized in-memory store
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// setupTestStoreFile creates a file-backed store for persistence tests and
// returns the path so the test can reopen it
func setupTestStoreFile(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keks-test.db")
	store, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	return store, path
}
