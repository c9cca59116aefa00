package database

import (
	"context"
	"testing"

	"github.com/thenoetrevino/keks/internal/models"
)

// TestPersistenceAcrossReopen verifies that quotes and settings survive a restart
func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	store, path := setupTestStoreFile(t)

	if _, err := store.AddQuote(ctx, models.LanguageGerman, "Bleibt"); err != nil {
		t.Fatalf("AddQuote failed: %v", err)
	}
	if err := store.SetSetting(ctx, models.SettingDisplayName, "Kekse"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := store.SetMascotSetting(ctx, models.MascotName, "Wanda"); err != nil {
		t.Fatalf("SetMascotSetting failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := InitDB(ctx, path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, _ := reopened.GetQuote(ctx, models.LanguageGerman)
	if got != "Bleibt" {
		t.Errorf("Expected persisted quote, got %q", got)
	}
	name, _, _ := reopened.GetSetting(ctx, models.SettingDisplayName)
	if name != "Kekse" {
		t.Errorf("Expected persisted display name, got %q", name)
	}
	mascot, _, _ := reopened.GetMascotSetting(ctx, models.MascotName)
	if mascot != "Wanda" {
		t.Errorf("Expected persisted mascot name, got %q", mascot)
	}
}
