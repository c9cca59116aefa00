package database

import (
	"context"

	"github.com/thenoetrevino/keks/internal/models"
)

// QuoteStore is the quote half of the store contract
type QuoteStore interface {
	GetQuote(ctx context.Context, language string) (string, error)
	AddQuote(ctx context.Context, language, text string) (*models.Quote, error)
	AddQuotes(ctx context.Context, language string, texts []string, onInsert func(done int)) (int, error)
	CountQuotes(ctx context.Context, language string) (int, error)
	ListLanguages(ctx context.Context) ([]models.LanguageCount, error)
}

// SettingsStore is the settings half of the store contract
type SettingsStore interface {
	GetSetting(ctx context.Context, field models.SettingField) (string, bool, error)
	SetSetting(ctx context.Context, field models.SettingField, value string) error
	GetMascotSetting(ctx context.Context, field models.MascotField) (string, bool, error)
	SetMascotSetting(ctx context.Context, field models.MascotField, value string) error
	GetSettings(ctx context.Context) (*models.Settings, error)
	GetMascotSettings(ctx context.Context) (*models.MascotSettings, error)
}

// DataStore defines the unified interface for all data operations needed by
// the TUI, the CLI and the importer.
type DataStore interface {
	QuoteStore
	SettingsStore
	Initialize(ctx context.Context) error
	Close() error
}
