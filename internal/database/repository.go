package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/keks/internal/models"
)

// Store provides all database operations.
// It composes the quote and settings repositories using struct embedding.
type Store struct {
	*QuoteRepo
	*SettingsRepo
	h *handle
}

var _ DataStore = (*Store)(nil)

// NewStore wraps an open database connection. Call Initialize before use
// unless the schema is known to exist.
func NewStore(db *sql.DB) *Store {
	h := &handle{db: db}
	return &Store{
		QuoteRepo:    &QuoteRepo{h: h, pick: defaultPick},
		SettingsRepo: &SettingsRepo{h: h},
		h:            h,
	}
}

// Initialize creates missing tables and singleton rows. Safe to call repeatedly.
func (s *Store) Initialize(ctx context.Context) error {
	db, err := s.h.conn()
	if err != nil {
		return err
	}
	return runMigrations(ctx, db)
}

// Close releases the database. Calling it more than once is a no-op.
func (s *Store) Close() error {
	if s.h.closed.Swap(true) {
		return nil
	}
	return s.h.db.Close()
}

// Wrapper methods for QuoteRepo

func (s *Store) GetQuote(ctx context.Context, language string) (string, error) {
	return s.QuoteRepo.Random(ctx, language)
}

func (s *Store) AddQuote(ctx context.Context, language, text string) (*models.Quote, error) {
	return s.QuoteRepo.Create(ctx, language, text)
}

func (s *Store) AddQuotes(ctx context.Context, language string, texts []string, onInsert func(done int)) (int, error) {
	return s.QuoteRepo.CreateBatch(ctx, language, texts, onInsert)
}

func (s *Store) CountQuotes(ctx context.Context, language string) (int, error) {
	return s.QuoteRepo.Count(ctx, language)
}

func (s *Store) ListLanguages(ctx context.Context) ([]models.LanguageCount, error) {
	return s.QuoteRepo.Languages(ctx)
}

// Wrapper methods for SettingsRepo

func (s *Store) GetSetting(ctx context.Context, field models.SettingField) (string, bool, error) {
	return s.SettingsRepo.Get(ctx, field)
}

func (s *Store) SetSetting(ctx context.Context, field models.SettingField, value string) error {
	return s.SettingsRepo.Set(ctx, field, value)
}

func (s *Store) GetMascotSetting(ctx context.Context, field models.MascotField) (string, bool, error) {
	return s.SettingsRepo.GetMascot(ctx, field)
}

func (s *Store) SetMascotSetting(ctx context.Context, field models.MascotField, value string) error {
	return s.SettingsRepo.SetMascot(ctx, field, value)
}

func (s *Store) GetSettings(ctx context.Context) (*models.Settings, error) {
	return s.SettingsRepo.GetAll(ctx)
}

func (s *Store) GetMascotSettings(ctx context.Context) (*models.MascotSettings, error) {
	return s.SettingsRepo.GetMascotAll(ctx)
}
