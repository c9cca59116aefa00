// Package fortune holds the rules shared by the CLI and the TUI: picking the
// next fortune, formatting it with the mascot name and validating edits.
package fortune

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/keks/internal/colors"
	"github.com/thenoetrevino/keks/internal/database"
	"github.com/thenoetrevino/keks/internal/models"
)

// Service defines all fortune-related business operations
type Service interface {
	// Read operations
	NextFortune(ctx context.Context, language string) (*Fortune, error)
	Settings(ctx context.Context) (*models.Settings, error)
	Mascot(ctx context.Context) (*models.MascotSettings, error)
	Languages(ctx context.Context) ([]models.LanguageCount, error)

	// Write operations
	AddQuote(ctx context.Context, req AddQuoteRequest) (*models.Quote, error)
	RenameApp(ctx context.Context, name string) error
	UpdateMascot(ctx context.Context, req UpdateMascotRequest) (*models.MascotSettings, error)
}

// Fortune is a quote ready to be shown
type Fortune struct {
	Language string `json:"language"`
	Text     string `json:"text"` // Raw quote text or the no-quotes sentinel
	Mascot   string `json:"mascot"`
	Display  string `json:"display"` // Text with the mascot prefix when the language is primary
}

// AddQuoteRequest encapsulates data for adding a quote
type AddQuoteRequest struct {
	Language string
	Text     string
}

// UpdateMascotRequest encapsulates a mascot edit. Nil or empty fields are left unchanged.
type UpdateMascotRequest struct {
	Name  *string
	Color *string
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new fortune service
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// FormatFortune prefixes text with the mascot name for the primary languages
func FormatFortune(mascot, language, text string) string {
	if mascot != "" && models.IsPrimaryLanguage(language) {
		return mascot + " says:    " + text
	}
	return text
}

// NextFortune picks a random quote and re-reads the mascot name so that the
// display never uses a stale value
func (s *service) NextFortune(ctx context.Context, language string) (*Fortune, error) {
	text, err := s.repo.GetQuote(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}

	mascot, _, err := s.repo.GetMascotSetting(ctx, models.MascotName)
	if err != nil {
		return nil, fmt.Errorf("failed to get mascot name: %w", err)
	}

	return &Fortune{
		Language: language,
		Text:     text,
		Mascot:   mascot,
		Display:  FormatFortune(mascot, language, text),
	}, nil
}

// Settings returns the application settings row
func (s *service) Settings(ctx context.Context) (*models.Settings, error) {
	return s.repo.GetSettings(ctx)
}

// Mascot returns the mascot settings row
func (s *service) Mascot(ctx context.Context) (*models.MascotSettings, error) {
	return s.repo.GetMascotSettings(ctx)
}

// Languages lists stored language tags with their counts
func (s *service) Languages(ctx context.Context) ([]models.LanguageCount, error) {
	return s.repo.ListLanguages(ctx)
}

// AddQuote validates and stores a new quote. Values are stored as given;
// trimming is only used to detect blank input.
func (s *service) AddQuote(ctx context.Context, req AddQuoteRequest) (*models.Quote, error) {
	if strings.TrimSpace(req.Language) == "" {
		return nil, ErrEmptyLanguage
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}

	quote, err := s.repo.AddQuote(ctx, req.Language, req.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to add quote: %w", err)
	}

	s.logger.Info("quote added", "id", quote.ID, "language", quote.Language)
	return quote, nil
}

// RenameApp changes the display name
func (s *service) RenameApp(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	if err := s.repo.SetSetting(ctx, models.SettingDisplayName, name); err != nil {
		return fmt.Errorf("failed to rename app: %w", err)
	}

	s.logger.Info("display name changed", "name", name)
	return nil
}

// UpdateMascot applies a mascot edit. A non-empty name is stored even when
// the color is invalid; an invalid color is never stored and its error is
// returned after the name is written.
func (s *service) UpdateMascot(ctx context.Context, req UpdateMascotRequest) (*models.MascotSettings, error) {
	var name, color string
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}

	var colorErr error
	if req.Color != nil {
		color = strings.TrimSpace(*req.Color)
		if color != "" {
			colorErr = colors.Validate(color)
		}
	}

	if name != "" {
		if err := s.repo.SetMascotSetting(ctx, models.MascotName, name); err != nil {
			return nil, fmt.Errorf("failed to update mascot name: %w", err)
		}
		s.logger.Info("mascot name changed", "name", name)
	}

	if colorErr != nil {
		return nil, colorErr
	}
	if color != "" {
		if err := s.repo.SetMascotSetting(ctx, models.MascotColor, color); err != nil {
			return nil, fmt.Errorf("failed to update mascot color: %w", err)
		}
		s.logger.Info("mascot color changed", "color", color)
	}

	return s.repo.GetMascotSettings(ctx)
}
