// Package importer bulk-loads quotes from %-delimited text files, the format
// used by the classic fortune(6) databases.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/thenoetrevino/keks/internal/models"
)

// Delimiter separates quotes in an import file
const Delimiter = "%"

// DefaultCode is used when no language code is given
const DefaultCode = "en"

var (
	// ErrUnsupportedLanguage is returned for language codes outside languageCodes
	ErrUnsupportedLanguage = errors.New("unsupported language code")

	// ErrReadSource wraps failures to read the import file
	ErrReadSource = errors.New("failed to read import file")
)

var languageCodes = map[string]string{
	"en": models.LanguageEnglish,
	"de": models.LanguageGerman,
}

// QuoteWriter is the part of the store the importer needs
type QuoteWriter interface {
	AddQuotes(ctx context.Context, language string, texts []string, onInsert func(done int)) (int, error)
}

// Result summarizes an import run
type Result struct {
	Language string `json:"language"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"` // Blocks that were empty after trimming
}

// Option configures an import run
type Option func(*config)

type config struct {
	progress func(done, total int)
	logger   *slog.Logger
}

// WithProgress registers a callback invoked after each inserted quote
func WithProgress(fn func(done, total int)) Option {
	return func(cfg *config) {
		cfg.progress = fn
	}
}

// WithLogger sets the logger for the import run
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// SupportedCodes returns the accepted language codes in sorted order
func SupportedCodes() []string {
	codes := make([]string, 0, len(languageCodes))
	for code := range languageCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ResolveLanguage maps a short code to its full language name
func ResolveLanguage(code string) (string, error) {
	lang, ok := languageCodes[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return "", fmt.Errorf("%w '%s' (must be: %s)", ErrUnsupportedLanguage, code, strings.Join(SupportedCodes(), ", "))
	}
	return lang, nil
}

// SplitQuotes splits content on the delimiter, trims every block and drops
// the ones that end up empty. It also returns how many blocks were dropped.
func SplitQuotes(content string) (quotes []string, skipped int) {
	for _, block := range strings.Split(content, Delimiter) {
		block = strings.TrimSpace(block)
		if block == "" {
			skipped++
			continue
		}
		quotes = append(quotes, block)
	}
	return quotes, skipped
}

// ImportFromFile reads path and stores every quote in it under the language
// that code maps to. The language is resolved before the file is touched, and
// all quotes are committed in a single transaction.
func ImportFromFile(ctx context.Context, store QuoteWriter, path, code string, opts ...Option) (*Result, error) {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	language, err := ResolveLanguage(code)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}

	quotes, skipped := SplitQuotes(string(content))
	cfg.logger.Debug("parsed import file", "path", path, "quotes", len(quotes), "skipped", skipped)

	var onInsert func(int)
	if cfg.progress != nil {
		total := len(quotes)
		onInsert = func(done int) { cfg.progress(done, total) }
	}

	imported, err := store.AddQuotes(ctx, language, quotes, onInsert)
	if err != nil {
		return nil, fmt.Errorf("failed to store quotes: %w", err)
	}

	cfg.logger.Info("import finished", "path", path, "language", language, "imported", imported)

	return &Result{
		Language: language,
		Imported: imported,
		Skipped:  skipped,
	}, nil
}
