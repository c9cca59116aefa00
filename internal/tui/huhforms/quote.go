package huhforms

import (
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/keks/internal/models"
)

// CreateAddQuoteForm creates a huh form for adding a new quote.
// Empty text is not blocked here; the caller reports it in the status line.
func CreateAddQuoteForm(text *string, language *string) *huh.Form {
	fields := []huh.Field{
		huh.NewText().
			Key("text").
			Title("Share your own fortune").
			Placeholder("Enter quote text...").
			CharLimit(1000).
			Lines(4).
			Value(text),

		huh.NewSelect[string]().
			Key("language").
			Title("Which language is it in?").
			Options(
				huh.NewOption(models.LanguageGerman, models.LanguageGerman),
				huh.NewOption(models.LanguageEnglish, models.LanguageEnglish),
			).
			Value(language),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(dialogKeyMap())
}
