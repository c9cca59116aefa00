package fortune

import (
	"errors"

	"github.com/thenoetrevino/keks/internal/colors"
)

// Fortune-related errors
var (
	// Validation errors
	ErrEmptyLanguage = errors.New("language cannot be empty")
	ErrEmptyText     = errors.New("quote text cannot be empty")
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrInvalidColor  = colors.ErrInvalidColor
)

// IsValidationError reports whether err was caused by invalid user input
// rather than by the store
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyLanguage) ||
		errors.Is(err, ErrEmptyText) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrInvalidColor)
}
