package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/keks/internal/colors"
	"github.com/thenoetrevino/keks/internal/database"
	"github.com/thenoetrevino/keks/internal/importer"
	"github.com/thenoetrevino/keks/internal/models"
	"github.com/thenoetrevino/keks/internal/services/fortune"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unsupported language", fmt.Errorf("import: %w", importer.ErrUnsupportedLanguage), ExitValidation},
		{"empty text", fortune.ErrEmptyText, ExitValidation},
		{"invalid color", fmt.Errorf("%w: %q", colors.ErrInvalidColor, "nope"), ExitValidation},
		{"empty settings value", database.ErrEmptyValue, ExitValidation},
		{"unknown field", &models.UnknownFieldError{Name: "foo"}, ExitUsage},
		{"storage", fmt.Errorf("%w: locked", database.ErrStorageUnavailable), ExitDataErr},
		{"read source", fmt.Errorf("%w: missing", importer.ErrReadSource), ExitError},
		{"other", errors.New("boom"), ExitError},
		{"explicit", &StatusError{Code: ExitUsage, Err: errors.New("usage")}, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "VALIDATION_ERROR", ErrorCode(importer.ErrUnsupportedLanguage))
	assert.Equal(t, "READ_ERROR", ErrorCode(fmt.Errorf("%w: x", importer.ErrReadSource)))
	assert.Equal(t, "USAGE_ERROR", ErrorCode(models.ErrUnknownField))
	assert.Equal(t, "ERROR", ErrorCode(errors.New("boom")))
}

func TestStatusErrorUnwraps(t *testing.T) {
	err := NewExitError(fmt.Errorf("wrap: %w", importer.ErrUnsupportedLanguage))
	assert.Equal(t, ExitValidation, err.Code)
	assert.ErrorIs(t, err, importer.ErrUnsupportedLanguage)
	assert.Contains(t, err.Error(), "unsupported language code")
}
