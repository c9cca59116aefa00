package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/keks/internal/database"
	"github.com/thenoetrevino/keks/internal/importer"
	"github.com/thenoetrevino/keks/internal/models"
	"github.com/thenoetrevino/keks/internal/services/fortune"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unreadable import files, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or unknown settings fields.
	ExitUsage = 2

	// ExitDataErr indicates invalid or malformed data.
	// Use for: A database file that cannot be opened as SQLite.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty quote text, unsupported language codes, invalid colors.
	ExitValidation = 5
)

// StatusError carries the process exit code a command wants. main unwraps it
// with errors.As.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err with the exit code matching its class
func NewExitError(err error) *StatusError {
	return &StatusError{Code: ExitCodeFor(err), Err: err}
}

// ExitCodeFor maps an error to an exit code
func ExitCodeFor(err error) int {
	var exitErr *StatusError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case fortune.IsValidationError(err),
		errors.Is(err, importer.ErrUnsupportedLanguage),
		errors.Is(err, database.ErrEmptyValue):
		return ExitValidation
	case errors.Is(err, models.ErrUnknownField):
		return ExitUsage
	case errors.Is(err, database.ErrStorageUnavailable):
		return ExitDataErr
	default:
		return ExitError
	}
}

// ErrorCode returns the machine readable code used in JSON error output
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitDataErr:
		return "STORAGE_UNAVAILABLE"
	default:
		if errors.Is(err, importer.ErrReadSource) {
			return "READ_ERROR"
		}
		return "ERROR"
	}
}

// Fail reports err through the formatter and returns it wrapped in a StatusError
func Fail(formatter *OutputFormatter, err error) error {
	if fmtErr := formatter.Error(ErrorCode(err), err.Error()); fmtErr != nil {
		return NewExitError(fmt.Errorf("%w (while reporting: %v)", err, fmtErr))
	}
	return NewExitError(err)
}
