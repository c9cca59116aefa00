package database

import "errors"

var (
	// ErrStorageUnavailable wraps any failure to open, ping or initialize the
	// database file. Callers treat it as fatal.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrClosed is returned by every operation after Close
	ErrClosed = errors.New("store is closed")

	// ErrEmptyValue is returned when a settings value is empty or whitespace only
	ErrEmptyValue = errors.New("settings value cannot be empty")
)
