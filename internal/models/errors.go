package models

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned for any settings field outside the fixed enumeration
var ErrUnknownField = errors.New("unknown settings field")

// UnknownFieldError carries the rejected field name
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownField, e.Name)
}

// Unwrap lets errors.Is match ErrUnknownField
func (e *UnknownFieldError) Unwrap() error {
	return ErrUnknownField
}
