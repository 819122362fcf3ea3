// Package errors provides data structures and functions for handling
// validation errors in the API.
package errors

import (
	"bytes"
	"strings"
)

// ValidationError represents an error that occurs during validation.
type ValidationError struct {
	Field  string // The field that caused the validation error.
	Value  any    // The value that caused the validation error.
	ErrStr string // The error message.
}

// Error allows ValidationError to satisfy the error interface.
func (ve ValidationError) Error() string {
	if len(ve.Field) > 0 {
		return ve.Field + ": " + ve.ErrStr
	} else {
		return ve.ErrStr
	}
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

// Error allows ValidationErrors to satisfy the error interface.
func (ves ValidationErrors) Error() string {
	buff := bytes.NewBufferString("")

	for i := 0; i < len(ves); i++ {
		buff.WriteString(ves[i].Error())
		buff.WriteString("; ")
	}

	return strings.TrimSpace(buff.String())
}

// Map returns the errors keyed by field name so callers can surface
// per-field messages. Later errors for the same field win.
func (ves ValidationErrors) Map() map[string]string {
	if len(ves) == 0 {
		return nil
	}
	m := make(map[string]string, len(ves))
	for _, ve := range ves {
		m[ve.Field] = ve.ErrStr
	}
	return m
}
