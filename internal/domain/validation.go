package domain

import (
	"fmt"
	"strings"
)

// FieldError describes a single invalid field in an inbound payload.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries per-field detail for a failed payload validation.
// It enumerates every offending field, not just the first, so clients can
// surface all problems at once. It wraps ErrValidation so callers can match
// with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// Unwrap lets errors.Is(err, ErrValidation) match a ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}
