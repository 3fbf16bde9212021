// Package domain defines the core catalog entities, value objects and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a value object or entity fails validation.
	// It is always wrapped by a *ValidationError carrying the specific message.
	ErrValidation = errors.New("validation failed")
)

// ValidationError describes the first constraint violated while constructing
// a value object or entity.
type ValidationError struct {
	// Object is the type being constructed (e.g. "slug", "pattern").
	Object string
	// Field is the offending field, empty for single-value objects.
	Field string
	// Message is a human-readable description of the violated constraint.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s: %s", e.Object, e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Object, e.Message)
}

// Unwrap returns ErrValidation to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// newValidationError creates a ValidationError for the given object and field.
func newValidationError(object, field, message string) *ValidationError {
	return &ValidationError{
		Object:  object,
		Field:   field,
		Message: message,
	}
}
