// Package service provides the application use cases of the pattern catalog.
package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across use case constructors.
var (
	// ErrMissingDependency is returned by a constructor when a required
	// collaborator is nil.
	ErrMissingDependency = errors.New("missing dependency")
)

// UseCaseError wraps a repository failure with the use case that observed it.
type UseCaseError struct {
	// UseCase is the name of the failing use case (e.g. "list_categories")
	UseCase string
	// Message is a human-readable description of the failed step
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for UseCaseError.
func (e *UseCaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.UseCase, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.UseCase, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *UseCaseError) Unwrap() error {
	return e.Err
}

// NewUseCaseError creates a new UseCaseError. It returns nil when err is nil.
func NewUseCaseError(useCase, message string, err error) error {
	if err == nil {
		return nil
	}

	return &UseCaseError{
		UseCase: useCase,
		Message: message,
		Err:     err,
	}
}

// missingDependency builds the constructor error for a nil collaborator.
func missingDependency(useCase, name string) error {
	return &UseCaseError{
		UseCase: useCase,
		Message: name + " cannot be nil",
		Err:     ErrMissingDependency,
	}
}
