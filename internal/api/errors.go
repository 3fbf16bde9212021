package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/store"
)

// Errors raised by the HTTP layer itself. Use cases report absence with a
// nil result; handlers translate that into these.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrPatternNotFound  = errors.New("pattern not found")
	ErrInvalidQuery     = errors.New("invalid query parameters")
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrPatternNotFound):
		return http.StatusNotFound

	case errors.Is(err, ErrInvalidQuery):
		return http.StatusBadRequest

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	// Invalid content and unreadable sources are server-side defects.
	case errors.Is(err, domain.ErrValidation),
		store.IsSourceError(err):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return "Category not found"

	case errors.Is(err, ErrPatternNotFound):
		return "Pattern not found"

	case errors.Is(err, ErrInvalidQuery):
		return "Invalid query parameters"

	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out"

	case errors.Is(err, domain.ErrValidation):
		return "Catalog content is invalid"

	case store.IsSourceError(err):
		return "Catalog content is unavailable"

	default:
		return "An unexpected error occurred"
	}
}
