package store

import (
	"context"

	"github.com/phrazzld/pattern-catalog/internal/domain"
)

// PatternStore defines read access to catalog patterns.
type PatternStore interface {
	// FindAll returns every pattern in source order.
	// Returns an empty slice when there are none.
	FindAll(ctx context.Context) ([]*domain.Pattern, error)

	// FindBySlug returns the pattern whose slug equals slug exactly.
	// Returns nil and a nil error when no pattern matches.
	FindBySlug(ctx context.Context, slug string) (*domain.Pattern, error)

	// FindByCategorySlug returns the patterns that reference categorySlug,
	// in source order. Returns an empty slice when none do.
	FindByCategorySlug(ctx context.Context, categorySlug string) ([]*domain.Pattern, error)
}
