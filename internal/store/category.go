package store

import (
	"context"

	"github.com/phrazzld/pattern-catalog/internal/domain"
)

// CategoryStore defines read access to catalog categories.
type CategoryStore interface {
	// FindAll returns every category in source order.
	// Returns an empty slice when there are none.
	FindAll(ctx context.Context) ([]*domain.Category, error)

	// FindBySlug returns the category whose slug equals slug exactly.
	// Returns nil and a nil error when no category matches.
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
}
