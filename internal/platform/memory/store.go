package memory

import (
	"context"
	"slices"

	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/store"
)

var (
	_ store.CategoryStore = (*CategoryStore)(nil)
	_ store.PatternStore  = (*PatternStore)(nil)
)

// CategoryStore serves a fixed set of categories.
type CategoryStore struct {
	categories []*domain.Category
	bySlug     map[string]*domain.Category
}

// NewCategoryStore creates a CategoryStore. When two categories share a slug,
// FindBySlug returns the first one.
func NewCategoryStore(categories ...*domain.Category) *CategoryStore {
	bySlug := make(map[string]*domain.Category, len(categories))
	for _, c := range categories {
		key := c.Slug().String()
		if _, exists := bySlug[key]; !exists {
			bySlug[key] = c
		}
	}

	return &CategoryStore{
		categories: slices.Clone(categories),
		bySlug:     bySlug,
	}
}

// FindAll implements store.CategoryStore.
func (s *CategoryStore) FindAll(ctx context.Context) ([]*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]*domain.Category{}, s.categories...), nil
}

// FindBySlug implements store.CategoryStore.
func (s *CategoryStore) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.bySlug[slug], nil
}

// PatternStore serves a fixed set of patterns.
type PatternStore struct {
	patterns   []*domain.Pattern
	bySlug     map[string]*domain.Pattern
	byCategory map[string][]*domain.Pattern
}

// NewPatternStore creates a PatternStore. When two patterns share a slug,
// FindBySlug returns the first one.
func NewPatternStore(patterns ...*domain.Pattern) *PatternStore {
	bySlug := make(map[string]*domain.Pattern, len(patterns))
	byCategory := make(map[string][]*domain.Pattern)
	for _, p := range patterns {
		key := p.Slug().String()
		if _, exists := bySlug[key]; !exists {
			bySlug[key] = p
		}
		category := p.CategorySlug().String()
		byCategory[category] = append(byCategory[category], p)
	}

	return &PatternStore{
		patterns:   slices.Clone(patterns),
		bySlug:     bySlug,
		byCategory: byCategory,
	}
}

// FindAll implements store.PatternStore.
func (s *PatternStore) FindAll(ctx context.Context) ([]*domain.Pattern, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]*domain.Pattern{}, s.patterns...), nil
}

// FindBySlug implements store.PatternStore.
func (s *PatternStore) FindBySlug(ctx context.Context, slug string) (*domain.Pattern, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.bySlug[slug], nil
}

// FindByCategorySlug implements store.PatternStore.
func (s *PatternStore) FindByCategorySlug(ctx context.Context, categorySlug string) ([]*domain.Pattern, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]*domain.Pattern{}, s.byCategory[categorySlug]...), nil
}
