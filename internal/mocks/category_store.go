package mocks

import (
	"context"
	"sync/atomic"

	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/store"
)

// Compile-time check that MockCategoryStore implements store.CategoryStore.
var _ store.CategoryStore = (*MockCategoryStore)(nil)

// MockCategoryStore implements store.CategoryStore for testing
type MockCategoryStore struct {
	// Function fields for customizable behavior
	FindAllFn    func(ctx context.Context) ([]*domain.Category, error)
	FindBySlugFn func(ctx context.Context, slug string) (*domain.Category, error)

	// Data for default implementation
	Categories []*domain.Category
	Err        error

	findAllCalls    atomic.Int32
	findBySlugCalls atomic.Int32
}

// NewMockCategoryStore creates a mock store serving the given categories
func NewMockCategoryStore(categories ...*domain.Category) *MockCategoryStore {
	return &MockCategoryStore{Categories: categories}
}

// FindAll implements the CategoryStore interface
func (m *MockCategoryStore) FindAll(ctx context.Context) ([]*domain.Category, error) {
	m.findAllCalls.Add(1)
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}

	if m.Err != nil {
		return nil, m.Err
	}

	return append([]*domain.Category{}, m.Categories...), nil
}

// FindBySlug implements the CategoryStore interface
func (m *MockCategoryStore) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	m.findBySlugCalls.Add(1)
	if m.FindBySlugFn != nil {
		return m.FindBySlugFn(ctx, slug)
	}

	if m.Err != nil {
		return nil, m.Err
	}

	for _, c := range m.Categories {
		if c.Slug().String() == slug {
			return c, nil
		}
	}
	return nil, nil
}

// FindAllCalls returns how many times FindAll was called
func (m *MockCategoryStore) FindAllCalls() int { return int(m.findAllCalls.Load()) }

// FindBySlugCalls returns how many times FindBySlug was called
func (m *MockCategoryStore) FindBySlugCalls() int { return int(m.findBySlugCalls.Load()) }
