package mocks

import (
	"context"
	"sync/atomic"

	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/store"
)

// Compile-time check that MockPatternStore implements store.PatternStore.
var _ store.PatternStore = (*MockPatternStore)(nil)

// MockPatternStore implements store.PatternStore for testing
type MockPatternStore struct {
	// Function fields for customizable behavior
	FindAllFn            func(ctx context.Context) ([]*domain.Pattern, error)
	FindBySlugFn         func(ctx context.Context, slug string) (*domain.Pattern, error)
	FindByCategorySlugFn func(ctx context.Context, categorySlug string) ([]*domain.Pattern, error)

	// Data for default implementation
	Patterns []*domain.Pattern
	Err      error

	findAllCalls            atomic.Int32
	findBySlugCalls         atomic.Int32
	findByCategorySlugCalls atomic.Int32
}

// NewMockPatternStore creates a mock store serving the given patterns
func NewMockPatternStore(patterns ...*domain.Pattern) *MockPatternStore {
	return &MockPatternStore{Patterns: patterns}
}

// FindAll implements the PatternStore interface
func (m *MockPatternStore) FindAll(ctx context.Context) ([]*domain.Pattern, error) {
	m.findAllCalls.Add(1)
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}

	if m.Err != nil {
		return nil, m.Err
	}

	return append([]*domain.Pattern{}, m.Patterns...), nil
}

// FindBySlug implements the PatternStore interface
func (m *MockPatternStore) FindBySlug(ctx context.Context, slug string) (*domain.Pattern, error) {
	m.findBySlugCalls.Add(1)
	if m.FindBySlugFn != nil {
		return m.FindBySlugFn(ctx, slug)
	}

	if m.Err != nil {
		return nil, m.Err
	}

	for _, p := range m.Patterns {
		if p.Slug().String() == slug {
			return p, nil
		}
	}
	return nil, nil
}

// FindByCategorySlug implements the PatternStore interface
func (m *MockPatternStore) FindByCategorySlug(ctx context.Context, categorySlug string) ([]*domain.Pattern, error) {
	m.findByCategorySlugCalls.Add(1)
	if m.FindByCategorySlugFn != nil {
		return m.FindByCategorySlugFn(ctx, categorySlug)
	}

	if m.Err != nil {
		return nil, m.Err
	}

	result := []*domain.Pattern{}
	for _, p := range m.Patterns {
		if p.CategorySlug().String() == categorySlug {
			result = append(result, p)
		}
	}
	return result, nil
}

// FindAllCalls returns how many times FindAll was called
func (m *MockPatternStore) FindAllCalls() int { return int(m.findAllCalls.Load()) }

// FindBySlugCalls returns how many times FindBySlug was called
func (m *MockPatternStore) FindBySlugCalls() int { return int(m.findBySlugCalls.Load()) }

// FindByCategorySlugCalls returns how many times FindByCategorySlug was called
func (m *MockPatternStore) FindByCategorySlugCalls() int {
	return int(m.findByCategorySlugCalls.Load())
}

// TotalCalls returns the number of calls across all methods
func (m *MockPatternStore) TotalCalls() int {
	return m.FindAllCalls() + m.FindBySlugCalls() + m.FindByCategorySlugCalls()
}
