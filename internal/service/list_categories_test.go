package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/domain/catalog"
	"github.com/phrazzld/pattern-catalog/internal/mocks"
	"github.com/phrazzld/pattern-catalog/internal/store"
)

func TestNewListCategoriesUseCase(t *testing.T) {
	tests := []struct {
		name        string
		categories  store.CategoryStore
		patterns    store.PatternStore
		navigation  *catalog.CategoryNavigationService
		logger      *slog.Logger
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil categories",
			patterns:    mocks.NewMockPatternStore(),
			navigation:  catalog.NewCategoryNavigationService(),
			expectError: true,
			errorMsg:    "categories",
		},
		{
			name:        "nil patterns",
			categories:  mocks.NewMockCategoryStore(),
			navigation:  catalog.NewCategoryNavigationService(),
			expectError: true,
			errorMsg:    "patterns",
		},
		{
			name:        "nil navigation",
			categories:  mocks.NewMockCategoryStore(),
			patterns:    mocks.NewMockPatternStore(),
			expectError: true,
			errorMsg:    "navigation",
		},
		{
			name:       "nil logger uses default",
			categories: mocks.NewMockCategoryStore(),
			patterns:   mocks.NewMockPatternStore(),
			navigation: catalog.NewCategoryNavigationService(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := NewListCategoriesUseCase(tt.categories, tt.patterns, tt.navigation, tt.logger)
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, uc)
				assert.ErrorIs(t, err, ErrMissingDependency)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, uc)
		})
	}
}

func TestListCategoriesUseCase_Execute(t *testing.T) {
	t.Parallel()

	categories := mocks.NewMockCategoryStore(
		mustCategory(t, "Testing", 2),
		mustCategory(t, "Context", 1),
		mustCategory(t, "Empty", 3),
	)
	patterns := mocks.NewMockPatternStore(
		mustPattern(t, "TDD Guardrails", "testing", "tdd"),
		mustPattern(t, "TDD Basics", "testing", "tdd"),
		mustPattern(t, "Context Packing", "context", "context"),
		mustPattern(t, "Orphan", "unknown", "misc"),
	)

	uc, err := NewListCategoriesUseCase(categories, patterns, catalog.NewCategoryNavigationService(), nil)
	require.NoError(t, err)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 3)

	got := map[string]int{}
	var order []string
	for _, entry := range result {
		order = append(order, entry.Category.Slug().String())
		got[entry.Category.Slug().String()] = entry.PatternCount
	}

	assert.Equal(t, []string{"context", "testing", "empty"}, order)
	assert.Equal(t, map[string]int{"context": 1, "testing": 2, "empty": 0}, got)
	assert.Equal(t, 1, categories.FindAllCalls())
	assert.Equal(t, 1, patterns.FindAllCalls())
}

func TestListCategoriesUseCase_FetchesConcurrently(t *testing.T) {
	t.Parallel()

	// Each fetch waits until the other one has started; a sequential
	// implementation would time out.
	var started sync.WaitGroup
	started.Add(2)
	waitForBoth := func(ctx context.Context) error {
		started.Done()
		done := make(chan struct{})
		go func() {
			started.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("fetches did not overlap")
		}
	}

	category := mustCategory(t, "Testing", 1)
	pattern := mustPattern(t, "TDD Basics", "testing", "tdd")

	categories := &mocks.MockCategoryStore{
		FindAllFn: func(ctx context.Context) ([]*domain.Category, error) {
			return []*domain.Category{category}, waitForBoth(ctx)
		},
	}
	patterns := &mocks.MockPatternStore{
		FindAllFn: func(ctx context.Context) ([]*domain.Pattern, error) {
			return []*domain.Pattern{pattern}, waitForBoth(ctx)
		},
	}

	uc, err := NewListCategoriesUseCase(categories, patterns, catalog.NewCategoryNavigationService(), nil)
	require.NoError(t, err)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].PatternCount)
}

func TestListCategoriesUseCase_RepositoryErrors(t *testing.T) {
	t.Parallel()

	sourceErr := store.NewStoreError("category", "find_all", "failed to load content", errors.New("disk gone"))

	tests := []struct {
		name       string
		categories *mocks.MockCategoryStore
		patterns   *mocks.MockPatternStore
		wantMsg    string
	}{
		{
			name:       "categories fail",
			categories: &mocks.MockCategoryStore{Err: sourceErr},
			patterns:   mocks.NewMockPatternStore(),
			wantMsg:    "failed to fetch categories",
		},
		{
			name:       "patterns fail",
			categories: mocks.NewMockCategoryStore(),
			patterns:   &mocks.MockPatternStore{Err: sourceErr},
			wantMsg:    "failed to fetch patterns",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			uc, err := NewListCategoriesUseCase(tt.categories, tt.patterns, catalog.NewCategoryNavigationService(), nil)
			require.NoError(t, err)

			result, err := uc.Execute(context.Background())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, store.IsSourceError(err))

			var ucErr *UseCaseError
			require.ErrorAs(t, err, &ucErr)
			assert.Equal(t, "list_categories", ucErr.UseCase)
			assert.Equal(t, tt.wantMsg, ucErr.Message)
		})
	}
}
