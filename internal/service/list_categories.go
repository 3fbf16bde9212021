package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/domain/catalog"
	"github.com/phrazzld/pattern-catalog/internal/store"
)

const listCategoriesName = "list_categories"

// CategoryWithPatternCount pairs a category with the number of patterns that
// reference it.
type CategoryWithPatternCount struct {
	Category     *domain.Category
	PatternCount int
}

// ListCategoriesUseCase returns every category in display order annotated
// with its pattern count.
type ListCategoriesUseCase struct {
	categories store.CategoryStore
	patterns   store.PatternStore
	navigation *catalog.CategoryNavigationService
	logger     *slog.Logger
}

// NewListCategoriesUseCase creates a ListCategoriesUseCase.
// It returns an error if any of the required dependencies are nil.
func NewListCategoriesUseCase(
	categories store.CategoryStore,
	patterns store.PatternStore,
	navigation *catalog.CategoryNavigationService,
	logger *slog.Logger,
) (*ListCategoriesUseCase, error) {
	if categories == nil {
		return nil, missingDependency(listCategoriesName, "categories")
	}
	if patterns == nil {
		return nil, missingDependency(listCategoriesName, "patterns")
	}
	if navigation == nil {
		return nil, missingDependency(listCategoriesName, "navigation")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ListCategoriesUseCase{
		categories: categories,
		patterns:   patterns,
		navigation: navigation,
		logger:     logger.With(slog.String("use_case", listCategoriesName)),
	}, nil
}

// Execute fetches categories and patterns concurrently, orders the categories
// by display order and annotates each with its pattern count. Categories
// without patterns are included with a count of zero.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]CategoryWithPatternCount, error) {
	var (
		categories []*domain.Category
		patterns   []*domain.Pattern
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = uc.categories.FindAll(gctx)
		return NewUseCaseError(listCategoriesName, "failed to fetch categories", err)
	})
	g.Go(func() error {
		var err error
		patterns, err = uc.patterns.FindAll(gctx)
		return NewUseCaseError(listCategoriesName, "failed to fetch patterns", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ordered := uc.navigation.ListCategoriesOrdered(categories)
	counts := uc.navigation.CountPatternsPerCategory(categories, patterns)

	result := make([]CategoryWithPatternCount, 0, len(ordered))
	for _, c := range ordered {
		result = append(result, CategoryWithPatternCount{
			Category:     c,
			PatternCount: counts[c.Slug().String()],
		})
	}

	uc.logger.DebugContext(ctx, "listed categories",
		slog.Int("category_count", len(result)),
		slog.Int("pattern_count", len(patterns)))

	return result, nil
}
