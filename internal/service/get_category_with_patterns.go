package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/store"
)

const getCategoryWithPatternsName = "get_category_with_patterns"

// CategoryWithPatterns is a category together with the patterns that
// reference it.
type CategoryWithPatterns struct {
	Category *domain.Category
	Patterns []*domain.Pattern
}

// GetCategoryWithPatternsUseCase loads a category and its patterns by slug.
type GetCategoryWithPatternsUseCase struct {
	categories store.CategoryStore
	patterns   store.PatternStore
	logger     *slog.Logger
}

// NewGetCategoryWithPatternsUseCase creates a GetCategoryWithPatternsUseCase.
// It returns an error if any of the required dependencies are nil.
func NewGetCategoryWithPatternsUseCase(
	categories store.CategoryStore,
	patterns store.PatternStore,
	logger *slog.Logger,
) (*GetCategoryWithPatternsUseCase, error) {
	if categories == nil {
		return nil, missingDependency(getCategoryWithPatternsName, "categories")
	}
	if patterns == nil {
		return nil, missingDependency(getCategoryWithPatternsName, "patterns")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GetCategoryWithPatternsUseCase{
		categories: categories,
		patterns:   patterns,
		logger:     logger.With(slog.String("use_case", getCategoryWithPatternsName)),
	}, nil
}

// Execute returns the category with the given slug and its patterns, or nil
// when the category does not exist. Patterns are only fetched once the
// category is known to exist.
func (uc *GetCategoryWithPatternsUseCase) Execute(ctx context.Context, slug string) (*CategoryWithPatterns, error) {
	category, err := uc.categories.FindBySlug(ctx, slug)
	if err != nil {
		return nil, NewUseCaseError(getCategoryWithPatternsName, "failed to fetch category", err)
	}

	if category == nil {
		uc.logger.DebugContext(ctx, "category not found", slog.String("slug", slug))
		return nil, nil
	}

	patterns, err := uc.patterns.FindByCategorySlug(ctx, slug)
	if err != nil {
		return nil, NewUseCaseError(getCategoryWithPatternsName, "failed to fetch patterns", err)
	}

	return &CategoryWithPatterns{
		Category: category,
		Patterns: patterns,
	}, nil
}
