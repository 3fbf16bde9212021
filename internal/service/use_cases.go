package service

import (
	"log/slog"

	"github.com/phrazzld/pattern-catalog/internal/domain/catalog"
	"github.com/phrazzld/pattern-catalog/internal/store"
)

// UseCases bundles every catalog use case wired against the same stores.
type UseCases struct {
	ListCategories          *ListCategoriesUseCase
	FilterPatterns          *FilterPatternsUseCase
	GetPatternDetail        *GetPatternDetailUseCase
	GetCategoryWithPatterns *GetCategoryWithPatternsUseCase
	ListTags                *ListTagsUseCase
}

// NewUseCases wires all use cases from the given stores, creating the shared
// domain services. It returns an error if either store is nil.
func NewUseCases(
	categories store.CategoryStore,
	patterns store.PatternStore,
	logger *slog.Logger,
) (*UseCases, error) {
	navigation := catalog.NewCategoryNavigationService()
	filter := catalog.NewPatternFilterService()

	listCategories, err := NewListCategoriesUseCase(categories, patterns, navigation, logger)
	if err != nil {
		return nil, err
	}

	filterPatterns, err := NewFilterPatternsUseCase(patterns, filter, logger)
	if err != nil {
		return nil, err
	}

	getPatternDetail, err := NewGetPatternDetailUseCase(patterns, logger)
	if err != nil {
		return nil, err
	}

	getCategoryWithPatterns, err := NewGetCategoryWithPatternsUseCase(categories, patterns, logger)
	if err != nil {
		return nil, err
	}

	listTags, err := NewListTagsUseCase(patterns, filter, logger)
	if err != nil {
		return nil, err
	}

	return &UseCases{
		ListCategories:          listCategories,
		FilterPatterns:          filterPatterns,
		GetPatternDetail:        getPatternDetail,
		GetCategoryWithPatterns: getCategoryWithPatterns,
		ListTags:                listTags,
	}, nil
}
