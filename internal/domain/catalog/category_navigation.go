package catalog

import (
	"slices"

	"github.com/phrazzld/pattern-catalog/internal/domain"
)

// CategoryNavigationService orders categories and counts their patterns.
type CategoryNavigationService struct{}

// NewCategoryNavigationService creates a CategoryNavigationService.
func NewCategoryNavigationService() *CategoryNavigationService {
	return &CategoryNavigationService{}
}

// ListCategoriesOrdered returns a copy of categories sorted ascending by
// display order. Categories with equal order keep their relative order.
func (s *CategoryNavigationService) ListCategoriesOrdered(categories []*domain.Category) []*domain.Category {
	ordered := slices.Clone(categories)
	if ordered == nil {
		ordered = []*domain.Category{}
	}

	slices.SortStableFunc(ordered, func(a, b *domain.Category) int {
		return a.DisplayOrder().CompareTo(b.DisplayOrder())
	})

	return ordered
}

// CountPatternsPerCategory maps every category slug to the number of patterns
// that reference it. Categories without patterns map to zero. Patterns whose
// category slug matches no category are not counted anywhere.
func (s *CategoryNavigationService) CountPatternsPerCategory(
	categories []*domain.Category,
	patterns []*domain.Pattern,
) map[string]int {
	counts := make(map[string]int, len(categories))
	for _, c := range categories {
		counts[c.Slug().String()] = 0
	}

	for _, p := range patterns {
		key := p.CategorySlug().String()
		if _, known := counts[key]; known {
			counts[key]++
		}
	}

	return counts
}
