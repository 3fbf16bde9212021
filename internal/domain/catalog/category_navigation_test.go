package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/pattern-catalog/internal/domain"
)

func TestCategoryNavigationService_ListCategoriesOrdered(t *testing.T) {
	t.Parallel()

	categories := []*domain.Category{
		mustCategory(t, "Testing", 3),
		mustCategory(t, "Context", 1),
		mustCategory(t, "Planning", 2),
	}
	original := append([]*domain.Category(nil), categories...)

	ordered := NewCategoryNavigationService().ListCategoriesOrdered(categories)

	assert.Equal(t, []string{"Context", "Planning", "Testing"}, names(ordered))
	assert.Equal(t, original, categories, "input must not be modified")
	assert.ElementsMatch(t, categories, ordered, "result must be a permutation")
}

func TestCategoryNavigationService_ListCategoriesOrdered_StableTies(t *testing.T) {
	t.Parallel()

	categories := []*domain.Category{
		mustCategory(t, "Beta", 2),
		mustCategory(t, "Alpha", 1),
		mustCategory(t, "Gamma", 2),
		mustCategory(t, "Delta", 2),
	}

	ordered := NewCategoryNavigationService().ListCategoriesOrdered(categories)

	assert.Equal(t, []string{"Alpha", "Beta", "Gamma", "Delta"}, names(ordered))
	for i := 1; i < len(ordered); i++ {
		assert.LessOrEqual(t, ordered[i-1].DisplayOrder().Value(), ordered[i].DisplayOrder().Value())
	}
}

func TestCategoryNavigationService_ListCategoriesOrdered_Empty(t *testing.T) {
	t.Parallel()

	ordered := NewCategoryNavigationService().ListCategoriesOrdered(nil)
	assert.NotNil(t, ordered)
	assert.Empty(t, ordered)
}

func TestCategoryNavigationService_CountPatternsPerCategory(t *testing.T) {
	t.Parallel()

	categories := []*domain.Category{
		mustCategory(t, "Testing", 1),
		mustCategory(t, "Context", 2),
		mustCategory(t, "Empty", 3),
	}
	patterns := []*domain.Pattern{
		mustPattern(t, "TDD Guardrails", "testing", "d", "tdd"),
		mustPattern(t, "TDD Basics", "testing", "d", "tdd"),
		mustPattern(t, "Context Packing", "context", "d", "context"),
		mustPattern(t, "Orphan", "no-such-category", "d", "misc"),
	}

	counts := NewCategoryNavigationService().CountPatternsPerCategory(categories, patterns)

	assert.Equal(t, map[string]int{
		"testing": 2,
		"context": 1,
		"empty":   0,
	}, counts)

	require.Len(t, counts, len(categories))
	total := 0
	for _, n := range counts {
		assert.GreaterOrEqual(t, n, 0)
		total += n
	}
	assert.Equal(t, 3, total, "orphan pattern must not be counted")
}

func TestCategoryNavigationService_CountPatternsPerCategory_NoPatterns(t *testing.T) {
	t.Parallel()

	categories := []*domain.Category{mustCategory(t, "Testing", 1)}
	counts := NewCategoryNavigationService().CountPatternsPerCategory(categories, nil)
	assert.Equal(t, map[string]int{"testing": 0}, counts)
}
