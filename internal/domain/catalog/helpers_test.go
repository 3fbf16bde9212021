package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/pattern-catalog/internal/domain"
)

func mustPattern(t *testing.T, name, categorySlug, description string, tags ...string) *domain.Pattern {
	t.Helper()
	p, err := domain.NewPattern(domain.PatternProps{
		Name:         name,
		CategorySlug: categorySlug,
		Description:  description,
		Tags:         tags,
	})
	require.NoError(t, err)
	return p
}

func mustCategory(t *testing.T, name string, order int) *domain.Category {
	t.Helper()
	c, err := domain.NewCategory(domain.CategoryProps{
		Name:         name,
		Description:  name + " patterns",
		DisplayOrder: order,
	})
	require.NoError(t, err)
	return c
}

func names[T interface{ Name() string }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name())
	}
	return out
}
