package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/pattern-catalog/internal/domain"
)

func mustPattern(t *testing.T, name, categorySlug string, tags ...string) *domain.Pattern {
	t.Helper()
	p, err := domain.NewPattern(domain.PatternProps{
		Name:         name,
		CategorySlug: categorySlug,
		Description:  name + " in practice",
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

func patternNames(patterns []*domain.Pattern) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, p.Name())
	}
	return out
}

func strPtr(s string) *string { return &s }
