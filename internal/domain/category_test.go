package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Parallel()

	category, err := NewCategory(CategoryProps{
		Name:         "Context Engineering",
		Description:  "Patterns for shaping what the model sees",
		DisplayOrder: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "Context Engineering", category.Name())
	assert.Equal(t, "context-engineering", category.Slug().String())
	assert.Equal(t, "Patterns for shaping what the model sees", category.Description())
	assert.Equal(t, 1, category.DisplayOrder().Value())
}

func TestNewCategory_ValidationErrors(t *testing.T) {
	t.Parallel()

	valid := CategoryProps{Name: "Testing", Description: "desc", DisplayOrder: 2}

	tests := []struct {
		name      string
		mutate    func(p *CategoryProps)
		wantField string
	}{
		{name: "empty name", mutate: func(p *CategoryProps) { p.Name = "" }, wantField: "name"},
		{name: "empty description", mutate: func(p *CategoryProps) { p.Description = "" }, wantField: "description"},
		{name: "zero display order", mutate: func(p *CategoryProps) { p.DisplayOrder = 0 }, wantField: "displayOrder"},
		{name: "negative display order", mutate: func(p *CategoryProps) { p.DisplayOrder = -4 }, wantField: "displayOrder"},
		{
			name: "structural error wins over later fields",
			mutate: func(p *CategoryProps) {
				p.Name = ""
				p.DisplayOrder = 0
			},
			wantField: "name",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			props := valid
			tt.mutate(&props)

			category, err := NewCategory(props)
			require.Error(t, err)
			assert.Nil(t, category)
			assert.True(t, errors.Is(err, ErrValidation))

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, "category", validationErr.Object)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestNewCategory_UnsluggableName(t *testing.T) {
	t.Parallel()

	_, err := NewCategory(CategoryProps{Name: "???", Description: "desc", DisplayOrder: 1})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "slug", validationErr.Object)
}
