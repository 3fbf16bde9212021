package domain

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "context-engineering"},
		{name: "digits", input: "tdd-101"},
		{name: "single word", input: "testing"},
		{name: "empty", input: "", wantErr: true},
		{name: "uppercase", input: "Context", wantErr: true},
		{name: "leading hyphen", input: "-tdd", wantErr: true},
		{name: "trailing hyphen", input: "tdd-", wantErr: true},
		{name: "double hyphen", input: "tdd--bdd", wantErr: true},
		{name: "space", input: "tdd bdd", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			slug, err := NewSlug(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
				assert.True(t, slug.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, slug.String())
		})
	}
}

func TestSlugFromName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "two words", input: "Context Engineering", want: "context-engineering"},
		{name: "special characters", input: "TDD & BDD: Testing!", want: "tdd-bdd-testing"},
		{name: "surrounding punctuation", input: "  --Guardrails--  ", want: "guardrails"},
		{name: "digits kept", input: "Agents 2.0", want: "agents-2-0"},
		{name: "already a slug", input: "spec-driven", want: "spec-driven"},
	}

	grammar := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			first, err := SlugFromName(tt.input)
			require.NoError(t, err)
			second, err := SlugFromName(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.want, first.String())
			assert.True(t, first.Equals(second), "derivation must be deterministic")
			assert.Regexp(t, grammar, first.String())
		})
	}
}

func TestSlugFromName_NothingLeft(t *testing.T) {
	t.Parallel()

	_, err := SlugFromName("!!! ???")
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "slug", validationErr.Object)
	assert.Contains(t, validationErr.Error(), "must not be empty")
}

func TestSlugEquality(t *testing.T) {
	t.Parallel()

	a, err := NewSlug("test")
	require.NoError(t, err)
	b, err := NewSlug("test")
	require.NoError(t, err)
	c, err := NewSlug("other")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.Equal(t, a, b, "slugs compare by value")
	assert.False(t, a.Equals(c))
}
