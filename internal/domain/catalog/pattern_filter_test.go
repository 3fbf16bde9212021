package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/pattern-catalog/internal/domain"
)

func TestPatternFilterService_FilterByTag(t *testing.T) {
	t.Parallel()

	patterns := []*domain.Pattern{
		mustPattern(t, "TDD Guardrails", "testing", "Failing tests first", "tdd", "guardrails"),
		mustPattern(t, "Context Packing", "context", "Pack the window", "context"),
		mustPattern(t, "TDD Basics", "testing", "Red green refactor", "TDD"),
	}
	svc := NewPatternFilterService()

	tests := []struct {
		name string
		tag  string
		want []string
	}{
		{name: "exact match keeps order", tag: "tdd", want: []string{"TDD Guardrails", "TDD Basics"}},
		{name: "case insensitive", tag: "TdD", want: []string{"TDD Guardrails", "TDD Basics"}},
		{name: "single match", tag: "context", want: []string{"Context Packing"}},
		{name: "no substring matching", tag: "td", want: []string{}},
		{name: "no match", tag: "bdd", want: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := svc.FilterByTag(patterns, tt.tag)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestPatternFilterService_FilterByTag_Subsequence(t *testing.T) {
	t.Parallel()

	patterns := []*domain.Pattern{
		mustPattern(t, "A", "x", "a", "one", "two"),
		mustPattern(t, "B", "x", "b", "two"),
		mustPattern(t, "C", "x", "c", "three"),
		mustPattern(t, "D", "x", "d", "TWO", "three"),
	}
	original := append([]*domain.Pattern(nil), patterns...)

	got := NewPatternFilterService().FilterByTag(patterns, "Two")

	// Every result carries the tag and appears in input order.
	next := 0
	for _, p := range got {
		found := false
		for _, tag := range p.Tags() {
			if tag.String() == "two" {
				found = true
			}
		}
		assert.True(t, found, "%s lacks tag", p.Name())

		for next < len(patterns) && patterns[next] != p {
			next++
		}
		assert.Less(t, next, len(patterns), "result is not an ordered subsequence")
		next++
	}

	assert.Equal(t, []string{"A", "B", "D"}, names(got))
	assert.Equal(t, original, patterns, "input must not be modified")
}

func TestPatternFilterService_Search(t *testing.T) {
	t.Parallel()

	patterns := []*domain.Pattern{
		mustPattern(t, "TDD Guardrails", "testing", "Keep agents honest", "tdd"),
		mustPattern(t, "Context Packing", "context", "Squeeze more GUARDRAILS into context", "context"),
		mustPattern(t, "Spec First", "planning", "Write the spec", "spec"),
	}
	svc := NewPatternFilterService()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "matches name", query: "spec first", want: []string{"Spec First"}},
		{name: "matches description case insensitive", query: "guardrails", want: []string{"TDD Guardrails", "Context Packing"}},
		{name: "substring", query: "pack", want: []string{"Context Packing"}},
		{name: "empty query matches all", query: "", want: []string{"TDD Guardrails", "Context Packing", "Spec First"}},
		{name: "no match", query: "kubernetes", want: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, names(svc.Search(patterns, tt.query)))
		})
	}
}

func TestPatternFilterService_EmptyInput(t *testing.T) {
	t.Parallel()

	svc := NewPatternFilterService()
	assert.Empty(t, svc.FilterByTag(nil, "tdd"))
	assert.Empty(t, svc.Search(nil, "tdd"))
	assert.Empty(t, svc.Search([]*domain.Pattern{}, ""))
}

func TestPatternFilterService_DistinctTags(t *testing.T) {
	t.Parallel()

	patterns := []*domain.Pattern{
		mustPattern(t, "TDD Guardrails", "testing", "Failing tests first", "tdd", "guardrails"),
		mustPattern(t, "Context Packing", "context", "Pack the window", "context"),
		mustPattern(t, "TDD Basics", "testing", "Red green refactor", "TDD"),
	}

	tags := NewPatternFilterService().DistinctTags(patterns)

	got := make([]string, 0, len(tags))
	for _, tag := range tags {
		got = append(got, tag.String())
	}
	assert.Equal(t, []string{"context", "guardrails", "tdd"}, got)
	assert.Empty(t, NewPatternFilterService().DistinctTags(nil))
}
