package catalog

import (
	"slices"
	"strings"

	"github.com/phrazzld/pattern-catalog/internal/domain"
)

// PatternFilterService narrows pattern collections by tag or free text.
type PatternFilterService struct{}

// NewPatternFilterService creates a PatternFilterService.
func NewPatternFilterService() *PatternFilterService {
	return &PatternFilterService{}
}

// FilterByTag returns the patterns carrying a tag equal to tag, compared
// case-insensitively, in their original order. Tags are stored normalized, so
// only the input needs lowercasing.
func (s *PatternFilterService) FilterByTag(patterns []*domain.Pattern, tag string) []*domain.Pattern {
	normalized := strings.ToLower(tag)

	return filter(patterns, func(p *domain.Pattern) bool {
		for _, t := range p.Tags() {
			if t.String() == normalized {
				return true
			}
		}
		return false
	})
}

// Search returns the patterns whose name or description contains query,
// compared case-insensitively, in their original order. An empty query
// matches every pattern.
func (s *PatternFilterService) Search(patterns []*domain.Pattern, query string) []*domain.Pattern {
	normalized := strings.ToLower(query)

	return filter(patterns, func(p *domain.Pattern) bool {
		return strings.Contains(strings.ToLower(p.Name()), normalized) ||
			strings.Contains(strings.ToLower(p.Description()), normalized)
	})
}

// DistinctTags returns every tag used by patterns, once each, sorted
// alphabetically.
func (s *PatternFilterService) DistinctTags(patterns []*domain.Pattern) []domain.Tag {
	seen := make(map[string]domain.Tag)
	for _, p := range patterns {
		for _, t := range p.Tags() {
			seen[t.String()] = t
		}
	}

	tags := make([]domain.Tag, 0, len(seen))
	for _, t := range seen {
		tags = append(tags, t)
	}
	slices.SortFunc(tags, func(a, b domain.Tag) int {
		return strings.Compare(a.String(), b.String())
	})

	return tags
}

func filter(patterns []*domain.Pattern, keep func(*domain.Pattern) bool) []*domain.Pattern {
	result := make([]*domain.Pattern, 0, len(patterns))
	for _, p := range patterns {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result
}
