package api

import (
	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/service"
)

// ListPatternsQuery holds the optional filters of GET /api/patterns.
// A nil field means the parameter was absent.
type ListPatternsQuery struct {
	Tag   *string `validate:"omitnil,max=64"`
	Query *string `validate:"omitnil,max=200"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	// PatternCount is only set by the category listing.
	PatternCount *int `json:"pattern_count,omitempty"`
}

// CategoryDetailResponse is a category with its patterns.
type CategoryDetailResponse struct {
	Category CategoryResponse         `json:"category"`
	Patterns []PatternSummaryResponse `json:"patterns"`
}

// PatternSummaryResponse is the list view of a pattern.
type PatternSummaryResponse struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	CategorySlug string   `json:"category_slug"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
}

// SkillResponse represents an installable skill.
type SkillResponse struct {
	SkillName      string `json:"skill_name"`
	InstallCommand string `json:"install_command"`
}

// ToolResponse represents an external tool.
type ToolResponse struct {
	ToolName string `json:"tool_name"`
	ToolURL  string `json:"tool_url"`
}

// PatternResponse is the detail view of a pattern.
type PatternResponse struct {
	PatternSummaryResponse
	Body         string          `json:"body"`
	RepoURL      *string         `json:"repo_url,omitempty"`
	SamplePrompt *string         `json:"sample_prompt,omitempty"`
	Skills       []SkillResponse `json:"skills,omitempty"`
	Tools        []ToolResponse  `json:"tools,omitempty"`
}

// TagsResponse lists the distinct tags in the catalog.
type TagsResponse struct {
	Tags []string `json:"tags"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

func categoryToResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		Slug:         c.Slug().String(),
		Name:         c.Name(),
		Description:  c.Description(),
		DisplayOrder: c.DisplayOrder().Value(),
	}
}

func categoryWithCountToResponse(entry service.CategoryWithPatternCount) CategoryResponse {
	resp := categoryToResponse(entry.Category)
	count := entry.PatternCount
	resp.PatternCount = &count
	return resp
}

func patternToSummary(p *domain.Pattern) PatternSummaryResponse {
	return PatternSummaryResponse{
		Slug:         p.Slug().String(),
		Name:         p.Name(),
		CategorySlug: p.CategorySlug().String(),
		Description:  p.Description(),
		Tags:         tagsToStrings(p.Tags()),
	}
}

func patternsToSummaries(patterns []*domain.Pattern) []PatternSummaryResponse {
	out := make([]PatternSummaryResponse, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, patternToSummary(p))
	}
	return out
}

func patternToResponse(p *domain.Pattern) PatternResponse {
	resp := PatternResponse{
		PatternSummaryResponse: patternToSummary(p),
		Body:                   p.Body(),
	}

	if u := p.RepoURL(); u != nil {
		s := u.String()
		resp.RepoURL = &s
	}
	if sp := p.SamplePrompt(); sp != nil {
		s := sp.String()
		resp.SamplePrompt = &s
	}
	for _, skill := range p.Skills() {
		resp.Skills = append(resp.Skills, SkillResponse{
			SkillName:      skill.SkillName(),
			InstallCommand: skill.InstallCommand(),
		})
	}
	for _, tool := range p.Tools() {
		resp.Tools = append(resp.Tools, ToolResponse{
			ToolName: tool.ToolName(),
			ToolURL:  tool.ToolURL(),
		})
	}

	return resp
}

func tagsToStrings(tags []domain.Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}
	return out
}
