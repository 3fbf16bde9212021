package domain

// PatternProps is the raw, unvalidated input for a Pattern. Optional fields
// are nil when absent.
type PatternProps struct {
	Name         string                `json:"name"         validate:"required"`
	CategorySlug string                `json:"categorySlug" validate:"required"`
	Description  string                `json:"description"  validate:"required"`
	Tags         []string              `json:"tags"         validate:"min=1"`
	RepoURL      *string               `json:"repoUrl"`
	SamplePrompt *string               `json:"samplePrompt"`
	Skills       []SkillReferenceProps `json:"skills"`
	Tools        []ToolReferenceProps  `json:"tools"`
	Body         string                `json:"body"`
}

// Pattern is a reusable AI coding pattern that belongs to a category.
type Pattern struct {
	name         string
	slug         Slug
	categorySlug Slug
	description  string
	tags         []Tag
	repoURL      *RepoURL
	samplePrompt *PromptSnippet
	skills       []SkillReference
	tools        []ToolReference
	body         string
}

// NewPattern validates props and creates a Pattern with all derived value
// objects. The slug is derived from the name; the category slug is authored
// content and is validated as-is.
// Returns a ValidationError describing the first violated constraint.
func NewPattern(props PatternProps) (*Pattern, error) {
	if err := validateStruct("pattern", props); err != nil {
		return nil, err
	}

	slug, err := SlugFromName(props.Name)
	if err != nil {
		return nil, err
	}

	categorySlug, err := NewSlug(props.CategorySlug)
	if err != nil {
		return nil, err
	}

	tags := make([]Tag, 0, len(props.Tags))
	for _, raw := range props.Tags {
		tag, err := NewTag(raw)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	p := &Pattern{
		name:         props.Name,
		slug:         slug,
		categorySlug: categorySlug,
		description:  props.Description,
		tags:         tags,
		body:         props.Body,
	}

	if props.RepoURL != nil {
		repoURL, err := NewRepoURL(*props.RepoURL)
		if err != nil {
			return nil, err
		}
		p.repoURL = &repoURL
	}

	if props.SamplePrompt != nil {
		snippet, err := NewPromptSnippet(*props.SamplePrompt)
		if err != nil {
			return nil, err
		}
		p.samplePrompt = &snippet
	}

	if props.Skills != nil {
		p.skills = make([]SkillReference, 0, len(props.Skills))
		for _, skillProps := range props.Skills {
			skill, err := NewSkillReference(skillProps)
			if err != nil {
				return nil, err
			}
			p.skills = append(p.skills, skill)
		}
	}

	if props.Tools != nil {
		p.tools = make([]ToolReference, 0, len(props.Tools))
		for _, toolProps := range props.Tools {
			tool, err := NewToolReference(toolProps)
			if err != nil {
				return nil, err
			}
			p.tools = append(p.tools, tool)
		}
	}

	return p, nil
}

// Name returns the human-readable pattern name.
func (p *Pattern) Name() string { return p.name }

// Slug returns the slug derived from the name.
func (p *Pattern) Slug() Slug { return p.slug }

// CategorySlug returns the slug of the category this pattern belongs to.
// The category is not guaranteed to exist.
func (p *Pattern) CategorySlug() Slug { return p.categorySlug }

// Description returns the pattern description.
func (p *Pattern) Description() string { return p.description }

// Body returns the markdown body authored below the frontmatter.
func (p *Pattern) Body() string { return p.body }

// Tags returns a copy of the pattern's tags in authored order.
func (p *Pattern) Tags() []Tag {
	return append([]Tag(nil), p.tags...)
}

// HasTag reports whether the pattern carries the given tag.
func (p *Pattern) HasTag(tag Tag) bool {
	for _, t := range p.tags {
		if t.Equals(tag) {
			return true
		}
	}
	return false
}

// RepoURL returns the repository URL, or nil when none was authored.
func (p *Pattern) RepoURL() *RepoURL {
	if p.repoURL == nil {
		return nil
	}
	u := *p.repoURL
	return &u
}

// SamplePrompt returns the sample prompt, or nil when none was authored.
func (p *Pattern) SamplePrompt() *PromptSnippet {
	if p.samplePrompt == nil {
		return nil
	}
	s := *p.samplePrompt
	return &s
}

// Skills returns a copy of the skill references, or nil when none were authored.
func (p *Pattern) Skills() []SkillReference {
	if p.skills == nil {
		return nil
	}
	return append(make([]SkillReference, 0, len(p.skills)), p.skills...)
}

// Tools returns a copy of the tool references, or nil when none were authored.
func (p *Pattern) Tools() []ToolReference {
	if p.tools == nil {
		return nil
	}
	return append(make([]ToolReference, 0, len(p.tools)), p.tools...)
}
