package domain

// CategoryProps is the raw, unvalidated input for a Category.
type CategoryProps struct {
	Name         string `json:"name"         validate:"required"`
	Description  string `json:"description"  validate:"required"`
	DisplayOrder int    `json:"displayOrder" validate:"gt=0"`
}

// Category is a top-level grouping of patterns, for example
// "Context Engineering". Patterns reference a category by slug.
type Category struct {
	name         string
	slug         Slug
	description  string
	displayOrder DisplayOrder
}

// NewCategory validates props and creates a Category. The slug is derived
// from the name so category URLs stay stable and predictable.
// Returns a ValidationError describing the first violated constraint.
func NewCategory(props CategoryProps) (*Category, error) {
	if err := validateStruct("category", props); err != nil {
		return nil, err
	}

	slug, err := SlugFromName(props.Name)
	if err != nil {
		return nil, err
	}

	order, err := NewDisplayOrder(props.DisplayOrder)
	if err != nil {
		return nil, err
	}

	return &Category{
		name:         props.Name,
		slug:         slug,
		description:  props.Description,
		displayOrder: order,
	}, nil
}

// Name returns the human-readable category name.
func (c *Category) Name() string { return c.name }

// Slug returns the slug derived from the name.
func (c *Category) Slug() Slug { return c.slug }

// Description returns the category description.
func (c *Category) Description() string { return c.description }

// DisplayOrder returns the navigation rank.
func (c *Category) DisplayOrder() DisplayOrder { return c.displayOrder }
