package content

import (
	"bufio"
	"bytes"
	"errors"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phrazzld/pattern-catalog/internal/domain"
)

const frontmatterDelimiter = "---"

var (
	// ErrMissingFrontmatter is returned when a file does not open with a
	// frontmatter delimiter.
	ErrMissingFrontmatter = errors.New("missing frontmatter delimiter")

	// ErrUnterminatedFrontmatter is returned when the closing delimiter is
	// never found.
	ErrUnterminatedFrontmatter = errors.New("unterminated frontmatter")
)

// categoryDocument is the frontmatter schema of a category file.
type categoryDocument struct {
	Name         string       `yaml:"name"`
	Description  string       `yaml:"description"`
	DisplayOrder displayOrder `yaml:"displayOrder"`
}

// displayOrder decodes a frontmatter number that must be a whole number.
// yaml.v3 would otherwise truncate 1.5 to 1 when decoding into an int.
type displayOrder int

// UnmarshalYAML accepts !!int scalars and floats with no fractional part.
func (d *displayOrder) UnmarshalYAML(node *yaml.Node) error {
	notInteger := &domain.ValidationError{
		Object:  "category",
		Field:   "displayOrder",
		Message: "must be an integer",
	}

	if node.Kind != yaml.ScalarNode {
		return notInteger
	}

	switch node.ShortTag() {
	case "!!int":
		var v int
		if err := node.Decode(&v); err != nil {
			return notInteger
		}
		*d = displayOrder(v)
		return nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil || f != math.Trunc(f) ||
			math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
			return notInteger
		}
		*d = displayOrder(int(f))
		return nil
	default:
		return notInteger
	}
}

func (d categoryDocument) props() domain.CategoryProps {
	return domain.CategoryProps{
		Name:         d.Name,
		Description:  d.Description,
		DisplayOrder: int(d.DisplayOrder),
	}
}

// patternDocument is the frontmatter schema of a pattern file.
type patternDocument struct {
	Name         string                       `yaml:"name"`
	CategorySlug string                       `yaml:"categorySlug"`
	Description  string                       `yaml:"description"`
	Tags         []string                     `yaml:"tags"`
	RepoURL      *string                      `yaml:"repoUrl"`
	SamplePrompt *string                      `yaml:"samplePrompt"`
	Skills       []domain.SkillReferenceProps `yaml:"skills"`
	Tools        []domain.ToolReferenceProps  `yaml:"tools"`
}

func (d patternDocument) props(body string) domain.PatternProps {
	return domain.PatternProps{
		Name:         d.Name,
		CategorySlug: d.CategorySlug,
		Description:  d.Description,
		Tags:         d.Tags,
		RepoURL:      d.RepoURL,
		SamplePrompt: d.SamplePrompt,
		Skills:       d.Skills,
		Tools:        d.Tools,
		Body:         body,
	}
}

// parseDocument splits content into frontmatter and body and decodes the
// frontmatter into out. Leading blank lines of the body are dropped.
func parseDocument(content []byte, out any) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() || strings.TrimRight(scanner.Text(), " \t\r") != frontmatterDelimiter {
		return "", ErrMissingFrontmatter
	}

	var frontmatter []string
	closed := false
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimRight(line, " \t") == frontmatterDelimiter {
			closed = true
			break
		}
		frontmatter = append(frontmatter, line)
	}
	if !closed {
		return "", ErrUnterminatedFrontmatter
	}

	if err := yaml.Unmarshal([]byte(strings.Join(frontmatter, "\n")), out); err != nil {
		return "", err
	}

	var body []string
	for scanner.Scan() {
		body = append(body, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return strings.TrimLeft(strings.Join(body, "\n"), " \t\n"), nil
}
