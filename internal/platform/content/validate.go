package content

import (
	"context"
	"fmt"
)

// IssueKind classifies a content consistency problem.
type IssueKind string

const (
	// IssueOrphanPattern marks a pattern whose category slug matches no category.
	IssueOrphanPattern IssueKind = "orphan_pattern"
	// IssueDuplicateSlug marks an entity whose slug is already taken.
	IssueDuplicateSlug IssueKind = "duplicate_slug"
)

// Issue is a consistency problem that does not stop content from loading.
type Issue struct {
	Kind    IssueKind
	Path    string
	Slug    string
	Message string
}

// String formats the issue for terminal output.
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (%s)", i.Path, i.Message, i.Kind)
}

// Report summarizes a validation run.
type Report struct {
	Categories int
	Patterns   int
	Issues     []Issue
}

// Validate loads the content directory and reports cross-file problems that
// the domain constructors cannot see. A load failure is returned as an error;
// issues are warnings.
func (l *Loader) Validate(ctx context.Context) (*Report, error) {
	snap, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Report{
		Categories: len(snap.categoryFiles),
		Patterns:   len(snap.patternFiles),
		Issues:     snap.Issues(),
	}, nil
}

// Issues reports duplicate slugs and patterns that reference unknown
// categories, in file order.
func (s *Snapshot) Issues() []Issue {
	issues := []Issue{}

	categoryPaths := make(map[string]string, len(s.categoryFiles))
	for _, f := range s.categoryFiles {
		slug := f.entity.Slug().String()
		if first, seen := categoryPaths[slug]; seen {
			issues = append(issues, Issue{
				Kind:    IssueDuplicateSlug,
				Path:    f.path,
				Slug:    slug,
				Message: fmt.Sprintf("category slug %q already defined in %s", slug, first),
			})
			continue
		}
		categoryPaths[slug] = f.path
	}

	patternPaths := make(map[string]string, len(s.patternFiles))
	for _, f := range s.patternFiles {
		slug := f.entity.Slug().String()
		if first, seen := patternPaths[slug]; seen {
			issues = append(issues, Issue{
				Kind:    IssueDuplicateSlug,
				Path:    f.path,
				Slug:    slug,
				Message: fmt.Sprintf("pattern slug %q already defined in %s", slug, first),
			})
		} else {
			patternPaths[slug] = f.path
		}

		categorySlug := f.entity.CategorySlug().String()
		if _, ok := categoryPaths[categorySlug]; !ok {
			issues = append(issues, Issue{
				Kind:    IssueOrphanPattern,
				Path:    f.path,
				Slug:    slug,
				Message: fmt.Sprintf("category %q does not exist", categorySlug),
			})
		}
	}

	return issues
}
