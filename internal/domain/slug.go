package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugPattern        = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonAlphanumericRun = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slug is a URL-safe identifier made of lowercase letters, digits and single
// hyphens. The zero value is not a valid slug; use NewSlug or SlugFromName.
type Slug struct {
	value string
}

// NewSlug creates a Slug from an already-slugified string.
// Returns a ValidationError if the input does not match the slug grammar.
func NewSlug(s string) (Slug, error) {
	if s == "" {
		return Slug{}, newValidationError("slug", "", "slug must not be empty")
	}

	if !slugPattern.MatchString(s) {
		return Slug{}, newValidationError(
			"slug",
			"",
			fmt.Sprintf("%q must be lowercase alphanumeric with hyphens", s),
		)
	}

	return Slug{value: s}, nil
}

// SlugFromName derives a Slug from a human-readable name by lowercasing it,
// replacing every run of non-alphanumeric characters with a single hyphen and
// stripping leading and trailing hyphens.
//
//	SlugFromName("TDD & BDD: Testing!") // "tdd-bdd-testing"
func SlugFromName(name string) (Slug, error) {
	slugified := nonAlphanumericRun.ReplaceAllString(strings.ToLower(name), "-")
	return NewSlug(strings.Trim(slugified, "-"))
}

// String returns the slug text.
func (s Slug) String() string {
	return s.value
}

// Equals reports whether two slugs hold the same value.
func (s Slug) Equals(other Slug) bool {
	return s.value == other.value
}

// IsZero reports whether the slug is the unset zero value.
func (s Slug) IsZero() bool {
	return s.value == ""
}
