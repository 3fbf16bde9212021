package domain

import (
	"fmt"
	"strings"
)

// Tag is a normalized (trimmed, lowercased) label attached to a pattern.
type Tag struct {
	value string
}

// NewTag creates a Tag from raw author input, trimming surrounding whitespace
// and lowercasing it. Returns a ValidationError if nothing is left.
func NewTag(raw string) (Tag, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Tag{}, newValidationError(
			"tag",
			"",
			fmt.Sprintf("%q must not be empty after normalization", raw),
		)
	}

	return Tag{value: normalized}, nil
}

// String returns the normalized tag text.
func (t Tag) String() string {
	return t.value
}

// Equals reports whether two tags hold the same normalized value.
func (t Tag) Equals(other Tag) bool {
	return t.value == other.value
}
