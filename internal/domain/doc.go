// Package domain contains the catalog's entities (Category, Pattern) and the
// value objects they are built from (Slug, Tag, DisplayOrder, RepoURL,
// PromptSnippet, SkillReference, ToolReference).
//
// Every type is immutable once constructed and can only be obtained through a
// validating constructor, so any value that exists is valid. Construction
// failures are reported as *ValidationError, which wraps ErrValidation and
// describes the first violated constraint.
package domain
