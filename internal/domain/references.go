package domain

import "fmt"

// RepoURL is the well-formed URL of a pattern's reference repository.
type RepoURL struct {
	value string
}

// NewRepoURL creates a RepoURL, rejecting empty or malformed URLs.
func NewRepoURL(raw string) (RepoURL, error) {
	if !isValidURL(raw) {
		return RepoURL{}, newValidationError(
			"repo URL",
			"",
			fmt.Sprintf("%q must be a valid URL", raw),
		)
	}

	return RepoURL{value: raw}, nil
}

// String returns the URL text.
func (u RepoURL) String() string {
	return u.value
}

// PromptSnippet is free-form text meant to be pasted into an AI prompt.
type PromptSnippet struct {
	value string
}

// NewPromptSnippet creates a PromptSnippet from a non-empty string.
func NewPromptSnippet(snippet string) (PromptSnippet, error) {
	if snippet == "" {
		return PromptSnippet{}, newValidationError("prompt snippet", "", "must not be empty")
	}

	return PromptSnippet{value: snippet}, nil
}

// String returns the snippet text.
func (p PromptSnippet) String() string {
	return p.value
}

// SkillReferenceProps is the raw input for a SkillReference.
type SkillReferenceProps struct {
	SkillName      string `json:"skillName"      yaml:"skillName"      validate:"required"`
	InstallCommand string `json:"installCommand" yaml:"installCommand" validate:"required"`
}

// SkillReference names an installable agent skill and the command that
// installs it.
type SkillReference struct {
	skillName      string
	installCommand string
}

// NewSkillReference validates both fields and creates a SkillReference.
func NewSkillReference(props SkillReferenceProps) (SkillReference, error) {
	if err := validateStruct("skill reference", props); err != nil {
		return SkillReference{}, err
	}

	return SkillReference{
		skillName:      props.SkillName,
		installCommand: props.InstallCommand,
	}, nil
}

// SkillName returns the skill's name.
func (s SkillReference) SkillName() string { return s.skillName }

// InstallCommand returns the shell command that installs the skill.
func (s SkillReference) InstallCommand() string { return s.installCommand }

// ToolReferenceProps is the raw input for a ToolReference.
type ToolReferenceProps struct {
	ToolName string `json:"toolName" yaml:"toolName" validate:"required"`
	ToolURL  string `json:"toolUrl"  yaml:"toolUrl"  validate:"required"`
}

// ToolReference points at an external tool that supports a pattern.
type ToolReference struct {
	toolName string
	toolURL  string
}

// NewToolReference validates the tool name and URL and creates a
// ToolReference. Presence of both fields is checked before the URL format.
func NewToolReference(props ToolReferenceProps) (ToolReference, error) {
	if err := validateStruct("tool reference", props); err != nil {
		return ToolReference{}, err
	}

	if !isValidURL(props.ToolURL) {
		return ToolReference{}, newValidationError("tool reference", "toolUrl", "must be a valid URL")
	}

	return ToolReference{
		toolName: props.ToolName,
		toolURL:  props.ToolURL,
	}, nil
}

// ToolName returns the tool's display name.
func (t ToolReference) ToolName() string { return t.toolName }

// ToolURL returns the tool's homepage or repository URL.
func (t ToolReference) ToolURL() string { return t.toolURL }
