package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testingCategory = `---
name: Testing
description: Patterns for keeping agents honest with tests
displayOrder: 2
---
`
	contextCategory = `---
name: Context Engineering
description: Feeding the model the right information
displayOrder: 1
---
`
	guardrailsPattern = `---
name: TDD Guardrails
categorySlug: testing
description: Write the failing test before asking for code
tags: [TDD, testing]
repoUrl: https://github.com/example/tdd-guardrails
samplePrompt: Write a failing test for the parser first.
skills:
  - skillName: tdd
    installCommand: npx skills add tdd
tools:
  - toolName: Vitest
    toolUrl: https://vitest.dev
---

# TDD Guardrails

Keep the red-green loop tight.
`
	packingPattern = `---
name: Context Packing
categorySlug: context-engineering
description: Bundle the files the agent needs
tags:
  - context
---
Pack the context.
`
)

// writeFile writes content to dir/rel, creating parent directories.
func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// newContentDir creates a content directory with two categories and two
// patterns.
func newContentDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "categories/testing.md", testingCategory)
	writeFile(t, dir, "categories/context-engineering.md", contextCategory)
	writeFile(t, dir, "patterns/tdd-guardrails.md", guardrailsPattern)
	writeFile(t, dir, "patterns/context-packing.md", packingPattern)
	return dir
}
