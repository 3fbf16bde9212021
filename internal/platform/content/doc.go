// Package content loads catalog categories and patterns from a directory of
// markdown files with YAML frontmatter and serves them through the store
// interfaces.
//
// The expected layout is:
//
//	<dir>/categories/*.md
//	<dir>/patterns/*.md
//
// Each file starts with a frontmatter block delimited by "---" lines; the
// remainder of a pattern file is kept as the pattern body.
//
// Repository caches one load until Invalidate is called. A Watcher calls
// Invalidate on file changes and reports them to an events.EventEmitter,
// where a ReloadHandler can rebuild the cache ahead of the next read.
package content
