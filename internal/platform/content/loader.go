package content

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/platform/memory"
)

const (
	// CategoriesDir is the subdirectory holding category files.
	CategoriesDir = "categories"
	// PatternsDir is the subdirectory holding pattern files.
	PatternsDir = "patterns"

	fileExtension = ".md"
)

// LoadError identifies the content file that could not be loaded.
type LoadError struct {
	// Path is the file (or directory) that failed.
	Path string
	// Err is the underlying read, parse or validation error.
	Err error
}

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error to support errors.Is/errors.As.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Snapshot is one consistent, fully validated load of the content directory.
type Snapshot struct {
	categories *memory.CategoryStore
	patterns   *memory.PatternStore

	categoryFiles []sourceFile[*domain.Category]
	patternFiles  []sourceFile[*domain.Pattern]
}

type sourceFile[T any] struct {
	path   string
	entity T
}

// Categories returns the loaded categories in file order.
func (s *Snapshot) Categories() []*domain.Category {
	return entities(s.categoryFiles)
}

// Patterns returns the loaded patterns in file order.
func (s *Snapshot) Patterns() []*domain.Pattern {
	return entities(s.patternFiles)
}

func entities[T any](files []sourceFile[T]) []T {
	out := make([]T, 0, len(files))
	for _, f := range files {
		out = append(out, f.entity)
	}
	return out
}

// Loader reads categories and patterns from a content directory.
type Loader struct {
	dir    string
	logger *slog.Logger
}

// NewLoader creates a Loader rooted at dir. A nil logger uses slog.Default().
func NewLoader(dir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		dir:    dir,
		logger: logger.With(slog.String("component", "content_loader")),
	}
}

// Dir returns the content root.
func (l *Loader) Dir() string {
	return l.dir
}

// Load reads every category and pattern file in lexical order and builds the
// entities through the domain constructors. It stops at the first file that
// cannot be read, parsed or validated and returns a *LoadError for it.
// A missing subdirectory is treated as empty; a missing root is an error.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	if info, err := os.Stat(l.dir); err != nil {
		return nil, &LoadError{Path: l.dir, Err: err}
	} else if !info.IsDir() {
		return nil, &LoadError{Path: l.dir, Err: fmt.Errorf("not a directory")}
	}

	categoryFiles, err := loadDir(ctx, filepath.Join(l.dir, CategoriesDir), parseCategory)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to load categories", slog.Any("error", err))
		return nil, err
	}

	patternFiles, err := loadDir(ctx, filepath.Join(l.dir, PatternsDir), parsePattern)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to load patterns", slog.Any("error", err))
		return nil, err
	}

	snap := &Snapshot{
		categoryFiles: categoryFiles,
		patternFiles:  patternFiles,
	}
	snap.categories = memory.NewCategoryStore(snap.Categories()...)
	snap.patterns = memory.NewPatternStore(snap.Patterns()...)

	l.logger.InfoContext(ctx, "content loaded",
		slog.String("dir", l.dir),
		slog.Int("category_count", len(categoryFiles)),
		slog.Int("pattern_count", len(patternFiles)))

	return snap, nil
}

func parseCategory(content []byte) (*domain.Category, error) {
	var doc categoryDocument
	if _, err := parseDocument(content, &doc); err != nil {
		return nil, err
	}
	return domain.NewCategory(doc.props())
}

func parsePattern(content []byte) (*domain.Pattern, error) {
	var doc patternDocument
	body, err := parseDocument(content, &doc)
	if err != nil {
		return nil, err
	}
	return domain.NewPattern(doc.props(body))
}

func loadDir[T any](
	ctx context.Context,
	dir string,
	parse func([]byte) (T, error),
) ([]sourceFile[T], error) {
	paths, err := listContentFiles(dir)
	if err != nil {
		return nil, err
	}

	files := make([]sourceFile[T], 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}

		entity, err := parse(raw)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}

		files = append(files, sourceFile[T]{path: path, entity: entity})
	}

	return files, nil
}

// listContentFiles returns the markdown files directly inside dir, sorted.
func listContentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &LoadError{Path: dir, Err: err}
	}

	var paths []string
	for _, entry := range entries {
		if !isContentFile(entry) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	return paths, nil
}

func isContentFile(entry fs.DirEntry) bool {
	name := entry.Name()
	return !entry.IsDir() &&
		!strings.HasPrefix(name, ".") &&
		strings.EqualFold(filepath.Ext(name), fileExtension)
}
