package content

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/store"
)

// Repository serves content through the store interfaces. The directory is
// loaded on first use and cached until Invalidate is called.
type Repository struct {
	loader *Loader
	logger *slog.Logger

	mu       sync.RWMutex
	snapshot *Snapshot
	loads    int
}

// NewRepository creates a Repository backed by loader.
func NewRepository(loader *Loader, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		loader: loader,
		logger: logger.With(slog.String("component", "content_repository")),
	}
}

// Snapshot returns the cached snapshot, loading it if necessary.
func (r *Repository) Snapshot(ctx context.Context) (*Snapshot, error) {
	r.mu.RLock()
	snap := r.snapshot
	r.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another caller may have loaded while we waited for the write lock.
	if r.snapshot != nil {
		return r.snapshot, nil
	}

	snap, err := r.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	r.snapshot = snap
	r.loads++

	return snap, nil
}

// Invalidate drops the cached snapshot so the next read reloads from disk.
func (r *Repository) Invalidate() {
	r.mu.Lock()
	r.snapshot = nil
	r.mu.Unlock()
	r.logger.Info("content cache invalidated")
}

// Loads reports how many times the directory has been read.
func (r *Repository) Loads() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loads
}

// Categories returns a store.CategoryStore view of the repository.
func (r *Repository) Categories() store.CategoryStore {
	return categoryStore{repo: r}
}

// Patterns returns a store.PatternStore view of the repository.
func (r *Repository) Patterns() store.PatternStore {
	return patternStore{repo: r}
}

func (r *Repository) load(ctx context.Context, entity, operation string) (*Snapshot, error) {
	snap, err := r.Snapshot(ctx)
	if err != nil {
		return nil, store.NewStoreError(entity, operation, "failed to load content", err)
	}
	return snap, nil
}

type categoryStore struct {
	repo *Repository
}

func (s categoryStore) FindAll(ctx context.Context) ([]*domain.Category, error) {
	snap, err := s.repo.load(ctx, "category", "find_all")
	if err != nil {
		return nil, err
	}
	return snap.categories.FindAll(ctx)
}

func (s categoryStore) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	snap, err := s.repo.load(ctx, "category", "find_by_slug")
	if err != nil {
		return nil, err
	}
	return snap.categories.FindBySlug(ctx, slug)
}

type patternStore struct {
	repo *Repository
}

func (s patternStore) FindAll(ctx context.Context) ([]*domain.Pattern, error) {
	snap, err := s.repo.load(ctx, "pattern", "find_all")
	if err != nil {
		return nil, err
	}
	return snap.patterns.FindAll(ctx)
}

func (s patternStore) FindBySlug(ctx context.Context, slug string) (*domain.Pattern, error) {
	snap, err := s.repo.load(ctx, "pattern", "find_by_slug")
	if err != nil {
		return nil, err
	}
	return snap.patterns.FindBySlug(ctx, slug)
}

func (s patternStore) FindByCategorySlug(ctx context.Context, categorySlug string) ([]*domain.Pattern, error) {
	snap, err := s.repo.load(ctx, "pattern", "find_by_category_slug")
	if err != nil {
		return nil, err
	}
	return snap.patterns.FindByCategorySlug(ctx, categorySlug)
}
