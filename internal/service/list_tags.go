package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/domain/catalog"
	"github.com/phrazzld/pattern-catalog/internal/store"
)

const listTagsName = "list_tags"

// ListTagsUseCase returns the distinct tags used across all patterns.
type ListTagsUseCase struct {
	patterns store.PatternStore
	filter   *catalog.PatternFilterService
	logger   *slog.Logger
}

// NewListTagsUseCase creates a ListTagsUseCase.
// It returns an error if any of the required dependencies are nil.
func NewListTagsUseCase(
	patterns store.PatternStore,
	filter *catalog.PatternFilterService,
	logger *slog.Logger,
) (*ListTagsUseCase, error) {
	if patterns == nil {
		return nil, missingDependency(listTagsName, "patterns")
	}
	if filter == nil {
		return nil, missingDependency(listTagsName, "filter")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ListTagsUseCase{
		patterns: patterns,
		filter:   filter,
		logger:   logger.With(slog.String("use_case", listTagsName)),
	}, nil
}

// Execute returns the tags sorted alphabetically.
func (uc *ListTagsUseCase) Execute(ctx context.Context) ([]domain.Tag, error) {
	all, err := uc.patterns.FindAll(ctx)
	if err != nil {
		return nil, NewUseCaseError(listTagsName, "failed to fetch patterns", err)
	}

	tags := uc.filter.DistinctTags(all)
	uc.logger.DebugContext(ctx, "listed tags", slog.Int("tag_count", len(tags)))

	return tags, nil
}
