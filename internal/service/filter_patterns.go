package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/domain/catalog"
	"github.com/phrazzld/pattern-catalog/internal/store"
)

const filterPatternsName = "filter_patterns"

// FilterPatternsOptions selects patterns. A nil field means the filter is not
// applied; a non-nil empty string is applied as given.
type FilterPatternsOptions struct {
	Tag   *string
	Query *string
}

// FilterPatternsUseCase returns patterns narrowed by tag and free text.
type FilterPatternsUseCase struct {
	patterns store.PatternStore
	filter   *catalog.PatternFilterService
	logger   *slog.Logger
}

// NewFilterPatternsUseCase creates a FilterPatternsUseCase.
// It returns an error if any of the required dependencies are nil.
func NewFilterPatternsUseCase(
	patterns store.PatternStore,
	filter *catalog.PatternFilterService,
	logger *slog.Logger,
) (*FilterPatternsUseCase, error) {
	if patterns == nil {
		return nil, missingDependency(filterPatternsName, "patterns")
	}
	if filter == nil {
		return nil, missingDependency(filterPatternsName, "filter")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &FilterPatternsUseCase{
		patterns: patterns,
		filter:   filter,
		logger:   logger.With(slog.String("use_case", filterPatternsName)),
	}, nil
}

// Execute returns all patterns when opts is nil or sets neither field.
// Otherwise the tag filter runs first and the text search runs on the
// narrowed set, so each filter can only shrink the result.
func (uc *FilterPatternsUseCase) Execute(
	ctx context.Context,
	opts *FilterPatternsOptions,
) ([]*domain.Pattern, error) {
	all, err := uc.patterns.FindAll(ctx)
	if err != nil {
		return nil, NewUseCaseError(filterPatternsName, "failed to fetch patterns", err)
	}

	if opts == nil || (opts.Tag == nil && opts.Query == nil) {
		return all, nil
	}

	filtered := all
	if opts.Tag != nil {
		filtered = uc.filter.FilterByTag(filtered, *opts.Tag)
	}
	if opts.Query != nil {
		filtered = uc.filter.Search(filtered, *opts.Query)
	}

	uc.logger.DebugContext(ctx, "filtered patterns",
		slog.Bool("by_tag", opts.Tag != nil),
		slog.Bool("by_query", opts.Query != nil),
		slog.Int("total", len(all)),
		slog.Int("matched", len(filtered)))

	return filtered, nil
}
