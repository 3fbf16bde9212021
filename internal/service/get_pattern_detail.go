package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/store"
)

const getPatternDetailName = "get_pattern_detail"

// GetPatternDetailUseCase looks up a single pattern by slug.
type GetPatternDetailUseCase struct {
	patterns store.PatternStore
	logger   *slog.Logger
}

// NewGetPatternDetailUseCase creates a GetPatternDetailUseCase.
func NewGetPatternDetailUseCase(patterns store.PatternStore, logger *slog.Logger) (*GetPatternDetailUseCase, error) {
	if patterns == nil {
		return nil, missingDependency(getPatternDetailName, "patterns")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GetPatternDetailUseCase{
		patterns: patterns,
		logger:   logger.With(slog.String("use_case", getPatternDetailName)),
	}, nil
}

// Execute returns the pattern with the given slug, or nil when none exists.
func (uc *GetPatternDetailUseCase) Execute(ctx context.Context, slug string) (*domain.Pattern, error) {
	pattern, err := uc.patterns.FindBySlug(ctx, slug)
	if err != nil {
		return nil, NewUseCaseError(getPatternDetailName, "failed to fetch pattern", err)
	}

	if pattern == nil {
		uc.logger.DebugContext(ctx, "pattern not found", slog.String("slug", slug))
	}

	return pattern, nil
}
