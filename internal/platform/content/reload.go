package content

import (
	"context"
	"log/slog"

	"github.com/phrazzld/pattern-catalog/internal/events"
)

// ReloadHandler rebuilds the repository snapshot as soon as content changes,
// so the next request does not pay for the load and problems are logged when
// they are introduced.
type ReloadHandler struct {
	repo   *Repository
	logger *slog.Logger
}

var _ events.EventHandler = (*ReloadHandler)(nil)

// NewReloadHandler creates a ReloadHandler for repo.
func NewReloadHandler(repo *Repository, logger *slog.Logger) *ReloadHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadHandler{
		repo:   repo,
		logger: logger.With(slog.String("component", "content_reload")),
	}
}

// HandleEvent reloads the snapshot and logs its issues. A failed load is
// returned; the repository stays empty and retries on the next read.
func (h *ReloadHandler) HandleEvent(ctx context.Context, event *events.ContentChangedEvent) error {
	snap, err := h.repo.Snapshot(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "content reload failed",
			slog.String("path", event.Path),
			slog.Any("error", err))
		return err
	}

	h.logger.InfoContext(ctx, "content reloaded",
		slog.String("event_id", event.ID.String()),
		slog.String("path", event.Path),
		slog.Int("categories", len(snap.Categories())),
		slog.Int("patterns", len(snap.Patterns())))
	LogIssues(ctx, h.logger, snap.Issues())

	return nil
}

// LogIssues writes each issue as a warning.
func LogIssues(ctx context.Context, logger *slog.Logger, issues []Issue) {
	for _, issue := range issues {
		logger.WarnContext(ctx, "content issue",
			slog.String("kind", string(issue.Kind)),
			slog.String("path", issue.Path),
			slog.String("slug", issue.Slug),
			slog.String("message", issue.Message))
	}
}
