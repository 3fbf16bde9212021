package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/pattern-catalog/internal/config"
	"github.com/phrazzld/pattern-catalog/internal/events"
	"github.com/phrazzld/pattern-catalog/internal/platform/content"
	"github.com/phrazzld/pattern-catalog/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	repository *content.Repository
	watcher    *content.Watcher
	useCases   *service.UseCases
}

// newApplication creates a new application instance with all dependencies initialized.
// The content is loaded once up front so a broken content directory stops
// the server before it starts listening.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	loader := content.NewLoader(cfg.Content.Dir, logger)
	app.repository = content.NewRepository(loader, logger)

	snapshot, err := app.repository.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	content.LogIssues(ctx, logger, snapshot.Issues())

	app.useCases, err = service.NewUseCases(
		app.repository.Categories(),
		app.repository.Patterns(),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create use cases: %w", err)
	}

	if cfg.Content.Watch {
		emitter := events.NewInMemoryEventEmitter(logger)
		emitter.RegisterHandler(content.NewReloadHandler(app.repository, logger))

		app.watcher = content.NewWatcher(app.repository, emitter, logger)
		if err := app.watcher.Watch(ctx); err != nil {
			return nil, fmt.Errorf("failed to watch content: %w", err)
		}
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.logger.Error("Error closing content watcher", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
