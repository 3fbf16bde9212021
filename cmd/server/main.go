// Package main implements the entry point for the pattern catalog API
// server, which serves the catalog content as read-only JSON.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/pattern-catalog/internal/config"
	"github.com/phrazzld/pattern-catalog/internal/platform/logger"
)

// main is the entry point for the catalog server.
// It initializes configuration and logging, loads the content, wires the use
// cases and serves HTTP until interrupted.
func main() {
	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		l.Error("Failed to create application", "error", err)
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		l.Error("Server exited with error", "error", err)
		log.Fatalf("Server exited with error: %v", err)
	}
}

// initializeApp loads configuration and sets up logging.
// Returns the loaded config, the configured logger and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"content_dir", cfg.Content.Dir,
		"content_watch", cfg.Content.Watch)

	return cfg, l, nil
}
