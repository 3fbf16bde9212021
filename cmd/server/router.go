package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/pattern-catalog/internal/api"
	apiMiddleware "github.com/phrazzld/pattern-catalog/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// Returns the configured router.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	catalogHandler, err := api.NewCatalogHandler(app.useCases, app.logger)
	if err != nil {
		return nil, err
	}

	r.Route("/api", catalogHandler.RegisterRoutes)

	// Health check endpoint
	r.Get("/healthz", catalogHandler.Health)

	return r, nil
}
