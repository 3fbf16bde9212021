package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/pattern-catalog/internal/api/shared"
	"github.com/phrazzld/pattern-catalog/internal/platform/logger"
	"github.com/phrazzld/pattern-catalog/internal/service"
)

// CatalogHandler serves the read-only catalog endpoints.
type CatalogHandler struct {
	useCases *service.UseCases
	logger   *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(useCases *service.UseCases, logger *slog.Logger) (*CatalogHandler, error) {
	if useCases == nil {
		return nil, errors.New("useCases cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogHandler{
		useCases: useCases,
		logger:   logger.With(slog.String("component", "catalog_handler")),
	}, nil
}

// RegisterRoutes mounts the catalog endpoints on r.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{slug}", h.GetCategory)
	r.Get("/patterns", h.ListPatterns)
	r.Get("/patterns/{slug}", h.GetPattern)
	r.Get("/tags", h.ListTags)
}

// ListCategories handles GET /api/categories requests
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.useCases.ListCategories.Execute(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, entry := range categories {
		response = append(response, categoryWithCountToResponse(entry))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetCategory handles GET /api/categories/{slug} requests
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	result, err := h.useCases.GetCategoryWithPatterns.Execute(r.Context(), slug)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if result == nil {
		h.handleError(w, r, fmt.Errorf("%w: %q", ErrCategoryNotFound, slug))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategoryDetailResponse{
		Category: categoryToResponse(result.Category),
		Patterns: patternsToSummaries(result.Patterns),
	})
}

// ListPatterns handles GET /api/patterns?tag=&q= requests
func (h *CatalogHandler) ListPatterns(w http.ResponseWriter, r *http.Request) {
	query := ListPatternsQuery{
		Tag:   shared.QueryParam(r, "tag"),
		Query: shared.QueryParam(r, "q"),
	}
	if err := shared.ValidateRequest(query); err != nil {
		h.handleError(w, r, fmt.Errorf("%w: %v", ErrInvalidQuery, err))
		return
	}

	patterns, err := h.useCases.FilterPatterns.Execute(r.Context(), &service.FilterPatternsOptions{
		Tag:   query.Tag,
		Query: query.Query,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, patternsToSummaries(patterns))
}

// GetPattern handles GET /api/patterns/{slug} requests
func (h *CatalogHandler) GetPattern(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	pattern, err := h.useCases.GetPatternDetail.Execute(r.Context(), slug)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if pattern == nil {
		h.handleError(w, r, fmt.Errorf("%w: %q", ErrPatternNotFound, slug))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, patternToResponse(pattern))
}

// ListTags handles GET /api/tags requests
func (h *CatalogHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.useCases.ListTags.Execute(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TagsResponse{Tags: tagsToStrings(tags)})
}

// Health handles GET /healthz requests
func (h *CatalogHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// handleError maps err to a status code and safe message and writes the
// response, logging the redacted error.
func (h *CatalogHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	// Prefer the request-scoped logger set by the trace middleware.
	ctx := logger.WithLogger(r.Context(), logger.FromContextOrDefault(r.Context(), h.logger))
	shared.RespondWithErrorAndLog(
		w,
		r.WithContext(ctx),
		MapErrorToStatusCode(err),
		GetSafeErrorMessage(err),
		err,
	)
}
