package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/pattern-catalog/internal/api/shared"
	"github.com/phrazzld/pattern-catalog/internal/platform/logger"
)

// NewTraceMiddleware adds a trace ID to the request context and stores a
// logger tagged with it, so handlers can log with logger.FromContext.
// A valid UUID in the X-Trace-ID request header is reused; otherwise a new
// one is generated. The trace ID is echoed in the response header.
// This middleware should be applied early in the middleware chain to ensure
// that all subsequent handlers have access to the trace ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if traceID, ok := shared.ParseTraceID(r.Header.Get(shared.TraceIDHeader)); ok {
				ctx = shared.WithTraceID(ctx, traceID)
			} else {
				ctx = shared.SetTraceID(ctx)
			}

			traceID := shared.GetTraceID(ctx)
			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
