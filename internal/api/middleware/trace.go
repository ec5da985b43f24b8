// Package middleware provides HTTP middleware shared across the API surface.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taskboard-io/taskboard-api/internal/api/shared"
	"github.com/taskboard-io/taskboard-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and stores a trace-scoped
// logger alongside it. Apply it early so all subsequent handlers log with
// the same trace ID.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
