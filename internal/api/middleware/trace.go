package middleware

import (
	"log/slog"
	"net/http"

	"github.com/tasktrack/tasktrack/internal/api/shared"
	"github.com/tasktrack/tasktrack/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and installs a
// request-scoped logger carrying it, so every downstream log line and error
// response can be correlated. Apply it early in the middleware chain.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Add a trace ID to the context
		ctx := shared.SetTraceID(r.Context())

		traceID := shared.GetTraceID(ctx)

		// Request-scoped logger carrying the trace ID
		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
