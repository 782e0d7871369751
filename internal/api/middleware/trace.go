package middleware

import (
	"log/slog"
	"net/http"

	"github.com/goop-edu/goop-api/internal/api/shared"
)

// TraceMiddleware stamps every request context with a trace ID before any
// handler runs, so an error response and its log records can be correlated.
// It sits at the front of the chain, ahead of authentication.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
