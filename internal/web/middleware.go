package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MetricsRecorder receives one call per served request. The OTEL
// adapter implements it; a no-op stands in when metrics are disabled.
type MetricsRecorder interface {
	RecordRequest(ctx context.Context, route, method string, status int)
}

// Metrics records per-route request counts through rec.
func Metrics(rec MetricsRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = r.URL.Path
			}
			rec.RecordRequest(r.Context(), route, r.Method, ww.Status())
		})
	}
}
