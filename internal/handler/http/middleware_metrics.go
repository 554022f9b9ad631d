package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that never reached a route, e.g. those
// rejected by the authorizer or answered with 404.
const unmatchedRoute = "unmatched"

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		h.metrics.RequestStarted()

		mw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}

		h.metrics.RequestFinished(r.Method, route, status, time.Since(start))
	})
}
