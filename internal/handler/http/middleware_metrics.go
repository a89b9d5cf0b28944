package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/osphor/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests no route pattern matched, keeping the
// route label's cardinality bounded.
const unmatchedRoute = "unmatched"

// withMetrics records request count and latency per route pattern. The
// pattern is only complete once chi has finished routing, so it is read after
// next returns.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := wrapResponseWriter(w)
		next.ServeHTTP(rw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		metrics.RecordHTTPRequest(r.Method, route, strconv.Itoa(rw.Status()), time.Since(start))
	})
}
