package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jobtrail/jobtrail-api/internal/observability/statsd"
)

// Metrics returns a middleware emitting request count and duration per
// route pattern. A nil sink disables emission.
func Metrics(sink statsd.Sink) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if sink == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)

			// Route paths are fixed (no IDs in the path), so tagging by
			// path keeps metric cardinality bounded.
			tags := map[string]string{
				"method": r.Method,
				"route":  r.URL.Path,
				"status": strconv.Itoa(ww.status),
			}
			sink.Count("http.requests", 1, tags)
			sink.Timing("http.request_duration", time.Since(start), tags)
		})
	}
}
