// ABOUTME: Prometheus metrics middleware for the HTTP API
// ABOUTME: Records per-path request counts and latency histograms

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "capacity_planner_http_requests_total",
			Help: "HTTP requests processed, by path, method, and status code.",
		},
		[]string{"path", "method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "capacity_planner_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by path.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)

// Metrics records Prometheus request metrics for the wrapped handler. The
// path label is the registered route pattern, not the raw URL, so wildcard
// segments like upload IDs cannot blow up label cardinality.
func Metrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(wrapped, r)

		path := r.Pattern
		if path == "" {
			path = r.URL.Path
		}
		requestsTotal.WithLabelValues(path, r.Method, strconv.Itoa(wrapped.statusCode)).Inc()
		requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}
