package httpapi

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pageserve",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pageserve",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)
	errorResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pageserve",
			Name:      "error_responses_total",
			Help:      "Error envelopes written, by status",
		},
		[]string{"status"},
	)
	staticFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pageserve",
			Name:      "static_fallback_total",
			Help:      "Static lookups retried with the .html suffix, by outcome",
		},
		[]string{"outcome"},
	)
)

const (
	fallbackHit       = "hit"
	fallbackMiss      = "miss"
	fallbackMalformed = "malformed"
	fallbackError     = "error"
)

func metricsHandler() http.Handler {
	return promhttp.Handler()
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		status := strconv.Itoa(ww.Status())
		httpRequestsTotal.WithLabelValues(r.Method, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, status).Observe(time.Since(start).Seconds())
	})
}
