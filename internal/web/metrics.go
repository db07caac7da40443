package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the Prometheus collectors for the server.
type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	uploadsTotal    *prometheus.CounterVec
	activeSessions  prometheus.GaugeFunc
}

// newMetrics registers the server collectors on a fresh registry so tests
// can construct multiple servers without duplicate registration panics.
func newMetrics(sessionCount func() int) (*metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		uploadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "microbe_uploads_total",
			Help: "Microbe list uploads by outcome (created, schema_error, no_match, empty, error).",
		}, []string{"outcome"}),
		activeSessions: factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "explorer_active_sessions",
			Help: "Number of live exploration sessions in the store.",
		}, func() float64 { return float64(sessionCount()) }),
	}

	return m, reg
}

// handler returns the /metrics endpoint for the registry.
func metricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// instrument records request count and latency per chi route pattern.
// The route pattern is used instead of the raw path so session IDs do
// not explode label cardinality.
func (m *metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}

		m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// statusRecorder captures the response status for metrics labels.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusRecorder) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.status = status
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}
