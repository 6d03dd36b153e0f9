// Package metrics owns the Prometheus registry of the service and the HTTP
// collectors recorded for every request.
package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UnmatchedPath labels requests that matched no route, keeping the path
// label bounded no matter what clients send.
const UnmatchedPath = "unmatched"

// TaskCounter reports the current number of stored tasks.
type TaskCounter interface {
	Count(ctx context.Context) (int, error)
}

// Metrics holds the registry and the collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// New creates a registry with the Go runtime and process collectors, the
// HTTP request collectors, a service info gauge labelled with version and,
// when tasks is non-nil, a gauge reporting the task count at scrape time.
func New(version string, tasks TaskCounter, logger *slog.Logger) *Metrics {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "metrics"))

	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		}),
	}

	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "task_service_info",
		Help: "Static information about the running service.",
	}, []string{"version"})
	info.WithLabelValues(version).Set(1)

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.inFlight,
		info,
	)

	if tasks != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "task_service_tasks",
			Help: "Number of tasks currently stored.",
		}, func() float64 {
			n, err := tasks.Count(context.Background())
			if err != nil {
				logger.Warn("failed to count tasks for metrics", slog.String("error", err.Error()))
				return 0
			}
			return float64(n)
		}))
	}

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	})
}

// RequestStarted marks a request as in flight. The returned func must be
// called once the request completes.
func (m *Metrics) RequestStarted() func() {
	m.inFlight.Inc()
	return m.inFlight.Dec
}

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if path == "" {
		path = UnmatchedPath
	}
	code := strconv.Itoa(status)
	m.requests.WithLabelValues(method, path, code).Inc()
	m.duration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}
