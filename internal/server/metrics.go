package server

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP metrics
var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"endpoint", "method", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Generation metrics
var (
	decksGeneratedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decks_generated_total",
			Help: "Total presentations generated, by mode",
		},
		[]string{"mode"},
	)

	generationDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generation_duration_seconds",
			Help:    "End-to-end deck generation duration in seconds, by mode",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60, 120, 300},
		},
		[]string{"mode"},
	)

	slidesStreamedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "slides_streamed_total",
			Help: "Total individual slides delivered over SSE",
		},
	)

	generationErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_errors_total",
			Help: "Total failed generation attempts, by error kind",
		},
		[]string{"mode", "kind"},
	)
)

// newMetricsRegistry builds the Prometheus registry with runtime collectors
// plus the service's own metrics.
func newMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	reg.MustRegister(
		httpRequestsTotal,
		httpRequestDurationSeconds,
		decksGeneratedTotal,
		generationDurationSeconds,
		slidesStreamedTotal,
		generationErrorsTotal,
	)
	return reg
}

// metricsHandler serves the registry in Prometheus exposition format.
func metricsHandler(reg *prometheus.Registry) fiber.Handler {
	handler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return adaptor.HTTPHandler(handler)
}

// metricsMiddleware records request count and latency per route pattern.
func metricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		endpoint := c.Route().Path
		method := c.Method()
		status := strconv.Itoa(c.Response().StatusCode())

		httpRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
		httpRequestDurationSeconds.WithLabelValues(endpoint, method, status).Observe(time.Since(start).Seconds())

		return err
	}
}
