// Package telemetry provides Prometheus metrics for the HTTP surface.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus metrics.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestsActive  prometheus.Gauge
}

// Provider owns the metrics registry and the scrape handler. Each Provider
// carries its own registry so construction is repeatable (tests included).
type Provider struct {
	Metrics  *Metrics
	registry *prometheus.Registry
}

// NewProvider initializes the Prometheus registry with the standard
// process/Go collectors plus the HTTP request metrics.
func NewProvider(serviceName string) *Provider {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)
	labels := prometheus.Labels{"service": serviceName}

	return &Provider{
		registry: registry,
		Metrics: &Metrics{
			RequestsTotal: factory.NewCounterVec(
				prometheus.CounterOpts{
					Name:        "http_requests_total",
					Help:        "Total HTTP requests by method, path, and status.",
					ConstLabels: labels,
				},
				[]string{"method", "path", "status"},
			),
			RequestDuration: factory.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:        "http_request_duration_seconds",
					Help:        "HTTP request latency by method and path.",
					ConstLabels: labels,
					Buckets:     prometheus.DefBuckets,
				},
				[]string{"method", "path"},
			),
			RequestsActive: factory.NewGauge(
				prometheus.GaugeOpts{
					Name:        "http_requests_active",
					Help:        "Number of HTTP requests currently being served.",
					ConstLabels: labels,
				},
			),
		},
	}
}

// Handler returns the Prometheus scrape handler for the metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Middleware records request count, latency, and in-flight gauge per
// request. The route template is used as the path label to keep
// cardinality bounded.
func (p *Provider) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		p.Metrics.RequestsActive.Inc()
		c.Next()
		p.Metrics.RequestsActive.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		p.Metrics.RequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		p.Metrics.RequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
