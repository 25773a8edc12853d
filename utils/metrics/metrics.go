// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the summary pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the service's Prometheus registry and collectors. Each
// process holds exactly one instance, wired through the DI container.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	summariesServed  prometheus.Counter
	providerRequests *prometheus.CounterVec
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketbrief_http_requests_total",
			Help: "HTTP requests processed, by method, path and status.",
		}, []string{"method", "path", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "marketbrief_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		summariesServed: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketbrief_summaries_served_total",
			Help: "Normalized summaries returned to clients.",
		}),
		providerRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketbrief_provider_requests_total",
			Help: "Market data provider calls, by outcome.",
		}, []string{"outcome"}),
	}
}

// RecordRequest records one completed HTTP request.
func (c *Collector) RecordRequest(method, path string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordSummariesServed adds to the served-summaries counter.
func (c *Collector) RecordSummariesServed(count int) {
	c.summariesServed.Add(float64(count))
}

// RecordProviderRequest records one market data provider call outcome
// ("success", "error" or "timeout").
func (c *Collector) RecordProviderRequest(outcome string) {
	c.providerRequests.WithLabelValues(outcome).Inc()
}

// Handler returns the scrape endpoint handler for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
