// Package metric provides Prometheus metrics for devserve.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics.
type Registry struct {
	// RequestsTotal counts served requests by method and status code.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration samples request latency by method.
	RequestDuration *prometheus.HistogramVec

	// ResponseBytes counts bytes written to clients.
	ResponseBytes prometheus.Counter

	reg *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all collectors registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "devserve",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests served.",
			},
			[]string{"method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "devserve",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		ResponseBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "devserve",
				Name:      "response_bytes_total",
				Help:      "Total bytes written in HTTP responses.",
			},
		),
		reg: reg,
	}

	reg.MustRegister(
		r.RequestsTotal,
		r.RequestDuration,
		r.ResponseBytes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Handler returns an HTTP handler for the metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
