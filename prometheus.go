package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smsseg/coding"
)

// Metrics owns a private registry so several servers (and tests) can live
// in one process.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	parts    *prometheus.HistogramVec
	units    *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "smsseg_requests_total",
			Help: "API requests by operation and HTTP status",
		}, []string{"operation", "status"}),
		parts: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "smsseg_message_parts",
			Help:    "Parts per segmented message",
			Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 10},
		}, []string{"encoding"}),
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "smsseg_transport_units_total",
			Help: "Septets (gsm7) or UTF-16 code units (ucs2) across all segmented parts",
		}, []string{"encoding"}),
	}
	m.registry.MustRegister(m.requests, m.parts, m.units, collectors.NewGoCollector())
	return m
}

func (m *Metrics) observeRequest(operation string, status int) {
	m.requests.WithLabelValues(operation, http.StatusText(status)).Inc()
}

func (m *Metrics) observeSplit(result coding.Result) {
	enc := result.Encoding.String()
	m.parts.WithLabelValues(enc).Observe(float64(len(result.Parts)))

	total := 0
	for _, part := range result.Parts {
		total += part.Length
	}
	m.units.WithLabelValues(enc).Add(float64(total))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
