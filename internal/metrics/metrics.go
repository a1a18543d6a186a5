// Package metrics exposes Prometheus collectors for store operations and HTTP traffic.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the store reports to. A nil Recorder is valid and records nothing.
type Recorder interface {
	StoreOperation(op string, err error)
	InvoicePartition(recent, archived int)
}

// Metrics owns a private registry so tests can create as many as they like.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	invoices   *prometheus.GaugeVec
	requests   *prometheus.HistogramVec
}

// New registers the billing collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "billing_store_operations_total",
			Help: "Store mutations by operation and result.",
		}, []string{"op", "result"}),
		invoices: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "billing_invoices",
			Help: "Invoices currently held, by partition.",
		}, []string{"partition"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "billing_http_request_duration_seconds",
			Help:    "HTTP request latency by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
	m.registry.MustRegister(m.operations, m.invoices, m.requests)
	return m
}

// StoreOperation counts one store mutation.
func (m *Metrics) StoreOperation(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.operations.WithLabelValues(op, result).Inc()
}

// InvoicePartition sets the recent/archived gauges.
func (m *Metrics) InvoicePartition(recent, archived int) {
	m.invoices.WithLabelValues("recent").Set(float64(recent))
	m.invoices.WithLabelValues("archived").Set(float64(archived))
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(method string, d time.Duration) {
	m.requests.WithLabelValues(method).Observe(d.Seconds())
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
