// Package metrics exposes Prometheus counters for the account lifecycle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the accounts API.
type Metrics struct {
	Operations *prometheus.CounterVec
	CacheReads *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on reg.
// Pass prometheus.DefaultRegisterer in main; tests use a private registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "account_operations_total",
			Help: "Account lifecycle operations by operation name and result kind",
		}, []string{"operation", "result"}),
		CacheReads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "account_cache_reads_total",
			Help: "Account cache lookups by outcome (hit or miss)",
		}, []string{"outcome"}),
	}
}

// RecordOperation counts one finished lifecycle operation.
// Safe on a nil receiver so callers without metrics wired stay unchanged.
func (m *Metrics) RecordOperation(operation, result string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(operation, result).Inc()
}

// RecordCacheRead counts one cache lookup outcome.
func (m *Metrics) RecordCacheRead(outcome string) {
	if m == nil {
		return
	}
	m.CacheReads.WithLabelValues(outcome).Inc()
}
