// Package metrics exposes store activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Operation label values.
const (
	OpAssign   = "assign"
	OpUnassign = "unassign"
	OpLoad     = "load"
	OpSave     = "save"
)

// Metrics holds the collectors recorded by the store. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	assignments *prometheus.CounterVec
	repairs     *prometheus.CounterVec
	persistence *prometheus.CounterVec
	items       prometheus.Gauge
	owners      prometheus.Gauge
}

// New creates Metrics on a private registry that also carries the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := NewMetrics(reg)
	m.gatherer = reg
	return m
}

// NewMetrics creates Metrics and registers them with reg.
// Panics if registration fails (following prometheus convention).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "custodian_assignments_total",
			Help: "Assign and unassign attempts by outcome",
		}, []string{"op", "result"}),
		repairs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "custodian_repairs_total",
			Help: "Item repairs, split by whether the condition hit the maximum",
		}, []string{"hit_max"}),
		persistence: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "custodian_persistence_total",
			Help: "Load and save operations by outcome",
		}, []string{"op", "result"}),
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "custodian_items",
			Help: "Number of items in the store",
		}),
		owners: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "custodian_owners",
			Help: "Number of owners in the store",
		}),
	}
	reg.MustRegister(m.assignments, m.repairs, m.persistence, m.items, m.owners)
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m
}

// RecordAssignment counts an assign or unassign attempt.
func (m *Metrics) RecordAssignment(op string, applied bool) {
	if m == nil {
		return
	}
	result := ResultOK
	if !applied {
		result = ResultRejected
	}
	m.assignments.WithLabelValues(op, result).Inc()
}

// RecordRepair counts a repair.
func (m *Metrics) RecordRepair(hitMax bool) {
	if m == nil {
		return
	}
	m.repairs.WithLabelValues(strconv.FormatBool(hitMax)).Inc()
}

// RecordPersistence counts a load or save.
func (m *Metrics) RecordPersistence(op string, err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.persistence.WithLabelValues(op, result).Inc()
}

// SetCounts updates the entity gauges.
func (m *Metrics) SetCounts(owners, items int) {
	if m == nil {
		return
	}
	m.owners.Set(float64(owners))
	m.items.Set(float64(items))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
