// Package metrics provides Prometheus metrics for conversion runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Component status labels.
const (
	StatusConverted = "converted"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// Metrics holds the collectors of one run. Each run gets its own registry so
// batches and tests never share counters.
type Metrics struct {
	Registry *prometheus.Registry

	ComponentsTotal    *prometheus.CounterVec
	RecordsSkipped     *prometheus.CounterVec
	ModelsTotal        *prometheus.CounterVec
	ConversionDuration prometheus.Histogram
}

// New creates a registry and registers every collector on it.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		ComponentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lcsc2kicad_components_total",
				Help: "Components processed, by outcome",
			},
			[]string{"status"},
		),
		RecordsSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lcsc2kicad_records_skipped_total",
				Help: "Shape records skipped during decoding, by tag",
			},
			[]string{"tag"},
		),
		ModelsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lcsc2kicad_models_total",
				Help: "3D models processed, by outcome",
			},
			[]string{"status"},
		),
		ConversionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lcsc2kicad_conversion_duration_seconds",
				Help:    "Time taken to convert one component",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
	}
}

// RecordComponent records the outcome of one component.
func (m *Metrics) RecordComponent(status string, duration time.Duration) {
	m.ComponentsTotal.WithLabelValues(status).Inc()
	m.ConversionDuration.Observe(duration.Seconds())
}

// RecordSkipped adds per-tag skip counts from one footprint.
func (m *Metrics) RecordSkipped(byTag map[string]int) {
	for tag, n := range byTag {
		m.RecordsSkipped.WithLabelValues(tag).Add(float64(n))
	}
}

// RecordModel records the outcome of one 3D model.
func (m *Metrics) RecordModel(status string) {
	m.ModelsTotal.WithLabelValues(status).Inc()
}

// WriteTextfile writes the registry in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

// Timer measures elapsed time.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the elapsed time since the timer was created
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
