package metrics

import (
	"bytes"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	namespace = "resumes"
	subsystem = "storage"
)

// Outcome labels for storage operations.
const (
	OutcomeOK        = "ok"
	OutcomeExists    = "exists"
	OutcomeNotExists = "not_exists"
	OutcomeOverflow  = "overflow"
	OutcomeError     = "error"
)

// Metrics holds the storage metrics and the registry they are registered in.
type Metrics struct {
	registry *prometheus.Registry

	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	Size       prometheus.Gauge
	Capacity   prometheus.Gauge
}

// New creates metrics registered in a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operations_total",
				Help:      "Total storage operations by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operation_duration_seconds",
				Help:      "Storage operation duration in seconds",
				Buckets:   []float64{1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2},
			},
			[]string{"op"},
		),
		Size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "size",
			Help:      "Number of resumes currently stored",
		}),
		Capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "capacity",
			Help:      "Maximum number of resumes the storage holds",
		}),
	}
	m.registry.MustRegister(m.Operations, m.Duration, m.Size, m.Capacity)
	return m
}

// ObserveOp records one operation with its outcome and duration.
func (m *Metrics) ObserveOp(op, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op, outcome).Inc()
	m.Duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// SetSize records the current number of stored resumes.
func (m *Metrics) SetSize(n int) {
	if m == nil {
		return
	}
	m.Size.Set(float64(n))
}

// SetCapacity records the configured capacity.
func (m *Metrics) SetCapacity(n int) {
	if m == nil {
		return
	}
	m.Capacity.Set(float64(n))
}

// Render renders metrics in Prometheus text format.
func (m *Metrics) Render() (string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
