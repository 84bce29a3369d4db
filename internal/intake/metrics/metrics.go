// Package metrics provides observability for the intake module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label used when an identifier passes every stage.
const OutcomeValid = "valid"

// Metrics tracks validation outcomes and latency.
type Metrics struct {
	ValidationsTotal *prometheus.CounterVec
	ValidateDuration prometheus.Histogram
	BatchSize        prometheus.Histogram
}

// New creates a new Metrics instance with all intake module metrics
// registered.
func New() *Metrics {
	return &Metrics{
		ValidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "praxis_intake_validations_total",
			Help: "Total identifier validations by outcome",
		}, []string{"outcome"}),
		ValidateDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "praxis_intake_validate_duration_seconds",
			Help:    "Duration of a single identifier validation",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "praxis_intake_batch_size",
			Help:    "Number of identifiers per batch request",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		}),
	}
}

// IncrementOutcome records one validation with the given outcome label.
func (m *Metrics) IncrementOutcome(outcome string) {
	m.ValidationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveValidate records the duration of a single validation.
// Call with time.Now() captured at the start of the operation.
func (m *Metrics) ObserveValidate(start time.Time) {
	m.ValidateDuration.Observe(time.Since(start).Seconds())
}

// ObserveBatchSize records the size of a batch request.
func (m *Metrics) ObserveBatchSize(n int) {
	m.BatchSize.Observe(float64(n))
}
