// Package metrics provides observability for the patient module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks registration counts and critical path durations.
type Metrics struct {
	PatientsRegistered prometheus.Counter
	RegisterDuration   prometheus.Histogram
}

// New creates a new Metrics instance with all patient module metrics
// registered.
func New() *Metrics {
	return &Metrics{
		PatientsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "praxis_patients_registered_total",
			Help: "Total number of patients registered",
		}),
		RegisterDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "praxis_patient_register_duration_seconds",
			Help:    "Duration of patient registration (validation plus persistence)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementRegistered records a successful patient registration.
func (m *Metrics) IncrementRegistered() {
	m.PatientsRegistered.Inc()
}

// ObserveRegister records the duration of a Register operation.
// Call with time.Now() captured at the start of the operation.
func (m *Metrics) ObserveRegister(start time.Time) {
	m.RegisterDuration.Observe(time.Since(start).Seconds())
}
