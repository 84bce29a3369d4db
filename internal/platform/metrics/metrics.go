// Package metrics registers process-wide Prometheus metrics. Feature
// modules register their own metrics in their local metrics packages.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the platform-level Prometheus metrics.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers the platform metrics.
func New() *Metrics {
	return &Metrics{
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "praxis_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by path",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"path"}),
	}
}

// ObserveRequest records the duration of one HTTP request.
// Call with time.Now() captured at the start of the request.
func (m *Metrics) ObserveRequest(path string, start time.Time) {
	m.RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
}

// Handler exposes the default Prometheus registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
