package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for weather lookups.
type Metrics struct {
	LookupRequests *prometheus.CounterVec // labels: outcome={success,error,busy,invalid}
	LookupDuration prometheus.Histogram
	LookupInFlight prometheus.Gauge

	// MQTT publishing metrics.
	Publishes *prometheus.CounterVec // labels: outcome={success,error}
}

// NewMetrics creates and registers all lookup metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		LookupRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherapp",
			Name:      "lookups_total",
			Help:      "Weather lookups by outcome.",
		}, []string{"outcome"}),
		LookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weatherapp",
			Name:      "lookup_duration_seconds",
			Help:      "Weather API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		LookupInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weatherapp",
			Name:      "lookup_in_flight",
			Help:      "1 while a weather lookup is running, 0 otherwise.",
		}),
		Publishes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherapp",
			Name:      "publishes_total",
			Help:      "MQTT publishes of lookup results by outcome.",
		}, []string{"outcome"}),
	}

	prometheus.MustRegister(
		m.LookupRequests,
		m.LookupDuration,
		m.LookupInFlight,
		m.Publishes,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		LookupRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weatherapp", Name: "lookups_total"}, []string{"outcome"}),
		LookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weatherapp", Name: "lookup_duration_seconds"}),
		LookupInFlight: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weatherapp", Name: "lookup_in_flight"}),
		Publishes:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weatherapp", Name: "publishes_total"}, []string{"outcome"}),
	}
}
