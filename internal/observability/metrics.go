package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// collection loop.
type Metrics struct {
	AreasAccepted    prometheus.Counter
	AreasSkipped     prometheus.Counter
	AreasFailed      prometheus.Counter
	RecordsStored    prometheus.Counter
	CollectorRunning prometheus.Gauge

	// Per-run metrics.
	RunDuration prometheus.Histogram
	BatchSize   prometheus.Histogram

	// Upstream fetch metrics.
	FetchAttempts *prometheus.CounterVec // labels: outcome={success,retry,error}

	// Geocoding metrics.
	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache    *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all collector metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		AreasAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "congestion",
			Name:      "areas_accepted_total",
			Help:      "Areas whose observation was accepted for storage.",
		}),
		AreasSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "congestion",
			Name:      "areas_skipped_total",
			Help:      "Areas skipped because the congestion level was unusable.",
		}),
		AreasFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "congestion",
			Name:      "areas_failed_total",
			Help:      "Areas whose upstream fetch failed after all retries.",
		}),
		RecordsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "congestion",
			Name:      "records_stored_total",
			Help:      "Observations persisted to the history table.",
		}),
		CollectorRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "congestion",
			Name:      "collector_running",
			Help:      "1 while a collection run is in progress, 0 otherwise.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "congestion",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete catalog sweep including the batch write.",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600},
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "congestion",
			Name:      "batch_size",
			Help:      "Number of records written per collection run.",
			Buckets:   []float64{1, 10, 25, 50, 75, 100, 125},
		}),
		FetchAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "congestion",
			Name:      "fetch_attempts_total",
			Help:      "Upstream citydata fetch attempts by outcome.",
		}, []string{"outcome"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "congestion",
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "congestion",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
	}

	prometheus.MustRegister(
		m.AreasAccepted,
		m.AreasSkipped,
		m.AreasFailed,
		m.RecordsStored,
		m.CollectorRunning,
		m.RunDuration,
		m.BatchSize,
		m.FetchAttempts,
		m.GeocodeRequests,
		m.GeocodeCache,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		AreasAccepted:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "congestion", Name: "areas_accepted_total"}),
		AreasSkipped:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "congestion", Name: "areas_skipped_total"}),
		AreasFailed:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "congestion", Name: "areas_failed_total"}),
		RecordsStored:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "congestion", Name: "records_stored_total"}),
		CollectorRunning: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "congestion", Name: "collector_running"}),
		RunDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "congestion", Name: "run_duration_seconds"}),
		BatchSize:        prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "congestion", Name: "batch_size"}),
		FetchAttempts:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "congestion", Name: "fetch_attempts_total"}, []string{"outcome"}),
		GeocodeRequests:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "congestion", Name: "geocode_requests_total"}, []string{"outcome"}),
		GeocodeCache:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "congestion", Name: "geocode_cache_total"}, []string{"result"}),
	}
}
