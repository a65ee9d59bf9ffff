package needle

import "github.com/prometheus/client_golang/prometheus"

// engineMetrics holds the Prometheus collectors for one Engine. They
// live on a private *prometheus.Registry rather than the global
// default, so an embedding process can run more than one Engine, or
// none at all, without collector name collisions.
type engineMetrics struct {
	registry *prometheus.Registry

	documentsIndexed prometheus.Counter
	documentsRemoved prometheus.Counter
	queriesTotal     prometheus.Counter
	queryDuration    prometheus.Histogram
	liveDocuments    prometheus.Gauge
}

func newEngineMetrics() *engineMetrics {
	m := &engineMetrics{
		registry: prometheus.NewRegistry(),
		documentsIndexed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "needle_documents_indexed_total",
			Help: "Total documents added to the engine.",
		}),
		documentsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "needle_documents_removed_total",
			Help: "Total documents removed from the engine.",
		}),
		queriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "needle_queries_total",
			Help: "Total FindTopDocuments and MatchDocument calls.",
		}),
		queryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "needle_query_duration_seconds",
			Help:    "Query latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		liveDocuments: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "needle_live_documents",
			Help: "Current number of live documents.",
		}),
	}

	m.registry.MustRegister(
		m.documentsIndexed,
		m.documentsRemoved,
		m.queriesTotal,
		m.queryDuration,
		m.liveDocuments,
	)
	return m
}

// Registry returns the private Prometheus registry backing these
// collectors, for whatever the embedding process wants to serve it with.
func (m *engineMetrics) Registry() *prometheus.Registry {
	return m.registry
}
