package runner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the pipeline.
type Metrics struct {
	Registry            *prometheus.Registry
	TagsProcessedTotal  *prometheus.CounterVec
	FetchDuration       prometheus.Histogram
	ListingsStoredTotal prometheus.Counter
	ErrorsTotal         *prometheus.CounterVec
	PersistErrorsTotal  prometheus.Counter
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	tagsProcessed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_tags_processed_total",
			Help: "Tags processed by the pipeline, by outcome.",
		},
		[]string{"outcome"},
	)
	fetchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pipeline_fetch_duration_seconds",
			Help:    "Render-to-envelope latency per tag.",
			Buckets: prometheus.DefBuckets,
		},
	)
	listingsStored := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_listings_stored_total",
			Help: "Valid listings written to the store.",
		},
	)
	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_errors_total",
			Help: "Tag fetch failures by type.",
		},
		[]string{"error_type"},
	)
	persistErrors := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pipeline_persist_errors_total",
			Help: "Successful fetches whose write to the store failed.",
		},
	)

	registry.MustRegister(tagsProcessed, fetchDuration, listingsStored, errorsTotal, persistErrors)

	return &Metrics{
		Registry:            registry,
		TagsProcessedTotal:  tagsProcessed,
		FetchDuration:       fetchDuration,
		ListingsStoredTotal: listingsStored,
		ErrorsTotal:         errorsTotal,
		PersistErrorsTotal:  persistErrors,
	}
}

// IncTag increments the processed counter for an outcome.
func (m *Metrics) IncTag(outcome string) {
	if m == nil {
		return
	}
	m.TagsProcessedTotal.WithLabelValues(outcome).Inc()
}

// ObserveFetch records one tag fetch duration.
func (m *Metrics) ObserveFetch(d time.Duration) {
	if m == nil {
		return
	}
	m.FetchDuration.Observe(d.Seconds())
}

// AddListings counts listings written to the store.
func (m *Metrics) AddListings(n int) {
	if m == nil {
		return
	}
	m.ListingsStoredTotal.Add(float64(n))
}

// IncError increments the failure counter for a type label.
func (m *Metrics) IncError(errorType string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(errorType).Inc()
}

// IncPersistError counts a store write failure.
func (m *Metrics) IncPersistError() {
	if m == nil {
		return
	}
	m.PersistErrorsTotal.Inc()
}
