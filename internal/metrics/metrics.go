// Package metrics provides Prometheus metrics for the estate back office.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PipelineOutcomesTotal counts mutation pipeline runs by entity kind and terminal state
	PipelineOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "estate",
			Subsystem: "pipeline",
			Name:      "outcomes_total",
			Help:      "Total number of mutation pipeline runs by terminal state",
		},
		[]string{"kind", "state"},
	)

	// PipelineDuration tracks how long a mutation takes from receipt to terminal state
	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "estate",
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "Duration of mutation pipeline runs in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"kind"},
	)

	// CacheLookupsTotal counts listing cache reads by result (hit, miss, error)
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "estate",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Total number of listing cache lookups by result",
		},
		[]string{"path", "result"},
	)

	// HTTPRequestsTotal tracks inbound HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "estate",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of inbound HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)
)

// RecordPipelineOutcome records a finished mutation pipeline run
func RecordPipelineOutcome(kind, state string, durationSeconds float64) {
	PipelineOutcomesTotal.WithLabelValues(kind, state).Inc()
	PipelineDuration.WithLabelValues(kind).Observe(durationSeconds)
}

// RecordCacheLookup records a listing cache read
func RecordCacheLookup(path, result string) {
	CacheLookupsTotal.WithLabelValues(path, result).Inc()
}

// RecordHTTPRequest records an inbound HTTP request
func RecordHTTPRequest(method, route, statusCode string) {
	HTTPRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
}
