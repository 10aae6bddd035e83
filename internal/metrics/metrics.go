// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package metrics defines the Prometheus instrumentation for Marquee:
// dataset loading (DuckDB), snapshot builds, sentiment oracle calls,
// circuit breakers, query results and the HTTP API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset Metrics
	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "marquee_dataset_load_duration_seconds",
			Help:    "Duration of dataset loads through DuckDB in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	DatasetRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_dataset_rows_total",
			Help: "Dataset rows by cleaning outcome",
		},
		[]string{"outcome"}, // "kept", "missing_fields", "duplicate", "blocked"
	)

	DatasetLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marquee_dataset_load_errors_total",
			Help: "Total number of failed dataset loads",
		},
	)

	// Snapshot Metrics
	SnapshotBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marquee_snapshot_build_duration_seconds",
			Help:    "Duration of snapshot builds and rescores in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30, 60, 120},
		},
		[]string{"kind"}, // "build", "rescore"
	)

	SnapshotBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_snapshot_builds_total",
			Help: "Total number of snapshot builds by kind and status",
		},
		[]string{"kind", "status"},
	)

	SnapshotMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marquee_snapshot_movies",
			Help: "Number of movies in the active snapshot",
		},
	)

	SnapshotTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marquee_snapshot_built_timestamp_seconds",
			Help: "Unix time at which the active snapshot was built",
		},
	)

	// Sentiment Metrics
	SentimentRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_sentiment_requests_total",
			Help: "Sentiment oracle calls by oracle and result",
		},
		[]string{"oracle", "result"}, // result: "success", "failure"
	)

	SentimentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marquee_sentiment_duration_seconds",
			Help:    "Duration of sentiment oracle calls in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"oracle"},
	)

	SentimentCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marquee_sentiment_cache_hits_total",
			Help: "Total number of sentiment cache hits",
		},
	)

	SentimentCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marquee_sentiment_cache_misses_total",
			Help: "Total number of sentiment cache misses",
		},
	)

	SentimentFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marquee_sentiment_fallbacks_total",
			Help: "Total number of calls answered by the fallback oracle",
		},
	)

	// Query Metrics
	QueryResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marquee_query_results",
			Help:    "Number of movies returned per query",
			Buckets: []float64{0, 1, 5, 10, 15, 25, 50, 100, 500},
		},
		[]string{"kind"}, // "top", "filter", "mood", "chat"
	)

	QueryEmpty = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_query_empty_total",
			Help: "Queries that matched no movies",
		},
		[]string{"kind"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marquee_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marquee_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "marquee_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordDatasetLoad records a dataset load and its cleaning counters.
func RecordDatasetLoad(duration time.Duration, kept, missing, duplicates, blocked int, err error) {
	DatasetLoadDuration.Observe(duration.Seconds())
	if err != nil {
		DatasetLoadErrors.Inc()
		return
	}
	DatasetRows.WithLabelValues("kept").Add(float64(kept))
	DatasetRows.WithLabelValues("missing_fields").Add(float64(missing))
	DatasetRows.WithLabelValues("duplicate").Add(float64(duplicates))
	DatasetRows.WithLabelValues("blocked").Add(float64(blocked))
}

// RecordSnapshotBuild records a build or rescore. movies and builtAt update
// the active-snapshot gauges only on success.
func RecordSnapshotBuild(kind string, duration time.Duration, movies int, builtAt time.Time, err error) {
	SnapshotBuildDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if err != nil {
		SnapshotBuilds.WithLabelValues(kind, "error").Inc()
		return
	}
	SnapshotBuilds.WithLabelValues(kind, "success").Inc()
	SnapshotMovies.Set(float64(movies))
	SnapshotTimestamp.Set(float64(builtAt.Unix()))
}

// RecordSentiment records one oracle call.
func RecordSentiment(oracle string, duration time.Duration, err error) {
	SentimentDuration.WithLabelValues(oracle).Observe(duration.Seconds())
	if err != nil {
		SentimentRequests.WithLabelValues(oracle, "failure").Inc()
		return
	}
	SentimentRequests.WithLabelValues(oracle, "success").Inc()
}

// RecordQuery records the size of a query result.
func RecordQuery(kind string, results int) {
	QueryResults.WithLabelValues(kind).Observe(float64(results))
	if results == 0 {
		QueryEmpty.WithLabelValues(kind).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
