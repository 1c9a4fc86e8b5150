// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "folio_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "folio_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_recommend_requests_total",
			Help: "Total similarity lookups by result",
		},
		[]string{"result"}, // "ok", "not_found"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "folio_recommend_duration_seconds",
			Help:    "Duration of similarity lookups in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	RecommendScoreOutOfRange = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_recommend_score_out_of_range_total",
			Help: "Similarity scores outside [0,1] that were clamped for display",
		},
	)

	// Cover Resolution Metrics
	CoverStageOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_cover_stage_outcomes_total",
			Help: "Cover resolution stage outcomes",
		},
		[]string{"stage", "outcome"}, // outcome: "hit" or a miss reason
	)

	CoverResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_cover_resolutions_total",
			Help: "Completed cover resolutions by winning source",
		},
		[]string{"source"},
	)

	CoverFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "folio_cover_fetch_duration_seconds",
			Help:    "Duration of outbound cover source requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)

	CoverCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_cover_cache_hits_total",
			Help: "Cover cache hits",
		},
	)

	CoverCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_cover_cache_misses_total",
			Help: "Cover cache misses",
		},
	)

	CoverCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "folio_cover_cache_evictions_total",
			Help: "Cover cache evictions",
		},
	)

	CoverCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "folio_cover_cache_size",
			Help: "Current number of cached covers",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "folio_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "folio_circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folio_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Catalog Metrics
	CatalogBooks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "folio_catalog_books",
			Help: "Number of books in the loaded catalog",
		},
	)

	CatalogTitles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "folio_catalog_index_titles",
			Help: "Number of titles in the similarity index",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records a similarity lookup.
func RecordRecommendation(duration time.Duration, found bool) {
	result := "ok"
	if !found {
		result = "not_found"
	}
	RecommendRequests.WithLabelValues(result).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordCoverStage records one stage outcome; outcome is "hit" or a miss reason.
func RecordCoverStage(stage, outcome string) {
	CoverStageOutcomes.WithLabelValues(stage, outcome).Inc()
}

// RecordCoverResolution records the source that produced a cover.
func RecordCoverResolution(source string) {
	CoverResolutions.WithLabelValues(source).Inc()
}

// RecordCoverFetch records an outbound request duration.
func RecordCoverFetch(source string, duration time.Duration) {
	CoverFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordCoverCache records a cover cache lookup and the resulting size.
func RecordCoverCache(hit bool, size int) {
	if hit {
		CoverCacheHits.Inc()
	} else {
		CoverCacheMisses.Inc()
	}
	CoverCacheSize.Set(float64(size))
}

// SetCatalogSize publishes the loaded catalog dimensions.
func SetCatalogSize(books, titles int) {
	CatalogBooks.Set(float64(books))
	CatalogTitles.Set(float64(titles))
}
