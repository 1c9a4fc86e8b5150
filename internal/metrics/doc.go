// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package metrics defines the Prometheus metrics Folio exports on /metrics.

All collectors are registered on the default registry through promauto at
package init. Components record through the helper functions:

	metrics.RecordCoverStage("isbn", "too_small")
	metrics.RecordCoverResolution("search")
	metrics.RecordRecommendation(time.Since(start), true)

# Metric Families

	folio_api_*               request counts, latency, active requests, rate limit rejections
	folio_recommend_*         similarity lookups by result, latency, clamped scores
	folio_cover_*             stage outcomes, winning sources, fetch latency, cache counters
	folio_circuit_breaker_*   per-source breaker state and transitions
	folio_catalog_*           loaded catalog dimensions
*/
package metrics
