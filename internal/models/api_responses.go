// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package models

import (
	"time"
)

// APIResponse is the envelope every JSON endpoint returns.
//
// Status is "success" (see Data) or "error" (see Error).
//
//	{
//	  "status": "success",
//	  "data": [{"title": "The Hobbit", ...}],
//	  "metadata": {"timestamp": "2026-01-02T12:00:00Z", "query_time_ms": 3}
//	}
//
//	{
//	  "status": "error",
//	  "error": {"code": "NOT_FOUND", "message": "could not generate recommendations, try another selection"},
//	  "metadata": {"timestamp": "2026-01-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Count       int       `json:"count,omitempty"`
}

// APIError is the structured error body.
//
// Common codes:
//   - VALIDATION_ERROR: invalid query parameters
//   - NOT_FOUND: unknown title
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - INTERNAL_ERROR: unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status       string            `json:"status"`
	Version      string            `json:"version,omitempty"`
	Uptime       string            `json:"uptime,omitempty"`
	Books        int               `json:"books"`
	Titles       int               `json:"titles"`
	Breakers     map[string]string `json:"breakers,omitempty"`
	CacheSize    int               `json:"cover_cache_size"`
	CacheHitRate float64           `json:"cover_cache_hit_rate"` // percent of lookups
}
