// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package api provides the HTTP layer for Folio.

Routes (chi):

	GET /api/v1/books/popular?limit=                           popular book cards
	GET /api/v1/books/titles                                   selectable titles
	GET /api/v1/recommendations/similar?title=&k=              ranked similar book cards
	GET /api/v1/covers?title=&author=&isbn=&format=   cover image bytes
	GET /api/v1/health, /api/v1/health/live, /api/v1/health/ready
	GET /metrics                                               Prometheus exposition

JSON endpoints answer with models.APIResponse. The cover endpoint answers with
raw PNG or JPEG bytes and names the winning resolution stage in the
X-Cover-Source header. It never fails: unreachable sources end in a generated
placeholder.

Middleware order: request ID and logging context, RealIP, Recoverer, CORS, then
per-group rate limiting, security headers, Prometheus instrumentation and gzip
(JSON only).
*/
package api
