// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package middleware provides HTTP middleware for the Folio API.

  - RequestID: X-Request-ID propagation plus logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - Compression: gzip for JSON responses, image bodies are left alone

All middleware uses the http.HandlerFunc shape; the api package adapts them to
chi with chiMiddleware:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware
