// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package cover resolves a displayable cover image for a book from sparse,
unreliable metadata.

# Resolution Chain

Resolve walks an ordered list of strategies and returns the first image:

 1. ISBN: Open Library covers by digits-only ISBN (skipped without an ISBN)
 2. Search: Google Books volume search by sanitized title and author, then the
    first result's thumbnail (https, zoom=2)
 3. Fallback URL: the caller's image hint, upgraded to https (skipped when empty)
 4. Placeholder: a generated 200x300 image (never misses)

A strategy reports an Outcome value: an image, or a Miss with a reason
(network, timeout, status, too_large, decode, too_small, no_result,
circuit_open, skipped). Misses are logged at debug level and counted; they are
never returned to the caller, so Resolve always yields an image.

# Network Policy

Every outbound request runs under its own timeout (10s by default), passes a
per-source rate limiter and a per-source circuit breaker (sony/gobreaker), and
reads at most MaxBodyBytes. There are no retries.

# Caching

Results are memoized in a bounded cache keyed by the full Request. Concurrent
requests for the same key share one resolution. A resolution in flight is
detached from caller cancellation so an aborted HTTP request never stores a
placeholder in place of a real cover.

# Usage

	resolver := cover.NewResolver(cover.DefaultConfig())
	c := resolver.Resolve(ctx, cover.Request{Title: "Dune", Author: "Frank Herbert", ISBN: "0441013597"})
	_ = cover.Encode(w, c.Image, cover.FormatPNG)
*/
package cover
