// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package cache provides a generic, bounded, thread-safe in-memory cache.

The cover resolver memoizes resolved images keyed by the request metadata
(title, author, ISBN, fallback URL); the API layer memoizes encoded cover
bytes. Both use LRU:

	covers := cache.New[cover.Request, cover.Cover](1000)
	c, _ := covers.GetOrLoad(req, func() (cover.Cover, error) {
	    return resolve(ctx, req), nil
	})

# Eviction

PolicyLRU (default) evicts the least recently used entry. PolicyFIFO evicts
in insertion order and never reorders on Get:

	fifo := cache.New[string, []byte](100, cache.WithPolicy[string, []byte](cache.PolicyFIFO))

# Load Deduplication

GetOrLoad runs at most one load per key at a time (golang.org/x/sync/singleflight).
Concurrent callers for the same key wait on the in-flight load and receive the
value that was stored, so every caller observes a single entry.

Load is the same with a loader that may decline to store its value, and it
reports whether the value was already cached:

	c, cached, _ := covers.Load(req, func() (cover.Cover, bool, error) {
	    c, complete := resolve(ctx, req)
	    return c, complete, nil
	})

# Thread Safety

All methods are safe for concurrent use. Operations are O(1) except Keys and Clear.
*/
package cache
