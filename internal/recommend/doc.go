// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

// Package recommend answers "books similar to this one" from a precomputed
// item-item similarity matrix.
//
// # Retrieval
//
// TopK is a pure function over an index and matrix:
//
//	neighbors, err := recommend.TopK(snap.Index, snap.Matrix, "The Hobbit", 5)
//	if errors.Is(err, recommend.ErrNotFound) {
//	    // title is not in the index
//	}
//
// The query row is ranked by score, descending, with a stable sort so equal
// scores keep index order. The first ranked entry is treated as the self match
// and dropped; the next k entries are returned with their raw scores.
//
// # Service
//
// Recommender wraps a catalog.Snapshot and joins neighbors back to book rows:
//
//	rec := recommend.NewRecommender(snap, recommend.DefaultConfig(), logger)
//	recs, err := rec.Similar(ctx, "The Hobbit", 0) // k=0 uses the default
//
// # Thread Safety
//
// The snapshot is immutable, so every function and method here is safe for
// concurrent use without locking.
package recommend
