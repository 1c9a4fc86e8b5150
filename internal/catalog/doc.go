// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package catalog holds the read-only book data Folio serves from.

A Snapshot bundles four artifacts produced offline:

	books.json       []Book         book metadata, one row per edition
	index.json       []string       title index; position i is matrix row/column i
	similarity.json  [][]float64    square pairwise similarity matrix
	popular.json     []Book         curated popular list (optional)

LoadDir reads all of them once at start-up. Nothing is mutated afterwards, so
a Snapshot may be shared by any number of goroutines without locking.
*/
package catalog
