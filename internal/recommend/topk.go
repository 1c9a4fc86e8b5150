// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package recommend

import (
	"sort"

	"github.com/tomtom215/folio/internal/catalog"
)

// TitleIndex resolves titles to matrix positions.
type TitleIndex interface {
	Position(title string) (int, bool)
	Title(pos int) string
	Len() int
}

// ScoreMatrix exposes similarity rows.
type ScoreMatrix interface {
	Row(i int) []float64
}

var (
	_ TitleIndex  = (*catalog.Index)(nil)
	_ ScoreMatrix = (*catalog.Matrix)(nil)
)

// TopK returns the k titles most similar to queryTitle, best first.
//
// The result has min(k, n-1) entries for an index of n titles; k <= 0 yields an
// empty slice. The first entry after sorting is dropped as the self match,
// even when another title ties or outranks the diagonal.
func TopK(index TitleIndex, matrix ScoreMatrix, queryTitle string, k int) ([]Neighbor, error) {
	pos, ok := index.Position(queryTitle)
	if !ok {
		return nil, &NotFoundError{Title: queryTitle}
	}
	if k <= 0 {
		return []Neighbor{}, nil
	}

	row := matrix.Row(pos)
	ranked := make([]Neighbor, len(row))
	for i, score := range row {
		ranked[i] = Neighbor{Position: i, Score: score}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	if len(ranked) <= 1 {
		return []Neighbor{}, nil
	}
	ranked = ranked[1:]
	if k < len(ranked) {
		ranked = ranked[:k]
	}

	out := make([]Neighbor, len(ranked))
	for i, n := range ranked {
		n.Title = index.Title(n.Position)
		out[i] = n
	}
	return out, nil
}
