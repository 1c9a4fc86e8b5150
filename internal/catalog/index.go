// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package catalog

import (
	"errors"
	"fmt"
)

// ErrShape is wrapped by every artifact consistency error.
var ErrShape = errors.New("artifact shape mismatch")

// Index maps titles to matrix positions. Position i names row and column i.
type Index struct {
	titles    []string
	positions map[string]int
}

// NewIndex builds an Index in the given order. Duplicate or empty titles are rejected.
func NewIndex(titles []string) (*Index, error) {
	idx := &Index{
		titles:    make([]string, len(titles)),
		positions: make(map[string]int, len(titles)),
	}
	for i, t := range titles {
		if t == "" {
			return nil, fmt.Errorf("%w: empty title at position %d", ErrShape, i)
		}
		if prev, dup := idx.positions[t]; dup {
			return nil, fmt.Errorf("%w: duplicate title %q at positions %d and %d", ErrShape, t, prev, i)
		}
		idx.positions[t] = i
		idx.titles[i] = t
	}
	return idx, nil
}

// Position returns the matrix position of title.
func (x *Index) Position(title string) (int, bool) {
	p, ok := x.positions[title]
	return p, ok
}

// Title returns the title at position pos.
func (x *Index) Title(pos int) string {
	return x.titles[pos]
}

// Titles returns a copy of the titles in position order.
func (x *Index) Titles() []string {
	out := make([]string, len(x.titles))
	copy(out, x.titles)
	return out
}

// Len returns the number of titles.
func (x *Index) Len() int {
	return len(x.titles)
}

// Matrix is a square similarity matrix aligned with an Index.
type Matrix struct {
	rows [][]float64
}

// NewMatrix validates that rows is n×n.
func NewMatrix(rows [][]float64, n int) (*Matrix, error) {
	if len(rows) != n {
		return nil, fmt.Errorf("%w: matrix has %d rows, index has %d titles", ErrShape, len(rows), n)
	}
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("%w: matrix row %d has %d columns, want %d", ErrShape, i, len(r), n)
		}
	}
	return &Matrix{rows: rows}, nil
}

// Row returns row i. Callers must not modify it.
func (m *Matrix) Row(i int) []float64 {
	return m.rows[i]
}

// Len returns the matrix dimension.
func (m *Matrix) Len() int {
	return len(m.rows)
}
