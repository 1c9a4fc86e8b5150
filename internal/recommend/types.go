// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package recommend

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/folio/internal/catalog"
)

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("title not found")

// NotFoundError reports a query title absent from the index.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("recommend: title %q not found in index", e.Title)
}

// Is makes errors.Is(err, ErrNotFound) true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Neighbor is one ranked similarity result.
type Neighbor struct {
	// Title is the neighbor's index title.
	Title string `json:"title"`

	// Position is the neighbor's matrix position.
	Position int `json:"position"`

	// Score is the raw similarity value from the matrix.
	Score float64 `json:"score"`
}

// Recommendation is a neighbor joined to its catalog row.
type Recommendation struct {
	Book  catalog.Book `json:"book"`
	Score float64      `json:"score"`
}

// DisplayFraction clamps score into [0,1] for progress bars. NaN maps to 0.
func DisplayFraction(score float64) float64 {
	switch {
	case math.IsNaN(score), score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}

// ValidScore reports whether score is already a displayable fraction.
func ValidScore(score float64) bool {
	return !math.IsNaN(score) && score >= 0 && score <= 1
}

// Percent renders a score the way the UI labels it, e.g. "87%".
func Percent(score float64) string {
	return fmt.Sprintf("%.0f%%", DisplayFraction(score)*100)
}
