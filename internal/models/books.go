// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package models

import "fmt"

// BookCard is one book as shown in a grid: metadata, a cover link and a caption.
type BookCard struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	Year      int    `json:"year,omitempty"`
	CoverURL  string `json:"cover_url"`

	Rating      float64 `json:"rating,omitempty"`
	RatingCount int     `json:"rating_count,omitempty"`
	Caption     string  `json:"caption,omitempty"`
}

// SimilarBookCard is a BookCard ranked against a chosen title.
type SimilarBookCard struct {
	BookCard
	// Score is the raw similarity.
	Score float64 `json:"score"`
	// Fraction is Score clamped to [0,1] for progress bars.
	Fraction float64 `json:"fraction"`
	// Percent is the display string, e.g. "87%".
	Percent string `json:"percent"`
}

// TitleList lists the titles a user may pick from.
type TitleList struct {
	Titles []string `json:"titles"`
}

// RatingCaption formats the popular-list caption, e.g. "Rating: 4.5 ★ (120 reviews)".
func RatingCaption(rating float64, count int) string {
	return fmt.Sprintf("Rating: %.1f ★ (%d reviews)", rating, count)
}

// SimilarityCaption formats the recommendation caption, e.g. "Similarity: 87%".
func SimilarityCaption(percent string) string {
	return "Similarity: " + percent
}
