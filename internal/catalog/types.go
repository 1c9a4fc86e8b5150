// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package catalog

import "strings"

// Book is one catalog row. Only Title is required.
type Book struct {
	Title       string  `json:"title"`
	Author      string  `json:"author,omitempty"`
	ISBN        string  `json:"isbn,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	RatingCount int     `json:"rating_count,omitempty"`
	Publisher   string  `json:"publisher,omitempty"`
	Year        int     `json:"year,omitempty"`
}

// HasRating reports whether the book carries rating data worth displaying.
func (b Book) HasRating() bool {
	return b.RatingCount > 0 || b.Rating > 0
}

// Catalog is an ordered, read-only list of books with title lookup.
type Catalog struct {
	books   []Book
	byTitle map[string]int
}

// New builds a Catalog. When titles repeat, the first row wins lookups.
// Rows with a blank title are dropped.
func New(books []Book) *Catalog {
	c := &Catalog{
		books:   make([]Book, 0, len(books)),
		byTitle: make(map[string]int, len(books)),
	}
	for _, b := range books {
		if strings.TrimSpace(b.Title) == "" {
			continue
		}
		if _, dup := c.byTitle[b.Title]; !dup {
			c.byTitle[b.Title] = len(c.books)
		}
		c.books = append(c.books, b)
	}
	return c
}

// Len returns the number of rows.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Books returns a copy of all rows in load order.
func (c *Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// ByTitle returns the first book with the exact title.
func (c *Catalog) ByTitle(title string) (Book, bool) {
	i, ok := c.byTitle[title]
	if !ok {
		return Book{}, false
	}
	return c.books[i], true
}
