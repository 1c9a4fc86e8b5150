// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package cover

import (
	"context"
	"net/url"
	"strings"

	"github.com/tomtom215/folio/internal/placeholder"
)

// ISBNStrategy looks a cover up on Open Library by digits-only ISBN.
type ISBNStrategy struct {
	fetcher *Fetcher
	baseURL string
}

// NewISBNStrategy creates the ISBN stage.
func NewISBNStrategy(f *Fetcher, baseURL string) *ISBNStrategy {
	return &ISBNStrategy{fetcher: f, baseURL: strings.TrimRight(baseURL, "/")}
}

// Source implements Strategy.
func (s *ISBNStrategy) Source() Source { return SourceISBN }

// URL returns the cover URL for isbn, or "" when it has no digits.
func (s *ISBNStrategy) URL(isbn string) string {
	digits := ISBNDigits(isbn)
	if digits == "" {
		return ""
	}
	return s.baseURL + "/b/isbn/" + digits + "-L.jpg"
}

// Resolve implements Strategy.
func (s *ISBNStrategy) Resolve(ctx context.Context, req Request) Outcome {
	u := s.URL(req.ISBN)
	if u == "" {
		return Missed(MissSkipped)
	}
	return s.fetcher.GetImage(ctx, SourceISBN, u)
}

// volumesResponse is the subset of the Google Books volumes payload we read.
type volumesResponse struct {
	Items []struct {
		VolumeInfo struct {
			ImageLinks struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// SearchStrategy searches Google Books by title and author and fetches the
// first result's thumbnail.
type SearchStrategy struct {
	fetcher *Fetcher
	baseURL string
}

// NewSearchStrategy creates the search stage.
func NewSearchStrategy(f *Fetcher, baseURL string) *SearchStrategy {
	return &SearchStrategy{fetcher: f, baseURL: strings.TrimRight(baseURL, "/")}
}

// Source implements Strategy.
func (s *SearchStrategy) Source() Source { return SourceSearch }

// URL returns the volume search URL for the sanitized title and author.
// The literal '+' joins the two qualifiers.
func (s *SearchStrategy) URL(title, author string) string {
	q := "intitle:" + url.QueryEscape(Sanitize(title)) + "+inauthor:" + url.QueryEscape(Sanitize(author))
	return s.baseURL + "/books/v1/volumes?q=" + q
}

// Resolve implements Strategy.
func (s *SearchStrategy) Resolve(ctx context.Context, req Request) Outcome {
	var resp volumesResponse
	if miss := s.fetcher.GetJSON(ctx, SourceSearch, s.URL(req.Title, req.Author), &resp); miss != MissNone {
		return Missed(miss)
	}
	if len(resp.Items) == 0 {
		return Missed(MissNoResult)
	}
	thumb := resp.Items[0].VolumeInfo.ImageLinks.Thumbnail
	if thumb == "" {
		return Missed(MissNoResult)
	}
	return s.fetcher.GetImage(ctx, SourceSearch, ThumbnailURL(thumb))
}

// FallbackURLStrategy fetches the caller's image hint over https.
type FallbackURLStrategy struct {
	fetcher *Fetcher
}

// NewFallbackURLStrategy creates the fallback stage.
func NewFallbackURLStrategy(f *Fetcher) *FallbackURLStrategy {
	return &FallbackURLStrategy{fetcher: f}
}

// Source implements Strategy.
func (s *FallbackURLStrategy) Source() Source { return SourceFallbackURL }

// Resolve implements Strategy.
func (s *FallbackURLStrategy) Resolve(ctx context.Context, req Request) Outcome {
	if req.FallbackURL == "" {
		return Missed(MissSkipped)
	}
	return s.fetcher.GetImage(ctx, SourceFallbackURL, SecureURL(req.FallbackURL))
}

// PlaceholderStrategy renders a generated cover. It never misses.
type PlaceholderStrategy struct{}

// Source implements Strategy.
func (PlaceholderStrategy) Source() Source { return SourcePlaceholder }

// Resolve implements Strategy.
func (PlaceholderStrategy) Resolve(_ context.Context, req Request) Outcome {
	return Hit(placeholder.Make(req.Title, req.Author))
}
