// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package api

import (
	"context"
	"time"

	"github.com/tomtom215/folio/internal/cache"
	"github.com/tomtom215/folio/internal/catalog"
	"github.com/tomtom215/folio/internal/cover"
	"github.com/tomtom215/folio/internal/recommend"
)

// Recommendations answers similarity and popularity queries.
// *recommend.Recommender implements it.
type Recommendations interface {
	Similar(ctx context.Context, title string, k int) ([]recommend.Recommendation, error)
	Popular(ctx context.Context, limit int) []catalog.Book
	Titles() []string
	Book(title string) (catalog.Book, bool)
	BookCount() int
	Config() recommend.Config
}

// Covers resolves cover images. *cover.Resolver implements it.
type Covers interface {
	Resolve(ctx context.Context, req cover.Request) cover.Cover
	CacheStats() cache.Stats
	BreakerStates() map[cover.Source]string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_books.go: popular, titles, similar
//   - handlers_cover.go: cover images
//   - handlers_health.go: health probes
type Handler struct {
	recs      Recommendations
	covers    Covers
	encoded   *cache.LRU[encodedKey, encodedCover]
	startTime time.Time
	version   string
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithVersion sets the version reported by the health endpoint.
func WithVersion(v string) HandlerOption {
	return func(h *Handler) { h.version = v }
}

// WithEncodedCacheSize bounds the cache of encoded cover bytes.
func WithEncodedCacheSize(n int) HandlerOption {
	return func(h *Handler) {
		h.encoded = cache.New[encodedKey, encodedCover](n)
	}
}

// NewHandler creates a Handler.
//
//	handler := api.NewHandler(recommender, resolver, api.WithVersion(version))
//	router := api.NewRouter(handler, api.DefaultChiMiddlewareConfig())
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(recs Recommendations, covers Covers, opts ...HandlerOption) *Handler {
	h := &Handler{
		recs:      recs,
		covers:    covers,
		startTime: time.Now(),
		version:   "dev",
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.encoded == nil {
		h.encoded = cache.New[encodedKey, encodedCover](cache.DefaultCapacity)
	}
	return h
}
