// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/folio/internal/catalog"
	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/metrics"
)

// Recommender serves similarity and popularity queries from a Snapshot.
type Recommender struct {
	snap   *catalog.Snapshot
	config Config
	logger zerolog.Logger
}

// NewRecommender creates a Recommender. An invalid config falls back to DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRecommender(snap *catalog.Snapshot, cfg Config, logger zerolog.Logger) *Recommender {
	l := logger.With().Str("component", "recommend").Logger()
	if err := cfg.Validate(); err != nil {
		l.Warn().Err(err).Msg("invalid recommend config, using defaults")
		cfg = DefaultConfig()
	}
	return &Recommender{snap: snap, config: cfg, logger: l}
}

// Config returns the effective configuration.
func (r *Recommender) Config() Config {
	return r.config
}

// Similar returns up to k books most similar to title. k <= 0 uses the
// configured default; k above the maximum is capped. Neighbors without a
// catalog row are returned with a title-only Book.
func (r *Recommender) Similar(ctx context.Context, title string, k int) ([]Recommendation, error) {
	start := time.Now()
	k = r.config.ClampK(k)

	neighbors, err := TopK(r.snap.Index, r.snap.Matrix, title, k)
	metrics.RecordRecommendation(time.Since(start), err == nil)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logging.Ctx(ctx).Debug().Str("component", "recommend").Str("title", title).Msg("title not in index")
			return nil, err
		}
		return nil, fmt.Errorf("similar %q: %w", title, err)
	}

	recs := make([]Recommendation, 0, len(neighbors))
	for _, n := range neighbors {
		if !ValidScore(n.Score) {
			metrics.RecommendScoreOutOfRange.Inc()
			r.logger.Warn().
				Str("query", title).
				Str("neighbor", n.Title).
				Float64("score", n.Score).
				Msg("similarity score outside [0,1], display will be clamped")
		}

		book, ok := r.snap.Catalog.ByTitle(n.Title)
		if !ok {
			book = catalog.Book{Title: n.Title}
		}
		recs = append(recs, Recommendation{Book: book, Score: n.Score})
	}

	logging.Ctx(ctx).Debug().
		Str("component", "recommend").
		Str("title", title).
		Int("k", k).
		Int("returned", len(recs)).
		Dur("took", time.Since(start)).
		Msg("similar books resolved")

	return recs, nil
}

// Popular returns the first limit books of the popular list. limit <= 0 uses
// the configured default.
func (r *Recommender) Popular(_ context.Context, limit int) []catalog.Book {
	if limit <= 0 {
		limit = r.config.PopularLimit
	}
	if limit > len(r.snap.Popular) {
		limit = len(r.snap.Popular)
	}
	out := make([]catalog.Book, limit)
	copy(out, r.snap.Popular[:limit])
	return out
}

// Titles returns the selectable titles in index order.
func (r *Recommender) Titles() []string {
	return r.snap.Index.Titles()
}

// Book looks up a catalog row by title.
func (r *Recommender) Book(title string) (catalog.Book, bool) {
	return r.snap.Catalog.ByTitle(title)
}

// BookCount returns the number of catalog rows.
func (r *Recommender) BookCount() int {
	return r.snap.Catalog.Len()
}
