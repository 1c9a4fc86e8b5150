// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/folio/internal/catalog"
	"github.com/tomtom215/folio/internal/cover"
)

// CoverResolver is the part of *cover.Resolver the warm-up needs.
type CoverResolver interface {
	Resolve(ctx context.Context, req cover.Request) cover.Cover
}

// CoverWarmupConfig holds configuration for the warm-up service.
type CoverWarmupConfig struct {
	// Concurrency bounds parallel resolutions. Default: 4
	Concurrency int
}

// CoverWarmupService resolves the covers of a fixed book list once, so the
// first visitor to the popular page is served from the cover cache.
//
// It is a one-shot job: after the list is done Serve returns
// suture.ErrDoNotRestart.
type CoverWarmupService struct {
	resolver CoverResolver
	books    []catalog.Book
	config   CoverWarmupConfig
	logger   zerolog.Logger
	name     string
}

// NewCoverWarmupService creates a new warm-up service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCoverWarmupService(resolver CoverResolver, books []catalog.Book, cfg CoverWarmupConfig, logger zerolog.Logger) *CoverWarmupService {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 4
	}
	return &CoverWarmupService{
		resolver: resolver,
		books:    books,
		config:   cfg,
		logger:   logger.With().Str("service", "cover-warmup").Logger(),
		name:     "cover-warmup-service",
	}
}

// Serve implements the suture.Service interface.
func (s *CoverWarmupService) Serve(ctx context.Context) error {
	start := time.Now()
	s.logger.Info().
		Int("books", len(s.books)).
		Int("concurrency", s.config.Concurrency).
		Msg("cover warm-up starting")

	done := make(chan map[cover.Source]int, 1)
	go func() {
		done <- s.warm(ctx)
	}()

	// Resolutions outlive cancellation; shutdown does not wait for them.
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("cover warm-up interrupted")
		return ctx.Err()
	case sources := <-done:
		ev := s.logger.Info().Dur("duration", time.Since(start))
		for src, n := range sources {
			ev = ev.Int(string(src), n)
		}
		ev.Msg("cover warm-up complete")
		return suture.ErrDoNotRestart
	}
}

// warm resolves every book and tallies the winning sources.
func (s *CoverWarmupService) warm(ctx context.Context) map[cover.Source]int {
	results := make([]cover.Source, len(s.books))

	var g errgroup.Group
	g.SetLimit(s.config.Concurrency)
	for i, b := range s.books {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			c := s.resolver.Resolve(ctx, cover.Request{
				Title:       b.Title,
				Author:      b.Author,
				ISBN:        b.ISBN,
				FallbackURL: b.ImageURL,
			})
			results[i] = c.Source
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	tally := make(map[cover.Source]int)
	for _, src := range results {
		if src != "" {
			tally[src]++
		}
	}
	return tally
}

// String returns the service name for logging.
func (s *CoverWarmupService) String() string {
	return s.name
}
