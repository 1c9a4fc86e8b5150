// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package cover

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/folio/internal/cache"
	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/metrics"
	"github.com/tomtom215/folio/internal/placeholder"
)

// Resolver produces a cover for any Request. It is safe for concurrent use.
type Resolver struct {
	strategies []Strategy
	cache      *cache.LRU[Request, Cover]
	fetcher    *Fetcher
	logger     zerolog.Logger
}

// Option configures a Resolver.
type Option func(*resolverOptions)

type resolverOptions struct {
	client     *http.Client
	strategies []Strategy
	logger     *zerolog.Logger
}

// WithHTTPClient sets the client used by the network stages.
func WithHTTPClient(c *http.Client) Option {
	return func(o *resolverOptions) { o.client = c }
}

// WithStrategies replaces the default chain. The placeholder stage is always
// appended when the list does not already end with it.
func WithStrategies(s ...Strategy) Option {
	return func(o *resolverOptions) { o.strategies = s }
}

// WithLogger sets the resolver logger.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func WithLogger(l zerolog.Logger) Option {
	return func(o *resolverOptions) { o.logger = &l }
}

// NewResolver builds the default ISBN, search, fallback URL, placeholder chain.
func NewResolver(cfg Config, opts ...Option) *Resolver {
	var o resolverOptions
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.WithComponent("cover")
	if o.logger != nil {
		logger = o.logger.With().Str("component", "cover").Logger()
	}

	fetcher := NewFetcher(cfg, o.client)

	strategies := o.strategies
	if strategies == nil {
		strategies = []Strategy{
			NewISBNStrategy(fetcher, cfg.OpenLibraryURL),
			NewSearchStrategy(fetcher, cfg.GoogleBooksURL),
			NewFallbackURLStrategy(fetcher),
		}
	}
	if len(strategies) == 0 || strategies[len(strategies)-1].Source() != SourcePlaceholder {
		strategies = append(strategies, PlaceholderStrategy{})
	}

	return &Resolver{
		strategies: strategies,
		cache: cache.New[Request, Cover](cfg.CacheSize,
			cache.WithPolicy[Request, Cover](cfg.CachePolicy),
			cache.WithEvictCallback[Request, Cover](func(Request, Cover) {
				metrics.CoverCacheEvictions.Inc()
			}),
		),
		fetcher: fetcher,
		logger:  logger,
	}
}

// Resolve returns a cover for req, consulting the cache first. It never fails
// and the returned image is never nil. A resolution in which some stage was
// skipped by an open circuit is returned but not cached, so the source is
// tried again once it recovers.
func (r *Resolver) Resolve(ctx context.Context, req Request) Cover {
	c, cached, err := r.cache.Load(req, func() (Cover, bool, error) {
		c, complete := r.resolve(context.WithoutCancel(ctx), req)
		return c, complete, nil
	})
	metrics.RecordCoverCache(cached, r.cache.Len())
	if err != nil || c.Image == nil {
		return Cover{Image: placeholder.Make(req.Title, req.Author), Source: SourcePlaceholder}
	}
	return c
}

// resolve walks the strategy chain without touching the cache. complete is
// false when a stage missed because its circuit was open.
func (r *Resolver) resolve(ctx context.Context, req Request) (c Cover, complete bool) {
	start := time.Now()
	lctx := r.logger.With()
	if id := logging.RequestIDFromContext(ctx); id != "" {
		lctx = lctx.Str("request_id", id)
	}
	log := lctx.Logger()

	complete = true
	for _, s := range r.strategies {
		src := s.Source()
		out := s.Resolve(ctx, req)
		if out.OK() {
			metrics.RecordCoverStage(string(src), "hit")
			metrics.RecordCoverResolution(string(src))
			log.Debug().
				Str("title", req.Title).
				Str("source", string(src)).
				Bool("cacheable", complete).
				Dur("took", time.Since(start)).
				Msg("cover resolved")
			return Cover{Image: out.Image, Source: src}, complete
		}

		metrics.RecordCoverStage(string(src), string(out.Miss))
		if out.Miss == MissCircuitOpen {
			complete = false
		}
		if out.Miss != MissSkipped {
			ev := log.Debug().
				Str("title", req.Title).
				Str("stage", string(src)).
				Str("reason", string(out.Miss))
			if src == SourceISBN {
				ev = ev.Str("isbn", ISBNDigits(req.ISBN)).Str("isbn13", ISBN13(req.ISBN))
			}
			ev.Msg("cover stage missed")
		}
	}

	// Only reachable with a custom chain whose placeholder stage misbehaves.
	r.logger.Warn().Str("title", req.Title).Msg("all cover stages missed, rendering placeholder")
	metrics.RecordCoverResolution(string(SourcePlaceholder))
	return Cover{Image: placeholder.Make(req.Title, req.Author), Source: SourcePlaceholder}, complete
}

// Cached reports whether req already has a memoized cover.
func (r *Resolver) Cached(req Request) bool {
	return r.cache.Contains(req)
}

// CacheStats returns the cover cache counters.
func (r *Resolver) CacheStats() cache.Stats {
	return r.cache.Stats()
}

// BreakerStates returns the breaker state of each breaker-guarded stage.
func (r *Resolver) BreakerStates() map[Source]string {
	out := make(map[Source]string, len(breakerSources))
	for _, src := range breakerSources {
		out[src] = r.fetcher.BreakerState(src)
	}
	return out
}

// Strategies returns the resolution chain in order.
func (r *Resolver) Strategies() []Source {
	out := make([]Source, len(r.strategies))
	for i, s := range r.strategies {
		out[i] = s.Source()
	}
	return out
}
