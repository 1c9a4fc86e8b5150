// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package main

import (
	"fmt"
	"os"

	"github.com/tomtom215/folio/internal/api"
	"github.com/tomtom215/folio/internal/cache"
	"github.com/tomtom215/folio/internal/config"
	"github.com/tomtom215/folio/internal/cover"
	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/recommend"
)

// These adapters map config sections onto the component configs so that
// config does not depend on the components it configures.

func loggingConfig(cfg *config.Config) logging.Config {
	return logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	}
}

func recommendConfig(cfg *config.Config) recommend.Config {
	return recommend.Config{
		DefaultK:     cfg.Recommend.DefaultK,
		MaxK:         cfg.Recommend.MaxK,
		PopularLimit: cfg.Recommend.PopularLimit,
	}
}

func coverConfig(cfg *config.Config) (cover.Config, error) {
	policy, err := cache.ParsePolicy(cfg.Cover.CachePolicy)
	if err != nil {
		return cover.Config{}, fmt.Errorf("cover cache policy: %w", err)
	}

	cc := cover.Config{
		OpenLibraryURL: cfg.Cover.OpenLibraryURL,
		GoogleBooksURL: cfg.Cover.GoogleBooksURL,
		Timeout:        cfg.Cover.Timeout,
		MaxBodyBytes:   cfg.Cover.MaxBodyBytes,
		MinImageSide:   cfg.Cover.MinImageSide,
		UserAgent:      cfg.Cover.UserAgent,
		RatePerSecond:  cfg.Cover.RatePerSecond,
		RateBurst:      cfg.Cover.RateBurst,
		CacheSize:      cfg.Cover.CacheSize,
		CachePolicy:    policy,
		Breaker: cover.BreakerConfig{
			MaxRequests:  cfg.Cover.Breaker.MaxRequests,
			Interval:     cfg.Cover.Breaker.Interval,
			Timeout:      cfg.Cover.Breaker.Timeout,
			MinRequests:  cfg.Cover.Breaker.MinRequests,
			FailureRatio: cfg.Cover.Breaker.FailureRatio,
		},
	}
	if err := cc.Validate(); err != nil {
		return cover.Config{}, err
	}
	return cc, nil
}

func middlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mc := api.DefaultChiMiddlewareConfig()
	mc.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mc.RateLimitRequests = cfg.Security.RateLimitReqs
	mc.RateLimitWindow = cfg.Security.RateLimitWindow
	mc.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return mc
}
