// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/folio/internal/logging"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateData(); err != nil {
		return err
	}
	if err := c.validateCover(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateData() error {
	if strings.TrimSpace(c.Data.Dir) == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	return nil
}

func (c *Config) validateCover() error {
	cv := &c.Cover
	if err := validateHTTPURL(cv.OpenLibraryURL, "OPENLIBRARY_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(cv.GoogleBooksURL, "GOOGLE_BOOKS_URL"); err != nil {
		return err
	}
	if cv.Timeout <= 0 || cv.Timeout > 2*time.Minute {
		return fmt.Errorf("COVER_TIMEOUT must be between 0 and 2m, got %s", cv.Timeout)
	}
	if cv.MaxBodyBytes <= 0 {
		return fmt.Errorf("COVER_MAX_BODY_BYTES must be positive, got %d", cv.MaxBodyBytes)
	}
	if cv.MinImageSide < 1 {
		return fmt.Errorf("COVER_MIN_IMAGE_SIDE must be at least 1, got %d", cv.MinImageSide)
	}
	if cv.RatePerSecond < 0 {
		return fmt.Errorf("COVER_RATE_PER_SECOND must not be negative, got %v", cv.RatePerSecond)
	}
	if cv.CacheSize < 1 {
		return fmt.Errorf("COVER_CACHE_SIZE must be at least 1, got %d", cv.CacheSize)
	}
	switch strings.ToLower(cv.CachePolicy) {
	case "lru", "fifo":
	default:
		return fmt.Errorf("COVER_CACHE_POLICY must be lru or fifo, got %q", cv.CachePolicy)
	}
	if cv.Breaker.FailureRatio <= 0 || cv.Breaker.FailureRatio > 1 {
		return fmt.Errorf("COVER_BREAKER_FAILURE_RATIO must be in (0, 1], got %v", cv.Breaker.FailureRatio)
	}
	if cv.Breaker.Timeout <= 0 {
		return fmt.Errorf("COVER_BREAKER_TIMEOUT must be positive, got %s", cv.Breaker.Timeout)
	}
	if cv.Warmup.Enabled && cv.Warmup.Concurrency < 1 {
		return fmt.Errorf("COVER_WARMUP_CONCURRENCY must be at least 1, got %d", cv.Warmup.Concurrency)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.DefaultK < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be at least 1, got %d", r.DefaultK)
	}
	if r.MaxK < r.DefaultK {
		return fmt.Errorf("RECOMMEND_MAX_K (%d) must be >= RECOMMEND_DEFAULT_K (%d)", r.MaxK, r.DefaultK)
	}
	if r.PopularLimit < 1 {
		return fmt.Errorf("RECOMMEND_POPULAR_LIMIT must be at least 1, got %d", r.PopularLimit)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL is invalid: %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
