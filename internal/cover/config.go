// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package cover

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/folio/internal/cache"
)

// Default source endpoints.
const (
	DefaultOpenLibraryURL = "https://covers.openlibrary.org"
	DefaultGoogleBooksURL = "https://www.googleapis.com"
)

// Config configures the resolver and its fetcher.
type Config struct {
	// OpenLibraryURL is the base of the covers-by-ISBN endpoint.
	OpenLibraryURL string
	// GoogleBooksURL is the base of the volume search endpoint.
	GoogleBooksURL string

	// Timeout bounds each outbound request.
	Timeout time.Duration
	// MaxBodyBytes caps a response body.
	MaxBodyBytes int64
	// MinImageSide rejects decoded images narrower or shorter than this.
	// Open Library answers unknown ISBNs with a 1x1 image.
	MinImageSide int
	// UserAgent is sent on every request.
	UserAgent string

	// RatePerSecond paces requests per source; <= 0 disables pacing.
	RatePerSecond float64
	// RateBurst is the limiter burst size.
	RateBurst int

	// CacheSize bounds the number of memoized covers.
	CacheSize int
	// CachePolicy is the eviction policy.
	CachePolicy cache.Policy

	// Breaker tunes the per-source circuit breakers.
	Breaker BreakerConfig
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		OpenLibraryURL: DefaultOpenLibraryURL,
		GoogleBooksURL: DefaultGoogleBooksURL,
		Timeout:        10 * time.Second,
		MaxBodyBytes:   10 << 20,
		MinImageSide:   2,
		UserAgent:      "Folio/1.0 (+https://github.com/tomtom215/folio)",
		RatePerSecond:  10,
		RateBurst:      5,
		CacheSize:      cache.DefaultCapacity,
		CachePolicy:    cache.PolicyLRU,
		Breaker:        DefaultBreakerConfig(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("cover timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("cover max body bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("cover cache size must be positive, got %d", c.CacheSize)
	}
	if c.MinImageSide < 1 {
		return fmt.Errorf("cover min image side must be at least 1, got %d", c.MinImageSide)
	}
	for name, u := range map[string]string{"openlibrary": c.OpenLibraryURL, "google books": c.GoogleBooksURL} {
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			return fmt.Errorf("%s url must be http(s), got %q", name, u)
		}
	}
	return nil
}
