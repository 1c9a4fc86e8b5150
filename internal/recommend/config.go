// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package recommend

import "fmt"

// Config contains the request limits of the Recommender.
type Config struct {
	// DefaultK is used when a request asks for k <= 0.
	DefaultK int `json:"default_k"`

	// MaxK caps the number of neighbors per request.
	MaxK int `json:"max_k"`

	// PopularLimit is the default size of the popular list.
	PopularLimit int `json:"popular_limit"`
}

// DefaultConfig returns the defaults: five neighbors, at most fifty, fifty popular books.
func DefaultConfig() Config {
	return Config{
		DefaultK:     5,
		MaxK:         50,
		PopularLimit: 50,
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.DefaultK < 1 {
		return fmt.Errorf("default_k must be at least 1, got %d", c.DefaultK)
	}
	if c.MaxK < c.DefaultK {
		return fmt.Errorf("max_k (%d) must be >= default_k (%d)", c.MaxK, c.DefaultK)
	}
	if c.PopularLimit < 1 {
		return fmt.Errorf("popular_limit must be at least 1, got %d", c.PopularLimit)
	}
	return nil
}

// ClampK maps a requested k onto [1, MaxK], substituting DefaultK for k <= 0.
func (c Config) ClampK(k int) int {
	if k <= 0 {
		return c.DefaultK
	}
	if k > c.MaxK {
		return c.MaxK
	}
	return k
}
