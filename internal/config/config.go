// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2, later wins):
//  1. Defaults built into defaultConfig()
//  2. Optional YAML file (config.yaml, /etc/folio/config.yaml or CONFIG_PATH)
//  3. Mapped environment variables (HTTP_PORT, DATA_DIR, COVER_TIMEOUT, ...)
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Cover     CoverConfig     `koanf:"cover"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// Environment is "development" or "production".
	Environment string `koanf:"environment"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DataConfig locates the precomputed artifacts.
type DataConfig struct {
	// Dir holds books.json, index.json, similarity.json and popular.json.
	Dir string `koanf:"dir"`
}

// CoverConfig holds cover resolution settings.
type CoverConfig struct {
	OpenLibraryURL string        `koanf:"openlibrary_url"`
	GoogleBooksURL string        `koanf:"google_books_url"`
	Timeout        time.Duration `koanf:"timeout"`
	MaxBodyBytes   int64         `koanf:"max_body_bytes"`
	MinImageSide   int           `koanf:"min_image_side"`
	UserAgent      string        `koanf:"user_agent"`
	RatePerSecond  float64       `koanf:"rate_per_second"`
	RateBurst      int           `koanf:"rate_burst"`
	CacheSize      int           `koanf:"cache_size"`
	// CachePolicy is "lru" or "fifo".
	CachePolicy string             `koanf:"cache_policy"`
	Breaker     CoverBreakerConfig `koanf:"breaker"`
	Warmup      CoverWarmupConfig  `koanf:"warmup"`
}

// CoverWarmupConfig controls resolving popular-list covers at start-up.
type CoverWarmupConfig struct {
	Enabled     bool `koanf:"enabled"`
	Concurrency int  `koanf:"concurrency"`
}

// CoverBreakerConfig tunes the per-source circuit breakers.
type CoverBreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// RecommendConfig holds recommendation request limits.
type RecommendConfig struct {
	DefaultK     int `koanf:"default_k"`
	MaxK         int `koanf:"max_k"`
	PopularLimit int `koanf:"popular_limit"`
}

// SecurityConfig holds HTTP-facing protections.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	// Level: trace, debug, info, warn, error.
	Level string `koanf:"level"`
	// Format: json or console.
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load loads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
