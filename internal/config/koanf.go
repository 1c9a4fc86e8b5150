// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
// The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/folio/config.yaml",
	"/etc/folio/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults, applied before file and env.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8501,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Data: DataConfig{
			Dir: "/data",
		},
		Cover: CoverConfig{
			OpenLibraryURL: "https://covers.openlibrary.org",
			GoogleBooksURL: "https://www.googleapis.com",
			Timeout:        10 * time.Second,
			MaxBodyBytes:   10 << 20, // 10 MiB
			MinImageSide:   2,
			UserAgent:      "Folio/1.0 (+https://github.com/tomtom215/folio)",
			RatePerSecond:  10,
			RateBurst:      5,
			CacheSize:      1000,
			CachePolicy:    "lru",
			Breaker: CoverBreakerConfig{
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      time.Minute,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
			Warmup: CoverWarmupConfig{
				Enabled:     true,
				Concurrency: 4,
			},
		},
		Recommend: RecommendConfig{
			DefaultK:     5,
			MaxK:         50,
			PopularLimit: 50,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration with layered sources:
//  1. Defaults
//  2. Config file (optional)
//  3. Environment variables (highest priority)
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// COVER_TIMEOUT -> cover.timeout, HTTP_PORT -> server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file found, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated strings to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Data
	"data_dir": "data.dir",

	// Cover resolution
	"openlibrary_url":             "cover.openlibrary_url",
	"google_books_url":            "cover.google_books_url",
	"cover_timeout":               "cover.timeout",
	"cover_max_body_bytes":        "cover.max_body_bytes",
	"cover_min_image_side":        "cover.min_image_side",
	"cover_user_agent":            "cover.user_agent",
	"cover_rate_per_second":       "cover.rate_per_second",
	"cover_rate_burst":            "cover.rate_burst",
	"cover_cache_size":            "cover.cache_size",
	"cover_cache_policy":          "cover.cache_policy",
	"cover_breaker_max_requests":  "cover.breaker.max_requests",
	"cover_breaker_interval":      "cover.breaker.interval",
	"cover_breaker_timeout":       "cover.breaker.timeout",
	"cover_breaker_min_requests":  "cover.breaker.min_requests",
	"cover_breaker_failure_ratio": "cover.breaker.failure_ratio",
	"cover_warmup":                "cover.warmup.enabled",
	"cover_warmup_concurrency":    "cover.warmup.concurrency",

	// Recommendations
	"recommend_default_k":     "recommend.default_k",
	"recommend_max_k":         "recommend.max_k",
	"recommend_popular_limit": "recommend.popular_limit",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DATA_DIR -> data.dir
//   - COVER_CACHE_SIZE -> cover.cache_size
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
