// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package config provides centralized configuration management for Folio.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then mapped environment variables. The result is validated once and
treated as read-only.

# Configuration Files

The first existing file wins:
  - $CONFIG_PATH
  - config.yaml, config.yml
  - /etc/folio/config.yaml, /etc/folio/config.yml

Example:

	server:
	  port: 8501
	data:
	  dir: /data
	cover:
	  timeout: 10s
	  cache_size: 1000
	  cache_policy: lru
	logging:
	  level: debug
	  format: console

# Environment Variables

Server:
  - HTTP_PORT: Listen port (default: 8501)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development or production

Data:
  - DATA_DIR: Directory holding books.json, index.json, similarity.json, popular.json

Cover resolution:
  - OPENLIBRARY_URL: Open Library covers base (default: https://covers.openlibrary.org)
  - GOOGLE_BOOKS_URL: Google Books API base (default: https://www.googleapis.com)
  - COVER_TIMEOUT: Per-request timeout (default: 10s)
  - COVER_MAX_BODY_BYTES: Response size cap (default: 10 MiB)
  - COVER_MIN_IMAGE_SIDE: Smallest accepted image side (default: 2)
  - COVER_RATE_PER_SECOND, COVER_RATE_BURST: Per-source pacing
  - COVER_CACHE_SIZE: Cached covers (default: 1000)
  - COVER_CACHE_POLICY: lru or fifo
  - COVER_BREAKER_*: Circuit breaker tuning
  - COVER_WARMUP (default: true), COVER_WARMUP_CONCURRENCY (default: 4)

Recommendations:
  - RECOMMEND_DEFAULT_K (default: 5), RECOMMEND_MAX_K (default: 50)
  - RECOMMEND_POPULAR_LIMIT (default: 50)

Security:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: Comma-separated origins (default: *)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
