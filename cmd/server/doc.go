// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package main is the entry point for the Folio server.

Folio serves item-item book recommendations from a precomputed similarity
matrix and resolves cover images through a chain of remote sources with a
generated placeholder as the last resort.

# Application Architecture

The server runs under Suture v4 supervision:

	RootSupervisor ("folio")
	├── BackgroundSupervisor ("background-layer")
	│   └── Cover warmup (optional, one-shot)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional YAML file, environment
 2. Logging: zerolog with the configured level and format
 3. Catalog: books.json, index.json, similarity.json, popular.json from DATA_DIR
 4. Recommender: similarity lookups over the loaded snapshot
 5. Cover resolver: source chain, circuit breakers, bounded cache
 6. HTTP router: Chi with CORS, rate limiting, request IDs, metrics
 7. Supervisor tree: started and blocked on until a signal arrives

Catalog load failures are fatal. A server with no recommendations to make
should not report itself ready.

# Endpoints

	GET /api/v1/books/popular              top-rated titles
	GET /api/v1/books/titles               titles known to the similarity index
	GET /api/v1/recommendations/similar    ?title=&k=
	GET /api/v1/covers                     ?title=&author=&isbn=&format=
	GET /api/v1/health                     status, breakers, cache size
	GET /api/v1/health/live                liveness
	GET /api/v1/health/ready               readiness
	GET /metrics                           Prometheus

# Signal Handling

SIGINT and SIGTERM cancel the root context. The supervisor stops services in
reverse order and waits up to SHUTDOWN_TIMEOUT. Services that fail to stop in
time are logged and the process exits with status 1.

# Configuration

See package config for the full list of environment variables. The common ones:

	DATA_DIR=/data
	HTTP_PORT=8501
	COVER_TIMEOUT=10s
	COVER_CACHE_SIZE=1000
	LOG_LEVEL=info
	LOG_FORMAT=json
*/
package main
