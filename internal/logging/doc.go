// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

// Package logging provides centralized zerolog-based structured logging for Folio.
//
// JSON output is the production default; console output is available for
// development. A single global logger is configured once from main and
// shared by every component.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Error().Err(err).Msg("Artifact load failed")
//
//	// Context-aware logging picks up request and correlation IDs
//	logging.Ctx(ctx).Debug().Str("stage", "isbn").Msg("cover miss")
//
// # Configuration
//
// Environment variables (mapped by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Components
//
// Components take a child logger tagged with their name:
//
//	logger := logging.WithComponent("cover")
//
// # Suture Integration
//
// The supervisor tree logs through slog. NewSlogLogger bridges slog records
// into the zerolog stream:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
package logging
