// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

// Package services provides suture.Service wrappers for Folio components.
//
//   - HTTPServerService: runs an *http.Server and shuts it down gracefully on
//     context cancellation.
//   - CoverWarmupService: resolves the popular list's covers once at start-up
//     with bounded concurrency, then returns suture.ErrDoNotRestart.
//
// Every wrapper implements fmt.Stringer so suture events name the service.
package services
