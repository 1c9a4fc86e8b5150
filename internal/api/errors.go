// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package api

// Error codes used in APIError responses.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeRateLimited = "RATE_LIMIT_EXCEEDED"
	CodeInternal    = "INTERNAL_ERROR"
	CodeNotReady    = "NOT_READY"
)

// MsgNoRecommendations is shown when the chosen title has no similarity row.
const MsgNoRecommendations = "could not generate recommendations, try another selection"
