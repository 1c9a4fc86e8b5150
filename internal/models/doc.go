// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

/*
Package models defines the JSON shapes of the HTTP API.

  - APIResponse, Metadata, APIError: the envelope shared by every JSON endpoint
  - BookCard, SimilarBookCard: book grid entries with cover links and captions
  - TitleList, HealthStatus: auxiliary responses

Domain types live with their packages (catalog.Book, recommend.Recommendation);
this package only holds what goes over the wire.
*/
package models
