// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package cover

import (
	"context"
	"image"
)

// Request is the metadata a cover is resolved from. It is also the cache key,
// so two requests share a cache entry only when all four fields match.
type Request struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn,omitempty"`
	FallbackURL string `json:"fallback_url,omitempty"`
}

// Source names the stage that produced a cover.
type Source string

// Stages in resolution order.
const (
	SourceISBN        Source = "isbn"
	SourceSearch      Source = "search"
	SourceFallbackURL Source = "fallback_url"
	SourcePlaceholder Source = "placeholder"
)

// Cover is a resolved image. Image is never nil.
type Cover struct {
	Image  image.Image
	Source Source
}

// MissReason explains why a stage produced no image.
type MissReason string

// Miss reasons.
const (
	MissNone        MissReason = ""
	MissSkipped     MissReason = "skipped"
	MissNetwork     MissReason = "network"
	MissTimeout     MissReason = "timeout"
	MissStatus      MissReason = "status"
	MissTooLarge    MissReason = "too_large"
	MissDecode      MissReason = "decode"
	MissTooSmall    MissReason = "too_small"
	MissNoResult    MissReason = "no_result"
	MissCircuitOpen MissReason = "circuit_open"
)

// Outcome is the result of one stage: an image or a miss reason.
type Outcome struct {
	Image image.Image
	Miss  MissReason
}

// OK reports whether the stage produced an image.
func (o Outcome) OK() bool {
	return o.Image != nil && o.Miss == MissNone
}

// Hit wraps a successful image.
func Hit(img image.Image) Outcome {
	return Outcome{Image: img}
}

// Missed builds a miss outcome.
func Missed(reason MissReason) Outcome {
	return Outcome{Miss: reason}
}

// Strategy is one stage of the resolution chain.
type Strategy interface {
	Source() Source
	Resolve(ctx context.Context, req Request) Outcome
}
