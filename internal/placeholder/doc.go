// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

// Package placeholder renders the stand-in cover used when no real cover
// image can be found.
//
// The image is 200x300 with a light gray background, up to three wrapped
// title lines, an optional "by {author}" line, a "Cover Not Available" status
// line and a 2px light gray border. Output is a pure function of
// (title, author): the same inputs always produce identical pixels.
//
// Text is set in Go Regular at 14pt (golang.org/x/image/font/gofont). If the
// face cannot be built, basicfont.Face7x13 is used at the same anchors.
package placeholder
