// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package placeholder

import (
	"image"
	"image/color"
	"strings"
	"unicode/utf8"
)

// Canvas geometry.
const (
	Width  = 200
	Height = 300

	// LineWidth is the packing limit for title lines, in characters.
	LineWidth = 20
	// MaxTitleLines is the number of wrapped title lines that are drawn.
	MaxTitleLines = 3

	centerX      = 100
	titleTop     = 50
	titleSpacing = 25
	authorY      = 200
	statusY      = 250

	// StatusText is drawn on every placeholder.
	StatusText = "Cover Not Available"
)

// Palette.
var (
	Background  = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	TitleColor  = color.RGBA{A: 255}
	AuthorColor = color.RGBA{B: 139, A: 255}
	StatusColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	BorderColor = color.RGBA{R: 211, G: 211, B: 211, A: 255}
)

// Border is the outline rectangle, inclusive of both corners.
var Border = image.Rect(5, 5, 195, 295)

// BorderWidth is the outline thickness in pixels, drawn inward.
const BorderWidth = 2

// TextLine is one line of centered text. Y is the vertical center.
type TextLine struct {
	Text  string
	X, Y  int
	Color color.RGBA
}

// WrapTitle splits title on whitespace and packs words greedily: a word joins
// the current line while the line so far (words plus their trailing spaces)
// and the word together are at most width characters. Lines are trimmed.
//
// A first word longer than width yields a leading empty line, since the empty
// line is closed before the word starts a new one.
func WrapTitle(title string, width int) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(title) {
		if utf8.RuneCountInString(current+word) <= width {
			current += word + " "
			continue
		}
		lines = append(lines, strings.TrimSpace(current))
		current = word + " "
	}
	if current != "" {
		lines = append(lines, strings.TrimSpace(current))
	}
	return lines
}

// Layout returns the text lines drawn for (title, author), in draw order.
func Layout(title, author string) []TextLine {
	wrapped := WrapTitle(title, LineWidth)
	if len(wrapped) > MaxTitleLines {
		wrapped = wrapped[:MaxTitleLines]
	}

	lines := make([]TextLine, 0, len(wrapped)+2)
	y := titleTop
	for _, l := range wrapped {
		lines = append(lines, TextLine{Text: l, X: centerX, Y: y, Color: TitleColor})
		y += titleSpacing
	}

	if author != "" {
		lines = append(lines, TextLine{Text: "by " + author, X: centerX, Y: authorY, Color: AuthorColor})
	}
	lines = append(lines, TextLine{Text: StatusText, X: centerX, Y: statusY, Color: StatusColor})
	return lines
}
