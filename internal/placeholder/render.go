// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package placeholder

import (
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/tomtom215/folio/internal/logging"
)

// FontSize is the point size of all placeholder text at 72 DPI.
const FontSize = 14

var (
	fontOnce sync.Once
	goFont   *opentype.Font
)

// newFace returns a fresh Go Regular face, or basicfont when that fails.
// opentype faces are not safe for concurrent use, so each render gets its own.
func newFace() font.Face {
	fontOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			logging.Warn().Err(err).Str("component", "placeholder").Msg("Go Regular unavailable, using basic font")
			return
		}
		goFont = f
	})
	if goFont == nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(goFont, &opentype.FaceOptions{
		Size:    FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// Make renders the placeholder for title and author. It never fails: a panic
// while drawing yields a blank canvas of the same size.
func Make(title, author string) *image.RGBA {
	face := newFace()
	defer func() { _ = face.Close() }()
	return MakeWithFace(title, author, face)
}

// MakeWithFace renders with a caller-supplied face.
func MakeWithFace(title, author string, face font.Face) (img *image.RGBA) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error().Interface("panic", r).Str("component", "placeholder").Msg("placeholder render failed")
			img = blank()
		}
	}()

	img = blank()
	for _, line := range Layout(title, author) {
		drawCentered(img, face, line)
	}
	drawBorder(img)
	return img
}

func blank() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	return img
}

// drawCentered places line so its advance is centered on X and its
// ascent/descent box is centered on Y.
func drawCentered(dst draw.Image, face font.Face, line TextLine) {
	if line.Text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(line.Color),
		Face: face,
	}
	m := face.Metrics()
	advance := d.MeasureString(line.Text)

	x := fixed.I(line.X) - advance/2
	baseline := fixed.I(line.Y) + (m.Ascent-m.Descent)/2
	d.Dot = fixed.Point26_6{X: x, Y: baseline}
	d.DrawString(line.Text)
}

// drawBorder strokes Border inward by BorderWidth pixels. Border corners are inclusive.
func drawBorder(dst *image.RGBA) {
	src := image.NewUniform(BorderColor)
	minX, minY := Border.Min.X, Border.Min.Y
	maxX, maxY := Border.Max.X+1, Border.Max.Y+1

	edges := []image.Rectangle{
		image.Rect(minX, minY, maxX, minY+BorderWidth),
		image.Rect(minX, maxY-BorderWidth, maxX, maxY),
		image.Rect(minX, minY, minX+BorderWidth, maxY),
		image.Rect(maxX-BorderWidth, minY, maxX, maxY),
	}
	for _, r := range edges {
		draw.Draw(dst, r, src, image.Point{}, draw.Src)
	}
}
