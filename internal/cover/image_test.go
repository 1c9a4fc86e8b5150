// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package cover

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	return img
}

func pngBytes(t testing.TB, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(w, h)); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	var jpg, gf bytes.Buffer
	if err := jpeg.Encode(&jpg, solid(40, 60), nil); err != nil {
		t.Fatal(err)
	}
	if err := gif.Encode(&gf, solid(10, 10), nil); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		body       []byte
		wantFormat string
		wantMiss   MissReason
	}{
		{"png", pngBytes(t, 20, 30), "png", MissNone},
		{"jpeg", jpg.Bytes(), "jpeg", MissNone},
		{"gif", gf.Bytes(), "gif", MissNone},
		{"one pixel", pngBytes(t, 1, 1), "png", MissTooSmall},
		{"thin strip", pngBytes(t, 100, 1), "png", MissTooSmall},
		{"garbage", []byte("<html>not an image</html>"), "", MissDecode},
		{"empty", nil, "", MissDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, format, miss := decodeImage(tt.body, 2)
			if miss != tt.wantMiss {
				t.Errorf("miss = %q, want %q", miss, tt.wantMiss)
			}
			if format != tt.wantFormat {
				t.Errorf("format = %q, want %q", format, tt.wantFormat)
			}
			if (miss == MissNone) != (img != nil) {
				t.Errorf("image presence mismatch: img=%v miss=%q", img != nil, miss)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatPNG, false},
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"jpeg", FormatJPEG, false},
		{"jpg", FormatJPEG, false},
		{"webp", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestEncode(t *testing.T) {
	src := solid(20, 30)

	for _, f := range []Format{FormatPNG, FormatJPEG} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			img, format, err := image.Decode(&buf)
			if err != nil {
				t.Fatalf("decode round trip: %v", err)
			}
			if format != string(f) {
				t.Errorf("format = %q, want %q", format, f)
			}
			if img.Bounds() != src.Bounds() {
				t.Errorf("bounds = %v, want %v", img.Bounds(), src.Bounds())
			}
		})
	}

	if err := Encode(&bytes.Buffer{}, src, Format("bmp")); err == nil {
		t.Error("Encode() accepted unsupported format")
	}
	if FormatJPEG.ContentType() != "image/jpeg" || FormatPNG.ContentType() != "image/png" {
		t.Error("ContentType() mismatch")
	}
}
