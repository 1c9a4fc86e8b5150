// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package cover

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Format is an output encoding for cover images.
type Format string

// Output formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// JPEGQuality is used when encoding FormatJPEG.
const JPEGQuality = 90

// ParseFormat maps a query value to a Format. "" and "jpg" are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("unsupported image format %q", s)
	}
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatPNG, "":
		return png.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", f)
	}
}

// decodeImage decodes body with any registered decoder (JPEG, PNG, GIF, WebP,
// BMP, TIFF) and rejects images smaller than minSide in either dimension.
func decodeImage(body []byte, minSide int) (image.Image, string, MissReason) {
	img, format, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, "", MissDecode
	}
	b := img.Bounds()
	if b.Dx() < minSide || b.Dy() < minSide || b.Empty() {
		return nil, format, MissTooSmall
	}
	return img, format, MissNone
}
