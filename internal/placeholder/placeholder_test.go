// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package placeholder

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func TestWrapTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{
			name:  "long title",
			title: "The Great Adventure of Many Words Indeed",
			want:  []string{"The Great Adventure", "of Many Words Indeed"},
		},
		{
			name:  "short title",
			title: "Dune",
			want:  []string{"Dune"},
		},
		{
			name:  "empty",
			title: "",
			want:  nil,
		},
		{
			name:  "collapses whitespace",
			title: "  A   Tale\tof  Two\nCities ",
			want:  []string{"A Tale of Two Cities"},
		},
		{
			name:  "oversized first word leaves empty first line",
			title: "Supercalifragilisticexpialidocious Tales",
			want:  []string{"", "Supercalifragilisticexpialidocious", "Tales"},
		},
		{
			name:  "counts characters not bytes",
			title: "Ébène Ébène Ébène Ébène",
			want:  []string{"Ébène Ébène Ébène", "Ébène"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapTitle(tt.title, LineWidth)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("WrapTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestLayout_LongTitleNoAuthor(t *testing.T) {
	lines := Layout("The Great Adventure of Many Words Indeed", "")

	var title []TextLine
	for _, l := range lines {
		if l.Color == TitleColor {
			title = append(title, l)
		}
		if strings.HasPrefix(l.Text, "by ") {
			t.Errorf("author line present for empty author: %+v", l)
		}
	}
	if len(title) == 0 || len(title) > MaxTitleLines {
		t.Fatalf("got %d title lines, want 1..%d", len(title), MaxTitleLines)
	}
	for i, l := range title {
		if utf8.RuneCountInString(l.Text) > LineWidth {
			t.Errorf("title line %q longer than %d", l.Text, LineWidth)
		}
		if l.Y != 50+25*i || l.X != 100 {
			t.Errorf("title line %d at (%d,%d), want (100,%d)", i, l.X, l.Y, 50+25*i)
		}
	}

	last := lines[len(lines)-1]
	if last.Text != StatusText || last.Y != 250 || last.Color != StatusColor {
		t.Errorf("status line = %+v", last)
	}
}

func TestLayout_TruncatesToThreeLines(t *testing.T) {
	lines := Layout(strings.Repeat("wordy title text ", 10), "Ann Author")

	titleLines := 0
	for _, l := range lines {
		if l.Color == TitleColor {
			titleLines++
		}
	}
	if titleLines != MaxTitleLines {
		t.Errorf("got %d title lines, want %d", titleLines, MaxTitleLines)
	}

	author := lines[len(lines)-2]
	if author.Text != "by Ann Author" || author.Y != 200 || author.Color != AuthorColor {
		t.Errorf("author line = %+v", author)
	}
}

func TestMake_Size(t *testing.T) {
	img := Make("Dune", "Frank Herbert")
	if got := img.Bounds(); got != image.Rect(0, 0, Width, Height) {
		t.Errorf("Make() bounds = %v, want 200x300", got)
	}
}

func TestMake_Deterministic(t *testing.T) {
	a := Make("The Great Adventure of Many Words Indeed", "")
	b := Make("The Great Adventure of Many Words Indeed", "")
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Make() is not deterministic for identical inputs")
	}

	c := Make("A Different Book", "")
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("Make() produced identical pixels for different titles")
	}
}

func TestMake_BackgroundAndBorder(t *testing.T) {
	img := Make("", "")

	checks := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"corner background", 0, 0, Background},
		{"outside border", 4, 4, Background},
		{"border top-left", 5, 5, BorderColor},
		{"border inner top-left", 6, 6, BorderColor},
		{"inside border", 7, 7, Background},
		{"border bottom-right", 195, 295, BorderColor},
		{"border inner bottom-right", 194, 294, BorderColor},
		{"right of border", 196, 150, Background},
		{"left edge middle", 5, 150, BorderColor},
		{"canvas middle", 100, 130, Background},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Errorf("%s (%d,%d) = %v, want %v", c.name, c.x, c.y, got, c.want)
		}
	}
}

func TestMake_DrawsStatusText(t *testing.T) {
	img := Make("", "")

	// Some pixel in the status band must be neither background nor border.
	found := false
	for y := 240; y <= 260 && !found; y++ {
		for x := 20; x <= 180; x++ {
			if p := img.RGBAAt(x, y); p != Background {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("status line was not drawn")
	}
}

func TestMakeWithFace_BasicFallback(t *testing.T) {
	img := MakeWithFace("Dune", "Frank Herbert", basicfont.Face7x13)
	if img.Bounds().Dx() != Width || img.Bounds().Dy() != Height {
		t.Fatalf("bounds = %v", img.Bounds())
	}

	found := false
	for x := 20; x <= 180 && !found; x++ {
		if img.RGBAAt(x, 200) != Background {
			found = true
		}
	}
	if !found {
		t.Error("author line not drawn with basic font")
	}
}

// panicFace fails every glyph lookup.
type panicFace struct{ font.Face }

func (panicFace) Metrics() font.Metrics {
	return font.Metrics{Ascent: fixed.I(10), Descent: fixed.I(3)}
}

func (panicFace) GlyphAdvance(rune) (fixed.Int26_6, bool) { panic("broken face") }

func TestMakeWithFace_RecoversPanic(t *testing.T) {
	img := MakeWithFace("Dune", "Frank Herbert", panicFace{})
	if img == nil {
		t.Fatal("MakeWithFace() = nil after panic")
	}
	if img.Bounds() != image.Rect(0, 0, Width, Height) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if img.RGBAAt(5, 5) != Background {
		t.Error("expected blank canvas after recovered panic")
	}
}

func BenchmarkMake(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Make("The Great Adventure of Many Words Indeed", "Ann Author")
	}
}
