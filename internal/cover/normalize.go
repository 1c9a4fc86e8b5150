// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package cover

import (
	"strings"
	"unicode"
)

// Sanitize keeps letters, digits, space, '-' and '_' and trims the result.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// ISBNDigits strips everything but ASCII digits. An ISBN-10 check character
// 'X' is dropped along with hyphens and spaces.
func ISBNDigits(isbn string) string {
	var b strings.Builder
	for _, r := range isbn {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ISBN13 converts a valid ISBN-10 or ISBN-13 (hyphens and spaces allowed) to
// its 13-digit form. It returns "" when isbn is not a valid ISBN.
func ISBN13(isbn string) string {
	s := strings.ToUpper(strings.NewReplacer("-", "", " ", "").Replace(isbn))
	switch len(s) {
	case 13:
		if !allDigits(s) || isbn13Check(s[:12]) != s[12] {
			return ""
		}
		return s
	case 10:
		if !allDigits(s[:9]) || isbn10Check(s[:9]) != s[9] {
			return ""
		}
		body := "978" + s[:9]
		return body + string(isbn13Check(body))
	default:
		return ""
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// isbn10Check computes the check character for nine digits.
func isbn10Check(nine string) byte {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(nine[i]-'0') * (10 - i)
	}
	c := (11 - sum%11) % 11
	if c == 10 {
		return 'X'
	}
	return byte('0' + c)
}

// isbn13Check computes the check digit for twelve digits.
func isbn13Check(twelve string) byte {
	sum := 0
	for i := 0; i < 12; i++ {
		d := int(twelve[i] - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return byte('0' + (10-sum%10)%10)
}

// SecureURL upgrades every "http://" in u to "https://".
func SecureURL(u string) string {
	return strings.ReplaceAll(u, "http://", "https://")
}

// ThumbnailURL normalizes a Google Books thumbnail link: https and the
// larger zoom=2 rendition.
func ThumbnailURL(u string) string {
	return strings.ReplaceAll(SecureURL(u), "zoom=1", "zoom=2")
}
