// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tomtom215/folio/internal/cover"
	"github.com/tomtom215/folio/internal/logging"
)

// CoverSourceHeader names the resolution stage that produced the image.
const CoverSourceHeader = "X-Cover-Source"

// coverCacheControl applies to every cover answer; covers are immutable per query.
const coverCacheControl = "public, max-age=86400"

// CoverRequest holds the validated cover query. There is no image URL
// parameter: the fallback stage only fetches the catalog's own image URL.
type CoverRequest struct {
	Title  string `validate:"max=512,nocontrol"`
	Author string `validate:"max=512,nocontrol"`
	ISBN   string `validate:"max=64,nocontrol"`
	Format string `validate:"omitempty,oneof=png jpeg jpg"`
}

type encodedKey struct {
	req    cover.Request
	format cover.Format
}

type encodedCover struct {
	data   []byte
	etag   string
	source cover.Source
}

// Cover handles GET /api/v1/covers.
//
// Query: title, author, isbn, format (png or jpeg). The answer is always an
// image; when no source yields one a placeholder is rendered. A title found in
// the catalog contributes its image URL to the fallback stage and fills an
// absent author or ISBN.
func (h *Handler) Cover(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := CoverRequest{
		Title:  q.Get("title"),
		Author: q.Get("author"),
		ISBN:   q.Get("isbn"),
		Format: q.Get("format"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	format, err := cover.ParseFormat(req.Format)
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	key := encodedKey{req: h.coverRequest(req), format: format}

	enc, err := h.encoded.GetOrLoad(key, func() (encodedCover, error) {
		c := h.covers.Resolve(r.Context(), key.req)
		var buf bytes.Buffer
		if err := cover.Encode(&buf, c.Image, format); err != nil {
			return encodedCover{}, fmt.Errorf("encode %s cover: %w", format, err)
		}
		data := buf.Bytes()
		return encodedCover{data: data, etag: generateETag(data), source: c.Source}, nil
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, CodeInternal, "Failed to encode cover", err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("title", sanitizeLogValue(req.Title)).
		Str("source", string(enc.source)).
		Int("bytes", len(enc.data)).
		Msg("cover served")

	w.Header().Set(CoverSourceHeader, string(enc.source))
	w.Header().Set("Cache-Control", coverCacheControl)
	w.Header().Set("ETag", enc.etag)
	if match := r.Header.Get("If-None-Match"); match != "" && match == enc.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(enc.data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(enc.data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("cover write aborted")
	}
}

// coverRequest builds the resolver input, taking the image URL hint from the
// catalog only.
func (h *Handler) coverRequest(req CoverRequest) cover.Request {
	cr := cover.Request{Title: req.Title, Author: req.Author, ISBN: req.ISBN}
	b, ok := h.recs.Book(req.Title)
	if !ok {
		return cr
	}
	cr.FallbackURL = b.ImageURL
	if cr.Author == "" {
		cr.Author = b.Author
	}
	if cr.ISBN == "" {
		cr.ISBN = b.ISBN
	}
	return cr
}
