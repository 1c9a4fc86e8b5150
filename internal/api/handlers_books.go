// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tomtom215/folio/internal/catalog"
	"github.com/tomtom215/folio/internal/logging"
	"github.com/tomtom215/folio/internal/models"
	"github.com/tomtom215/folio/internal/recommend"
)

// CoverPath is the route serving cover images.
const CoverPath = "/api/v1/covers"

// SimilarRequest holds the validated query of the similar endpoint.
type SimilarRequest struct {
	Title string `validate:"required,max=512,nocontrol"`
	K     int    `validate:"gte=1"`
}

// PopularRequest holds the validated query of the popular endpoint.
type PopularRequest struct {
	Limit int `validate:"gte=1"`
}

// coverURL links a book to the cover endpoint. The cover handler looks the
// title up again for the catalog image URL.
func coverURL(b catalog.Book) string {
	v := url.Values{}
	v.Set("title", b.Title)
	if b.Author != "" {
		v.Set("author", b.Author)
	}
	if b.ISBN != "" {
		v.Set("isbn", b.ISBN)
	}
	return CoverPath + "?" + v.Encode()
}

func bookCard(b catalog.Book) models.BookCard {
	return models.BookCard{
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Publisher:   b.Publisher,
		Year:        b.Year,
		CoverURL:    coverURL(b),
		Rating:      b.Rating,
		RatingCount: b.RatingCount,
	}
}

// exceedsMax builds the VALIDATION_ERROR for a parameter above its configured cap.
func exceedsMax(field string, max int) *models.APIError {
	return &models.APIError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("%s must be at most %d", field, max),
		Details: map[string]interface{}{
			"field": field,
			"tag":   "max",
		},
	}
}

// Popular handles GET /api/v1/books/popular.
//
// Query: limit (optional, 1..RECOMMEND_POPULAR_LIMIT).
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	cfg := h.recs.Config()

	limit, apiErr := parseIntParam(r, "limit", cfg.PopularLimit)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	req := PopularRequest{Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	if req.Limit > cfg.PopularLimit {
		respondAPIError(w, http.StatusBadRequest, exceedsMax("limit", cfg.PopularLimit))
		return
	}

	books := h.recs.Popular(r.Context(), req.Limit)
	cards := make([]models.BookCard, 0, len(books))
	for _, b := range books {
		card := bookCard(b)
		card.Caption = models.RatingCaption(b.Rating, b.RatingCount)
		cards = append(cards, card)
	}

	respondSuccess(w, cards, len(cards), start)
}

// Titles handles GET /api/v1/books/titles.
func (h *Handler) Titles(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	titles := h.recs.Titles()
	respondSuccess(w, models.TitleList{Titles: titles}, len(titles), start)
}

// Similar handles GET /api/v1/recommendations/similar.
//
// Query: title (required), k (optional, 1..RECOMMEND_MAX_K). An unknown title
// answers 404 with a message suitable for display.
func (h *Handler) Similar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	cfg := h.recs.Config()

	k, apiErr := parseIntParam(r, "k", cfg.DefaultK)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	req := SimilarRequest{Title: r.URL.Query().Get("title"), K: k}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	if req.K > cfg.MaxK {
		respondAPIError(w, http.StatusBadRequest, exceedsMax("k", cfg.MaxK))
		return
	}

	recs, err := h.recs.Similar(r.Context(), req.Title, req.K)
	if err != nil {
		if errors.Is(err, recommend.ErrNotFound) {
			logging.Ctx(r.Context()).Info().
				Str("title", sanitizeLogValue(req.Title)).
				Msg("no recommendations for title")
			respondError(w, http.StatusNotFound, CodeNotFound, MsgNoRecommendations, nil)
			return
		}
		respondError(w, http.StatusInternalServerError, CodeInternal, "Failed to compute recommendations", err)
		return
	}

	cards := make([]models.SimilarBookCard, 0, len(recs))
	for _, rec := range recs {
		pct := recommend.Percent(rec.Score)
		card := models.SimilarBookCard{
			BookCard: bookCard(rec.Book),
			Score:    rec.Score,
			Fraction: recommend.DisplayFraction(rec.Score),
			Percent:  pct,
		}
		card.Caption = models.SimilarityCaption(pct)
		cards = append(cards, card)
	}

	respondSuccess(w, cards, len(cards), start)
}
