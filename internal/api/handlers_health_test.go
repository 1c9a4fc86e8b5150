// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package api

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/folio/internal/cover"
	"github.com/tomtom215/folio/internal/models"
	"github.com/tomtom215/folio/internal/recommend"
)

func TestHealth(t *testing.T) {
	h, covers := newTestHandler(t)

	rec := get(h.Health, "/api/v1/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var status models.HealthStatus
	if err := json.Unmarshal(decodeEnvelope(t, rec.Body).Data, &status); err != nil {
		t.Fatal(err)
	}
	if status.Status != "healthy" || status.Version != "test" || status.Books != 3 || status.Titles != 4 {
		t.Errorf("health = %+v", status)
	}
	if len(status.Breakers) != 2 {
		t.Errorf("breakers = %v", status.Breakers)
	}
	if status.CacheHitRate != 75 {
		t.Errorf("cover_cache_hit_rate = %v, want 75", status.CacheHitRate)
	}

	covers.mu.Lock()
	covers.breakers = map[cover.Source]string{cover.SourceSearch: "open"}
	covers.mu.Unlock()

	rec = get(h.Health, "/api/v1/health")
	if err := json.Unmarshal(decodeEnvelope(t, rec.Body).Data, &status); err != nil {
		t.Fatal(err)
	}
	if status.Status != "degraded" || status.Breakers["search"] != "open" {
		t.Errorf("health with open breaker = %+v", status)
	}
}

func TestHealthLive(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := get(h.HealthLive, "/api/v1/health/live")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestHealthReady(t *testing.T) {
	h, _ := newTestHandler(t)
	if rec := get(h.HealthReady, "/api/v1/health/ready"); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	empty := recommend.NewRecommender(testSnapshot(t, nil, nil, nil), recommend.DefaultConfig(), zerolog.Nop())
	h = NewHandler(empty, &stubCovers{})

	rec := get(h.HealthReady, "/api/v1/health/ready")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if env := decodeEnvelope(t, rec.Body); env.Error == nil || env.Error.Code != CodeNotReady {
		t.Errorf("error = %+v", env.Error)
	}
}
