// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/folio/internal/models"
)

// Health handles GET /api/v1/health. The service is "degraded" while any
// cover source breaker is open.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	titles := len(h.recs.Titles())

	breakers := make(map[string]string)
	status := "healthy"
	for src, state := range h.covers.BreakerStates() {
		breakers[string(src)] = state
		if state == "open" {
			status = "degraded"
		}
	}
	if titles == 0 {
		status = "unhealthy"
	}

	stats := h.covers.CacheStats()
	health := models.HealthStatus{
		Status:       status,
		Version:      h.version,
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
		Books:        h.recs.BookCount(),
		Titles:       titles,
		Breakers:     breakers,
		CacheSize:    stats.Size,
		CacheHitRate: stats.HitRate(),
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 until the similarity index holds at least one title.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	titles := len(h.recs.Titles())
	ready := titles > 0

	if !ready {
		respondError(w, http.StatusServiceUnavailable, CodeNotReady, "similarity index is empty", nil)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready_to_serve": true,
			"titles":         titles,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
