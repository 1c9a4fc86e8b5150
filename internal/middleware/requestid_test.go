// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/folio/internal/logging"
)

func TestRequestID_GeneratesNewID(t *testing.T) {
	var ctxID, corrID string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		ctxID = logging.RequestIDFromContext(r.Context())
		corrID = logging.CorrelationIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	header := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(header); err != nil {
		t.Errorf("X-Request-ID %q is not a UUID: %v", header, err)
	}
	if ctxID != header {
		t.Errorf("context ID = %q, header = %q", ctxID, header)
	}
	if len(corrID) != 8 {
		t.Errorf("correlation ID = %q, want 8 chars", corrID)
	}
}

func TestRequestID_ReusesUpstreamID(t *testing.T) {
	var ctxID string
	handler := RequestID(func(w http.ResponseWriter, r *http.Request) {
		ctxID = logging.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "proxy-123")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if ctxID != "proxy-123" || rec.Header().Get(RequestIDHeader) != "proxy-123" {
		t.Errorf("upstream ID not propagated: ctx=%q header=%q", ctxID, rec.Header().Get(RequestIDHeader))
	}
}

func TestRequestID_RejectsOversizedUpstreamID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLen+1))
	rec := httptest.NewRecorder()

	RequestID(func(http.ResponseWriter, *http.Request) {})(rec, req)

	if got := rec.Header().Get(RequestIDHeader); len(got) > maxRequestIDLen {
		t.Errorf("oversized upstream ID echoed back (%d chars)", len(got))
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	handler := RequestID(func(http.ResponseWriter, *http.Request) {})
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(RequestIDHeader)
		if seen[id] {
			t.Fatalf("duplicate request ID %q", id)
		}
		seen[id] = true
	}
}
