// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package services

import (
	"context"
	"errors"
	"image"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/folio/internal/catalog"
	"github.com/tomtom215/folio/internal/cover"
)

// mockResolver records requests and tracks peak concurrency.
type mockResolver struct {
	delay time.Duration

	mu       sync.Mutex
	requests []cover.Request

	active atomic.Int32
	peak   atomic.Int32
}

func (m *mockResolver) Resolve(_ context.Context, req cover.Request) cover.Cover {
	n := m.active.Add(1)
	defer m.active.Add(-1)
	for {
		p := m.peak.Load()
		if n <= p || m.peak.CompareAndSwap(p, n) {
			break
		}
	}

	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	src := cover.SourcePlaceholder
	if req.ISBN != "" {
		src = cover.SourceISBN
	}
	return cover.Cover{Image: image.NewRGBA(image.Rect(0, 0, 1, 1)), Source: src}
}

func (m *mockResolver) seen() []cover.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]cover.Request, len(m.requests))
	copy(out, m.requests)
	return out
}

func warmupBooks(n int) []catalog.Book {
	books := make([]catalog.Book, n)
	for i := range books {
		books[i] = catalog.Book{Title: string(rune('A' + i)), Author: "Author"}
	}
	books[0].ISBN = "0441013597"
	books[0].ImageURL = "http://img.example/a.jpg"
	return books
}

func TestCoverWarmupService_String(t *testing.T) {
	svc := NewCoverWarmupService(&mockResolver{}, nil, CoverWarmupConfig{}, zerolog.Nop())
	if got := svc.String(); got != "cover-warmup-service" {
		t.Errorf("String() = %q, want %q", got, "cover-warmup-service")
	}
	if svc.config.Concurrency != 4 {
		t.Errorf("default concurrency = %d, want 4", svc.config.Concurrency)
	}
}

func TestCoverWarmupService_ResolvesEveryBookOnce(t *testing.T) {
	resolver := &mockResolver{}
	books := warmupBooks(6)
	svc := NewCoverWarmupService(resolver, books, CoverWarmupConfig{Concurrency: 2}, zerolog.Nop())

	err := svc.Serve(context.Background())
	if !errors.Is(err, suture.ErrDoNotRestart) {
		t.Fatalf("Serve() = %v, want ErrDoNotRestart", err)
	}

	seen := resolver.seen()
	if len(seen) != len(books) {
		t.Fatalf("resolved %d books, want %d", len(seen), len(books))
	}
	found := false
	for _, req := range seen {
		if req.Title == "A" {
			found = true
			if req.ISBN != "0441013597" || req.FallbackURL != "http://img.example/a.jpg" || req.Author != "Author" {
				t.Errorf("request for A = %+v", req)
			}
		}
	}
	if !found {
		t.Error("book A was not resolved")
	}
}

func TestCoverWarmupService_BoundsConcurrency(t *testing.T) {
	resolver := &mockResolver{delay: 20 * time.Millisecond}
	svc := NewCoverWarmupService(resolver, warmupBooks(8), CoverWarmupConfig{Concurrency: 2}, zerolog.Nop())

	_ = svc.Serve(context.Background())

	if peak := resolver.peak.Load(); peak > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak)
	}
}

func TestCoverWarmupService_ContextCancellation(t *testing.T) {
	resolver := &mockResolver{delay: 200 * time.Millisecond}
	svc := NewCoverWarmupService(resolver, warmupBooks(10), CoverWarmupConfig{Concurrency: 1}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 150*time.Millisecond {
		t.Errorf("Serve() took %v after cancellation", elapsed)
	}
}

func TestCoverWarmupService_EmptyList(t *testing.T) {
	svc := NewCoverWarmupService(&mockResolver{}, nil, CoverWarmupConfig{}, zerolog.Nop())
	if err := svc.Serve(context.Background()); !errors.Is(err, suture.ErrDoNotRestart) {
		t.Errorf("Serve() = %v, want ErrDoNotRestart", err)
	}
}
