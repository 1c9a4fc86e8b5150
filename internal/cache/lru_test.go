// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package cache

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type bookKey struct {
	Title, Author, ISBN, FallbackURL string
}

func TestLRU_BasicOperations(t *testing.T) {
	c := New[string, int](3)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, found := c.Get(key)
		if !found {
			t.Errorf("Expected to find key %q", key)
		}
		if got != want {
			t.Errorf("Get(%q) = %d, want %d", key, got, want)
		}
	}

	if c.Len() != 3 {
		t.Errorf("Expected len 3, got %d", c.Len())
	}
}

func TestLRU_DefaultCapacity(t *testing.T) {
	c := New[string, int](0)
	if c.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", c.Capacity(), DefaultCapacity)
	}
}

func TestLRU_Eviction(t *testing.T) {
	c := New[string, int](3)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	// 'a' becomes most recently used, 'b' is now the victim
	c.Get("a")
	c.Add("d", 4)

	if c.Contains("b") {
		t.Error("Expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if !c.Contains(key) {
			t.Errorf("Expected %q to be present", key)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Expected 1 eviction, got %d", got)
	}
}

func TestLRU_FIFOPolicy(t *testing.T) {
	c := New[string, int](3, WithPolicy[string, int](PolicyFIFO))

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	// Under FIFO a read does not protect 'a'
	c.Get("a")
	c.Add("d", 4)

	if c.Contains("a") {
		t.Error("Expected 'a' to be evicted under FIFO")
	}
	if !c.Contains("b") {
		t.Error("Expected 'b' to be present under FIFO")
	}
}

func TestLRU_BoundNeverExceeded(t *testing.T) {
	c := New[int, int](10)
	for i := 0; i < 1000; i++ {
		c.Add(i, i)
		if c.Len() > 10 {
			t.Fatalf("Len() = %d after %d adds, exceeds capacity", c.Len(), i+1)
		}
	}
	keys := c.Keys()
	if len(keys) != 10 || keys[0] != 999 || keys[9] != 990 {
		t.Errorf("unexpected keys after fill: %v", keys)
	}
}

func TestLRU_StructKey(t *testing.T) {
	c := New[bookKey, string](10)

	k1 := bookKey{Title: "Dune", Author: "Frank Herbert"}
	k2 := bookKey{Title: "Dune", Author: "Frank Herbert", ISBN: "0441013597"}

	c.Add(k1, "first")
	c.Add(k2, "second")

	if v, _ := c.Get(k1); v != "first" {
		t.Errorf("Get(k1) = %q, want first", v)
	}
	if v, _ := c.Get(k2); v != "second" {
		t.Errorf("Get(k2) = %q, want second", v)
	}
}

func TestLRU_Remove(t *testing.T) {
	c := New[string, int](10)
	c.Add("a", 1)
	c.Add("b", 2)

	if !c.Remove("a") {
		t.Error("Expected Remove to return true for existing key")
	}
	if c.Remove("a") {
		t.Error("Expected Remove to return false for missing key")
	}
	if !c.Contains("b") {
		t.Error("Expected 'b' to still be present")
	}
}

func TestLRU_Clear(t *testing.T) {
	c := New[string, int](10)
	c.Add("a", 1)
	c.Add("b", 2)

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Expected empty cache after Clear, got len %d", c.Len())
	}
	if _, found := c.Get("a"); found {
		t.Error("Expected no items after Clear")
	}
	c.Add("c", 3)
	if !c.Contains("c") {
		t.Error("Cache should accept entries after Clear")
	}
}

func TestLRU_UpdateExisting(t *testing.T) {
	c := New[string, int](3)
	c.Add("a", 1)
	c.Add("a", 2)

	if c.Len() != 1 {
		t.Errorf("Expected len 1 after update, got %d", c.Len())
	}
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Expected updated value 2, got %d", v)
	}
}

func TestLRU_Stats(t *testing.T) {
	c := New[string, int](10)

	c.Add("a", 1)
	c.Get("a")        // hit
	c.Get("a")        // hit
	c.Get("nonexist") // miss

	s := c.Stats()
	if s.Hits != 2 {
		t.Errorf("Expected 2 hits, got %d", s.Hits)
	}
	if s.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", s.Misses)
	}
	if s.Size != 1 {
		t.Errorf("Expected size 1, got %d", s.Size)
	}
	if rate := s.HitRate(); rate < 66 || rate > 67 {
		t.Errorf("Expected hit rate ~66.7, got %f", rate)
	}
}

func TestLRU_EvictCallback(t *testing.T) {
	var evicted []string
	c := New[string, int](2, WithEvictCallback[string, int](func(k string, _ int) {
		evicted = append(evicted, k)
	}))

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	if len(evicted) != 1 || evicted[0] != "a" {
		t.Errorf("evicted = %v, want [a]", evicted)
	}
}

func TestLRU_GetOrLoad(t *testing.T) {
	c := New[string, int](10)

	calls := 0
	load := func() (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("answer", load)
		if err != nil {
			t.Fatalf("GetOrLoad() error = %v", err)
		}
		if v != 42 {
			t.Errorf("GetOrLoad() = %d, want 42", v)
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}
}

func TestLRU_GetOrLoad_ErrorNotCached(t *testing.T) {
	c := New[string, int](10)
	errBoom := errors.New("boom")

	if _, err := c.GetOrLoad("k", func() (int, error) { return 0, errBoom }); !errors.Is(err, errBoom) {
		t.Fatalf("GetOrLoad() error = %v, want %v", err, errBoom)
	}
	if c.Contains("k") {
		t.Error("failed load must not be cached")
	}

	v, err := c.GetOrLoad("k", func() (int, error) { return 7, nil })
	if err != nil || v != 7 {
		t.Errorf("GetOrLoad() = %d, %v; want 7, nil", v, err)
	}
}

func TestLRU_GetOrLoad_ConcurrentSingleLoad(t *testing.T) {
	c := New[bookKey, *int](10)
	key := bookKey{Title: "Emma", Author: "Jane Austen"}

	var loads atomic.Int32
	release := make(chan struct{})
	load := func() (*int, error) {
		loads.Add(1)
		<-release
		v := 1
		return &v, nil
	}

	const callers = 50
	results := make([]*int, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.GetOrLoad(key, load)
			if err != nil {
				t.Errorf("GetOrLoad() error = %v", err)
			}
			results[i] = v
		}(i)
	}

	// Let the goroutines pile onto the in-flight load
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	stored, _ := c.Get(key)
	for i, r := range results {
		if r != stored {
			t.Errorf("caller %d observed a different entry", i)
		}
	}
	if n := loads.Load(); n < 1 || n > 2 {
		t.Errorf("load ran %d times", n)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	c := New[string, int](100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (id+j)%200)
				c.Add(key, j)
				c.Get(key)
				c.Contains(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 100 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyLRU, false},
		{"lru", PolicyLRU, false},
		{"fifo", PolicyFIFO, false},
		{"random", PolicyLRU, true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if PolicyFIFO.String() != "fifo" || PolicyLRU.String() != "lru" {
		t.Error("Policy.String() mismatch")
	}
}

func BenchmarkLRU_Add(b *testing.B) {
	c := New[int, int](10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Add(i%20000, i)
	}
}

func BenchmarkLRU_Get(b *testing.B) {
	c := New[int, int](10000)
	for i := 0; i < 1000; i++ {
		c.Add(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(i % 1000)
	}
}

func TestLRU_Load_ReportsCached(t *testing.T) {
	c := New[string, int](10)
	load := func() (int, bool, error) { return 5, true, nil }

	v, cached, err := c.Load("k", load)
	if err != nil || v != 5 || cached {
		t.Fatalf("first Load() = %d, %v, %v; want 5, false, nil", v, cached, err)
	}
	v, cached, err = c.Load("k", load)
	if err != nil || v != 5 || !cached {
		t.Errorf("second Load() = %d, %v, %v; want 5, true, nil", v, cached, err)
	}
}

func TestLRU_Load_Unstored(t *testing.T) {
	c := New[string, int](10)

	calls := 0
	load := func() (int, bool, error) {
		calls++
		return calls, false, nil
	}

	for want := 1; want <= 2; want++ {
		v, cached, err := c.Load("k", load)
		if err != nil || cached || v != want {
			t.Errorf("Load() = %d, %v, %v; want %d, false, nil", v, cached, err, want)
		}
	}
	if c.Contains("k") || c.Len() != 0 {
		t.Error("value the loader declined to store was cached")
	}
}

func TestLRU_Load_WaitersAreNotCached(t *testing.T) {
	c := New[string, int](10)

	release := make(chan struct{})
	load := func() (int, bool, error) {
		<-release
		return 9, true, nil
	}

	const callers = 8
	var (
		wg        sync.WaitGroup
		cachedHit atomic.Int32
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, cached, _ := c.Load("k", load); cached {
				cachedHit.Add(1)
			}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := cachedHit.Load(); n != 0 {
		t.Errorf("%d callers sharing the first load reported cached", n)
	}
	if _, cached, _ := c.Load("k", load); !cached {
		t.Error("Load() after the flight finished should report cached")
	}
}
