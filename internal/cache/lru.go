// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package cache

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DefaultCapacity is the entry bound used when a non-positive capacity is given.
const DefaultCapacity = 1000

// Policy selects which entry is evicted when the cache is full.
type Policy int

const (
	// PolicyLRU evicts the least recently used entry. Get refreshes recency.
	PolicyLRU Policy = iota
	// PolicyFIFO evicts the oldest inserted entry. Get does not reorder.
	PolicyFIFO
)

// String returns the config name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyFIFO:
		return "fifo"
	default:
		return "lru"
	}
}

// ParsePolicy maps a config value to a Policy. Unknown values return an error.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "lru":
		return PolicyLRU, nil
	case "fifo":
		return PolicyFIFO, nil
	default:
		return PolicyLRU, fmt.Errorf("unknown cache policy %q", s)
	}
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// HitRate returns hits as a percentage of lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

type entry[K comparable, V any] struct {
	key   K
	value V
	prev  *entry[K, V]
	next  *entry[K, V]
}

// LRU is a thread-safe bounded cache with O(1) Get, Add and eviction.
//
// Entries live in a doubly-linked list between two sentinels: head.next is the
// newest (or most recently used) entry and tail.prev the next eviction victim.
// Entries never expire; they leave only through eviction or Clear.
type LRU[K comparable, V any] struct {
	mu sync.Mutex

	capacity int
	policy   Policy

	items map[K]*entry[K, V]
	head  *entry[K, V]
	tail  *entry[K, V]

	hits      int64
	misses    int64
	evictions int64

	loads   singleflight.Group
	onEvict func(K, V)
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithPolicy sets the eviction policy.
func WithPolicy[K comparable, V any](p Policy) Option[K, V] {
	return func(c *LRU[K, V]) { c.policy = p }
}

// WithEvictCallback registers a function called (under the cache lock) for each eviction.
func WithEvictCallback[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *LRU[K, V]) { c.onEvict = fn }
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*entry[K, V], capacity),
		head:     &entry[K, V]{},
		tail:     &entry[K, V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value for key. Under PolicyLRU a hit becomes the
// most recently used entry.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		if c.policy == PolicyLRU {
			c.moveToFront(e)
		}
		c.hits++
		return e.value, true
	}

	c.misses++
	var zero V
	return zero, false
}

// Contains reports whether key is cached without touching order or stats.
func (c *LRU[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

// Add inserts or replaces the value for key, evicting when over capacity.
func (c *LRU[K, V]) Add(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.add(key, value)
}

// GetOrLoad returns the cached value for key or calls load to produce it.
// Concurrent callers for the same key share a single load call and observe
// the same stored value. Failed loads are not cached.
func (c *LRU[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	v, _, err := c.Load(key, func() (V, bool, error) {
		v, err := load()
		return v, err == nil, err
	})
	return v, err
}

// Load is GetOrLoad for loaders that decide per value whether it may be
// stored. A value load declines to store is still returned to every caller
// sharing that load. cached reports whether key was present when Load was
// called; callers that waited on another caller's load see false.
func (c *LRU[K, V]) Load(key K, load func() (value V, store bool, err error)) (v V, cached bool, err error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}

	// %#v is unambiguous for comparable keys such as structs of strings.
	res, err, _ := c.loads.Do(fmt.Sprintf("%#v", key), func() (interface{}, error) {
		// A caller that lost the race to an earlier flight finds the stored value here.
		c.mu.Lock()
		if e, ok := c.items[key]; ok {
			c.mu.Unlock()
			return e.value, nil
		}
		c.mu.Unlock()

		v, store, err := load()
		if err != nil || !store {
			return v, err
		}

		c.mu.Lock()
		if e, ok := c.items[key]; ok {
			v = e.value
		} else {
			c.add(key, v)
		}
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return res.(V), false, nil
}

// Remove deletes key and reports whether it was present.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.removeEntry(e)
		return true
	}
	return false
}

// Keys returns keys from newest to oldest position.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.items))
	for e := c.head.next; e != c.tail; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Len returns the current number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Capacity returns the entry bound.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Policy returns the eviction policy.
func (c *LRU[K, V]) Policy() Policy {
	return c.policy
}

// Clear removes all entries. Counters are kept.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*entry[K, V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
}

// Stats returns hit/miss/eviction counters and the current size.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Internal methods (must be called with lock held)

func (c *LRU[K, V]) add(key K, value V) {
	if e, ok := c.items[key]; ok {
		e.value = value
		if c.policy == PolicyLRU {
			c.moveToFront(e)
		}
		return
	}

	e := &entry[K, V]{key: key, value: value}
	c.addToFront(e)
	c.items[key] = e

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
}

func (c *LRU[K, V]) addToFront(e *entry[K, V]) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *LRU[K, V]) moveToFront(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	c.addToFront(e)
}

func (c *LRU[K, V]) removeEntry(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(c.items, e.key)
}

func (c *LRU[K, V]) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
	c.evictions++
	if c.onEvict != nil {
		c.onEvict(oldest.key, oldest.value)
	}
}
