// Package cache provides a small TTL memoization slot for aggregate
// summaries. Each endpoint owns one injected Slot instead of hidden
// module-level state. Entries may be stale up to the TTL; writes never
// invalidate.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is how long a repopulated slot stays valid.
const DefaultTTL = 30 * time.Second

// Entry is a cached payload with its bookkeeping timestamps.
type Entry[T any] struct {
	Data      T
	CachedAt  time.Time
	ExpiresAt time.Time
}

// Slot holds one cached value guarded by a mutex.
type Slot[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	entry *Entry[T]
	now   func() time.Time
}

// NewSlot creates a Slot with the given TTL. A zero ttl uses DefaultTTL.
func NewSlot[T any](ttl time.Duration) *Slot[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Slot[T]{ttl: ttl, now: time.Now}
}

// Get returns the cached entry if present and unexpired.
func (s *Slot[T]) Get() (*Entry[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entry == nil || !s.now().Before(s.entry.ExpiresAt) {
		return nil, false
	}
	return s.entry, true
}

// Set stores a fresh value and returns the new entry.
func (s *Slot[T]) Set(data T) *Entry[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.entry = &Entry[T]{
		Data:      data,
		CachedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}
	return s.entry
}

// SetClock overrides the time source. Used in tests.
func (s *Slot[T]) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
