package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hooplabs/courtside/internal/platform/resilience"
)

type entry struct {
	value    any
	storedAt time.Time
}

// Store is a named in-memory key/value store with a single TTL applied to
// every entry. An entry is visible only while now-storedAt < ttl; expired
// entries are removed lazily on Get and in bulk by ClearExpired. The store
// is unbounded between sweeps, which is an accepted limitation.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	name    string
	ttl     time.Duration
	flight  resilience.SingleFlight
	now     func() time.Time
}

func NewStore(name string, ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		name:    name,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) Name() string { return s.name }

func (s *Store) TTL() time.Duration { return s.ttl }

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	now := s.now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.expired(e, now) {
		s.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry since the read.
		if cur, ok := s.entries[key]; ok && s.expired(cur, now) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:    value,
		storedAt: s.now(),
	}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// ClearExpired removes every entry whose age has reached the TTL and
// reports how many were dropped.
func (s *Store) ClearExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, key)
			removed++
		}
	}

	return removed
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// GetOrLoad returns the cached value for key or invokes loader exactly once
// across concurrent callers, storing the loaded value on success.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *Store) expired(e entry, now time.Time) bool {
	if s.ttl <= 0 {
		return false
	}
	return now.Sub(e.storedAt) >= s.ttl
}
