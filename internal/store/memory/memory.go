package memory

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
)

type entry struct {
	payload   domain.DayPayload
	expiresAt time.Time
}

// Store is a process-wide TTL cache for day payloads. Expiry is lazy: an
// entry past its deadline is treated as absent on the next Get and removed
// then; there is no background sweep. The key space is small (one entry per
// venue/date pair) and entries self-expire, so no capacity bound is applied.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewWithClock creates a store with an injectable clock, for tests.
func NewWithClock(now func() time.Time) *Store {
	s := New()
	s.now = now
	return s
}

// Get returns the stored payload if the entry is still fresh.
func (s *Store) Get(ctx context.Context, key string) (domain.DayPayload, bool, error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return domain.DayPayload{}, false, nil
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return domain.DayPayload{}, false, nil
	}
	return e.payload, true, nil
}

// Set stores a payload with expiry = now + ttl, overwriting any previous
// entry for the key (last writer wins).
func (s *Store) Set(ctx context.Context, key string, payload domain.DayPayload, ttl time.Duration) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		payload:   payload,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// Len returns the number of entries currently held, including ones that
// have expired but not yet been touched.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
