package readingstore

import (
	"context"
	"sync"
	"time"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/reading"
)

type cachedReading struct {
	payload   reading.GeneratedDailyReading
	expiresAt time.Time
}

// MemoryStore is an in-memory reading.Store used when no cache backend
// is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]cachedReading
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]cachedReading)}
}

// Get implements reading.Store.
func (s *MemoryStore) Get(_ context.Context, sign, date string) (reading.GeneratedDailyReading, bool, error) {
	key := sign + "|" + date
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return reading.GeneratedDailyReading{}, false, nil
	}
	if hasExpired(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return reading.GeneratedDailyReading{}, false, nil
	}
	return entry.payload, true, nil
}

// Set implements reading.Store with optional TTL.
func (s *MemoryStore) Set(_ context.Context, record reading.GeneratedDailyReading, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.entries[record.ZodiacSign+"|"+record.Date] = cachedReading{
		payload:   record,
		expiresAt: exp,
	}
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ reading.Store = (*MemoryStore)(nil)
