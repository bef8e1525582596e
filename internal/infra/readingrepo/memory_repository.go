package readingrepo

import (
	"context"
	"sync"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/reading"
)

// MemoryRepository is an in-memory reading.Repository used when no
// database is configured.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]reading.GeneratedDailyReading
}

// NewMemoryRepository constructs a repository backed by process memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]reading.GeneratedDailyReading)}
}

// Find implements reading.Repository.
func (r *MemoryRepository) Find(_ context.Context, sign, date string) (reading.GeneratedDailyReading, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[sign+"|"+date]
	return record, ok, nil
}

// Save implements reading.Repository. Matching the database semantics,
// the first write for a key wins.
func (r *MemoryRepository) Save(_ context.Context, record reading.GeneratedDailyReading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := record.ZodiacSign + "|" + record.Date
	if _, exists := r.records[key]; exists {
		return nil
	}
	r.records[key] = record
	return nil
}

var _ reading.Repository = (*MemoryRepository)(nil)
