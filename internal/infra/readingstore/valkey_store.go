package readingstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/reading"
)

// ValkeyStore caches generated readings in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "reading"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements reading.Store.
func (s *ValkeyStore) Get(ctx context.Context, sign, date string) (reading.GeneratedDailyReading, bool, error) {
	cmd := s.client.B().Get().Key(s.key(sign, date)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return reading.GeneratedDailyReading{}, false, nil
		}
		return reading.GeneratedDailyReading{}, false, err
	}
	var record reading.GeneratedDailyReading
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return reading.GeneratedDailyReading{}, false, err
	}
	return record, true, nil
}

// Set implements reading.Store.
func (s *ValkeyStore) Set(ctx context.Context, record reading.GeneratedDailyReading, ttl time.Duration) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.key(record.ZodiacSign, record.Date)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) key(sign, date string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, sign, date)
}

var _ reading.Store = (*ValkeyStore)(nil)
