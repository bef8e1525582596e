package reading

import (
	"context"
	"time"
)

// Store is the fast cache in front of the repository.
type Store interface {
	Get(ctx context.Context, sign, date string) (GeneratedDailyReading, bool, error)
	Set(ctx context.Context, r GeneratedDailyReading, ttl time.Duration) error
}
