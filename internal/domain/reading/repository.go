package reading

import "context"

// Repository is the durable record of generated readings.
type Repository interface {
	Find(ctx context.Context, sign, date string) (GeneratedDailyReading, bool, error)
	Save(ctx context.Context, r GeneratedDailyReading) error
}
