package readingrepo

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/reading"
)

// PostgresRepository implements reading.Repository using pgx against a
// daily_readings(sign, reading_date, payload) table keyed on the pair.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Find fetches the materialized reading for a sign and date.
func (r *PostgresRepository) Find(ctx context.Context, sign, date string) (reading.GeneratedDailyReading, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT payload
		FROM daily_readings
		WHERE sign = $1 AND reading_date = $2
		LIMIT 1
	`, sign, date)
	if err != nil {
		return reading.GeneratedDailyReading{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return reading.GeneratedDailyReading{}, false, rows.Err()
	}
	var payload []byte
	if err := rows.Scan(&payload); err != nil {
		return reading.GeneratedDailyReading{}, false, err
	}
	var record reading.GeneratedDailyReading
	if err := json.Unmarshal(payload, &record); err != nil {
		return reading.GeneratedDailyReading{}, false, err
	}
	return record, true, rows.Err()
}

// Save materializes a reading. Generation is deterministic, so a row
// that already exists is identical to the incoming one and the first
// write wins.
func (r *PostgresRepository) Save(ctx context.Context, record reading.GeneratedDailyReading) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO daily_readings (sign, reading_date, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (sign, reading_date) DO NOTHING
	`, record.ZodiacSign, record.Date, payload)
	return err
}

var _ reading.Repository = (*PostgresRepository)(nil)
