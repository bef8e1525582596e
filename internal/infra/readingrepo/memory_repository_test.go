package readingrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/reading"
)

func TestMemoryRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, found, err := repo.Find(ctx, "Scorpio", "2025-06-15")
	require.NoError(t, err)
	require.False(t, found)

	record := reading.GeneratedDailyReading{
		Date:       "2025-06-15",
		ZodiacSign: "Scorpio",
		Briefing:   "original",
	}
	require.NoError(t, repo.Save(ctx, record))

	got, found, err := repo.Find(ctx, "Scorpio", "2025-06-15")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, record, got)
}

func TestMemoryRepositoryFirstWriteWins(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := reading.GeneratedDailyReading{Date: "2025-06-15", ZodiacSign: "Scorpio", Briefing: "first"}
	second := reading.GeneratedDailyReading{Date: "2025-06-15", ZodiacSign: "Scorpio", Briefing: "second"}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	got, found, err := repo.Find(ctx, "Scorpio", "2025-06-15")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "first", got.Briefing)
}

func TestMemoryRepositoryKeysBySignAndDate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, reading.GeneratedDailyReading{Date: "2025-06-15", ZodiacSign: "Scorpio"}))
	require.NoError(t, repo.Save(ctx, reading.GeneratedDailyReading{Date: "2025-06-16", ZodiacSign: "Scorpio"}))
	require.NoError(t, repo.Save(ctx, reading.GeneratedDailyReading{Date: "2025-06-15", ZodiacSign: "Leo"}))

	_, found, err := repo.Find(ctx, "Leo", "2025-06-16")
	require.NoError(t, err)
	require.False(t, found)

	got, found, err := repo.Find(ctx, "Leo", "2025-06-15")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Leo", got.ZodiacSign)
}
