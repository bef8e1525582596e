package readingstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/reading"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "Scorpio", "2025-06-15")
	require.NoError(t, err)
	require.False(t, found)

	record := reading.GeneratedDailyReading{
		Date:       "2025-06-15",
		ZodiacSign: "Scorpio",
		Briefing:   "cached",
	}
	require.NoError(t, store.Set(ctx, record, time.Hour))

	got, found, err := store.Get(ctx, "Scorpio", "2025-06-15")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, record, got)
}

func TestMemoryStoreExpiresEntries(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := reading.GeneratedDailyReading{Date: "2025-06-15", ZodiacSign: "Scorpio"}
	require.NoError(t, store.Set(ctx, record, 10*time.Millisecond))

	_, found, err := store.Get(ctx, "Scorpio", "2025-06-15")
	require.NoError(t, err)
	require.True(t, found)

	time.Sleep(20 * time.Millisecond)

	_, found, err = store.Get(ctx, "Scorpio", "2025-06-15")
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := reading.GeneratedDailyReading{Date: "2025-06-15", ZodiacSign: "Scorpio"}
	require.NoError(t, store.Set(ctx, record, 0))

	time.Sleep(10 * time.Millisecond)

	_, found, err := store.Get(ctx, "Scorpio", "2025-06-15")
	require.NoError(t, err)
	require.True(t, found)
}

func TestMemoryStoreOverwrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, reading.GeneratedDailyReading{Date: "2025-06-15", ZodiacSign: "Scorpio", Briefing: "old"}, time.Hour))
	require.NoError(t, store.Set(ctx, reading.GeneratedDailyReading{Date: "2025-06-15", ZodiacSign: "Scorpio", Briefing: "new"}, time.Hour))

	got, found, err := store.Get(ctx, "Scorpio", "2025-06-15")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "new", got.Briefing)
}
