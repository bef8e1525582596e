package astro

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPhaseNameBuckets(t *testing.T) {
	cases := []struct {
		angle float64
		want  string
	}{
		{0, "New Moon"},
		{11.24, "New Moon"},
		{11.25, "Waxing Crescent"},
		{78.74, "Waxing Crescent"},
		{78.75, "First Quarter"},
		{101.25, "Waxing Gibbous"},
		{168.74, "Waxing Gibbous"},
		{168.75, "Full Moon"},
		{180.0, "Full Moon"},
		{191.24, "Full Moon"},
		{191.25, "Waning Gibbous"},
		{258.75, "Last Quarter"},
		{281.25, "Waning Crescent"},
		{348.75, "New Moon"},
		{359.9, "New Moon"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, phaseNameFor(tc.angle), "angle %v", tc.angle)
	}
}

func TestPhaseNameTotality(t *testing.T) {
	for a := 0.0; a < 360; a += 0.05 {
		require.NotEmpty(t, phaseNameFor(a), "angle %v", a)
	}
}

func TestMoonPhaseInfo(t *testing.T) {
	at := mustParse("2025-06-11T12:00:00Z")
	eph := &stubEphemeris{
		longitudes: map[Body]float64{Moon: 245.5},
		phase:      180,
		illum:      0.998,
		crossings: map[float64]time.Time{
			180: at.Add(84 * time.Hour),
			0:   at.Add(14*24*time.Hour + 6*time.Hour),
		},
	}
	svc := newTestService(eph)

	info := svc.MoonPhase(at)
	require.Equal(t, "Full Moon", info.PhaseName)
	require.Equal(t, 180.0, info.PhaseAngle)
	require.Equal(t, 0.998, info.Illumination)
	require.Equal(t, "Sagittarius", info.MoonSign)
	require.Equal(t, 5, info.MoonSignDegree)
	require.Equal(t, 3.5, info.DaysUntilFullMoon)
	require.Equal(t, 14.3, info.DaysUntilNewMoon)
	require.Equal(t, "2025-06-15", info.NextFullMoonDate)
	require.Equal(t, "2025-06-25", info.NextNewMoonDate)
}

func TestMoonPhaseSearchFallback(t *testing.T) {
	at := mustParse("2025-03-01T00:00:00Z")
	eph := &stubEphemeris{
		longitudes: map[Body]float64{Moon: 10},
		phase:      42,
		noCrossing: true,
	}
	svc := newTestService(eph)

	info := svc.MoonPhase(at)
	require.Equal(t, 15.0, info.DaysUntilFullMoon)
	require.Equal(t, 15.0, info.DaysUntilNewMoon)
	require.Equal(t, "2025-03-16", info.NextFullMoonDate)
	require.Equal(t, "2025-03-16", info.NextNewMoonDate)
}

func newTestService(eph Ephemeris) Service {
	return NewService(Config{}, eph, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
