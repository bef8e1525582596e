package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCurrentTransitsResolvesAllBodies(t *testing.T) {
	eph := &stubEphemeris{
		longitudes: map[Body]float64{
			Sun: 84.9, Moon: 245.5, Mercury: 102.1, Venus: 39.1, Mars: 148.6,
			Jupiter: 90.9, Saturn: 1.0, Uranus: 58.6, Neptune: 1.7, Pluto: 303.1,
		},
	}
	svc := newTestService(eph)

	positions := svc.CurrentTransits(mustParse("2025-06-15T12:00:00Z"))
	require.Len(t, positions, 10)

	byName := map[Body]PlanetPosition{}
	for _, p := range positions {
		byName[p.Name] = p
	}
	require.Equal(t, "Gemini", byName[Sun].Sign)
	require.Equal(t, 24, byName[Sun].SignDegree)
	require.Equal(t, 54, byName[Sun].SignMinute)
	require.Equal(t, "☉", byName[Sun].Symbol)
	require.Equal(t, "Sagittarius", byName[Moon].Sign)
	require.Equal(t, "Capricorn", byName[Pluto].Sign)

	for _, p := range positions {
		rebuilt := float64(signIndex(t, p.Sign))*30 + float64(p.SignDegree) + float64(p.SignMinute)/60
		require.InDelta(t, p.Longitude, rebuilt, 1.0/60+1e-9)
	}
}

func TestRetrogradeDetection(t *testing.T) {
	// Mercury and the Sun both drift backward here; only Mercury may be
	// flagged, luminaries are defined as always direct.
	eph := &stubEphemeris{
		longitudeFn: func(body Body, at time.Time) float64 {
			hours := at.Sub(mustParse("2025-07-20T00:00:00Z")).Hours()
			switch body {
			case Mercury:
				return NormalizeDegrees(130 - 0.5*hours/24)
			case Sun:
				return NormalizeDegrees(117 - 0.2*hours/24)
			case Venus:
				return NormalizeDegrees(65 + 1.2*hours/24)
			default:
				return 10
			}
		},
	}
	svc := newTestService(eph)

	positions := svc.CurrentTransits(mustParse("2025-07-20T00:00:00Z"))
	byName := map[Body]PlanetPosition{}
	for _, p := range positions {
		byName[p.Name] = p
	}
	require.True(t, byName[Mercury].Retrograde)
	require.False(t, byName[Sun].Retrograde)
	require.False(t, byName[Venus].Retrograde)
	require.False(t, byName[Moon].Retrograde)
}

func TestRetrogradeDetectionAcrossWrap(t *testing.T) {
	eph := &stubEphemeris{
		longitudeFn: func(body Body, at time.Time) float64 {
			if body != Mercury {
				return 200
			}
			hours := at.Sub(mustParse("2025-07-20T00:00:00Z")).Hours()
			return NormalizeDegrees(0.5 - 0.7*hours/24)
		},
	}
	svc := newTestService(eph)

	positions := svc.CurrentTransits(mustParse("2025-07-20T00:00:00Z"))
	for _, p := range positions {
		if p.Name == Mercury {
			require.True(t, p.Retrograde)
		}
	}
}

func TestDailySummaryWithoutNatal(t *testing.T) {
	eph := &stubEphemeris{
		longitudes: map[Body]float64{Moon: 245},
		phase:      120,
		illum:      0.75,
	}
	svc := newTestService(eph)

	at := mustParse("2025-06-15T12:00:00Z")
	summary := svc.DailySummary(at, nil)
	require.Equal(t, "2025-06-15T12:00:00Z", summary.Date)
	require.Len(t, summary.Positions, 10)
	require.Empty(t, summary.Aspects)
	require.Equal(t, "Waxing Gibbous", summary.MoonPhase.PhaseName)
	require.NotEmpty(t, summary.CosmicWeather)
	require.GreaterOrEqual(t, summary.EnergyLevel, 1)
	require.LessOrEqual(t, summary.EnergyLevel, 10)
}

func TestDailySummaryCapsAspects(t *testing.T) {
	// Every transit body conjunct every natal body floods the matcher;
	// the summary keeps only the eight tightest hits.
	eph := &stubEphemeris{}
	svc := newTestService(eph)

	natal := make([]PlanetPosition, 0, len(trackedBodies))
	for _, b := range trackedBodies {
		natal = append(natal, position(b, 0))
	}
	summary := svc.DailySummary(mustParse("2025-06-15T12:00:00Z"), natal)
	require.Len(t, summary.Aspects, 8)
	for i := 1; i < len(summary.Aspects); i++ {
		require.LessOrEqual(t, summary.Aspects[i-1].Orb, summary.Aspects[i].Orb)
	}
}

func TestAspectsServiceDelegation(t *testing.T) {
	svc := newTestService(&stubEphemeris{})
	aspects := svc.Aspects(
		[]PlanetPosition{position(Sun, 90)},
		[]PlanetPosition{position(Moon, 0)},
	)
	require.Len(t, aspects, 1)
	require.Equal(t, Square, aspects[0].AspectType)
}

type stubEphemeris struct {
	longitudes  map[Body]float64
	longitudeFn func(Body, time.Time) float64
	phase       float64
	phaseFn     func(time.Time) float64
	illum       float64
	crossings   map[float64]time.Time
	noCrossing  bool
}

func (s *stubEphemeris) Longitude(body Body, at time.Time) float64 {
	if s.longitudeFn != nil {
		return s.longitudeFn(body, at)
	}
	return s.longitudes[body]
}

func (s *stubEphemeris) PhaseAngle(at time.Time) float64 {
	if s.phaseFn != nil {
		return s.phaseFn(at)
	}
	return s.phase
}

func (s *stubEphemeris) Illumination(at time.Time) float64 {
	return s.illum
}

func (s *stubEphemeris) NextPhaseCrossing(after time.Time, target float64, within time.Duration) (time.Time, bool) {
	if s.noCrossing {
		return time.Time{}, false
	}
	if when, ok := s.crossings[target]; ok {
		return when, true
	}
	return after.Add(7 * 24 * time.Hour), true
}

func mustParse(value string) time.Time {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return ts
}
