package astro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func retroSet(names ...Body) []PlanetPosition {
	out := make([]PlanetPosition, 0, len(trackedBodies))
	flagged := make(map[Body]bool, len(names))
	for _, n := range names {
		flagged[n] = true
	}
	for i, b := range trackedBodies {
		p := position(b, float64(i*20))
		p.Retrograde = flagged[b]
		out = append(out, p)
	}
	return out
}

func quietPhase() LunarPhaseInfo {
	return LunarPhaseInfo{PhaseName: "Waxing Gibbous", MoonSign: "Scorpio"}
}

func aspectsOf(types ...AspectType) []TransitAspect {
	out := make([]TransitAspect, 0, len(types))
	for _, at := range types {
		out = append(out, TransitAspect{AspectType: at})
	}
	return out
}

func TestWeatherHighRetrograde(t *testing.T) {
	weather, energy := buildWeather(retroSet(Mercury, Saturn, Pluto), quietPhase(), nil)
	require.Equal(t, 4, energy)
	require.Contains(t, weather, "3 planets retrograde")
}

func TestWeatherMildRetrograde(t *testing.T) {
	weather, energy := buildWeather(retroSet(Mercury), quietPhase(), nil)
	require.Equal(t, 6, energy)
	require.Contains(t, weather, "Mercury retrograde")
	require.Contains(t, weather, "revisit")
}

func TestWeatherFullMoonBoost(t *testing.T) {
	phase := LunarPhaseInfo{PhaseName: "Full Moon", MoonSign: "Sagittarius"}
	weather, energy := buildWeather(retroSet(), phase, nil)
	require.Equal(t, 9, energy)
	require.Contains(t, weather, "Full Moon")
}

func TestWeatherNewMoonDip(t *testing.T) {
	phase := LunarPhaseInfo{PhaseName: "New Moon", MoonSign: "Cancer"}
	weather, energy := buildWeather(retroSet(), phase, nil)
	require.Equal(t, 6, energy)
	require.Contains(t, weather, "New Moon")
}

func TestWeatherHarmoniousMajority(t *testing.T) {
	weather, energy := buildWeather(retroSet(), quietPhase(), aspectsOf(Trine, Sextile, Square))
	require.Equal(t, 8, energy)
	require.Contains(t, weather, "Flowing aspects")
}

func TestWeatherChallengingMajority(t *testing.T) {
	weather, energy := buildWeather(retroSet(), quietPhase(), aspectsOf(Square, Opposition, Trine))
	require.Equal(t, 6, energy)
	require.Contains(t, weather, "Tense aspects")
}

func TestWeatherConjunctionIsNeutral(t *testing.T) {
	// Equal harmonious and challenging counts with neutral filler leaves
	// the quiet-day fallback in charge.
	weather, energy := buildWeather(retroSet(), quietPhase(), aspectsOf(Conjunction, Trine, Square))
	require.Equal(t, 7, energy)
	require.Contains(t, weather, "sets the day's tone")
}

func TestWeatherFallbackSentence(t *testing.T) {
	weather, energy := buildWeather(retroSet(), quietPhase(), nil)
	require.Equal(t, 7, energy)
	require.Equal(t, "The Waxing Gibbous in Scorpio sets the day's tone: intense.", weather)
}

func TestWeatherStacksAndClamps(t *testing.T) {
	// Heavy retrograde plus a new moon plus challenging skies grinds the
	// score down without ever leaving [1,10].
	phase := LunarPhaseInfo{PhaseName: "New Moon", MoonSign: "Virgo"}
	weather, energy := buildWeather(retroSet(Mercury, Venus, Mars, Saturn), phase, aspectsOf(Square, Square))
	require.Equal(t, 2, energy)
	require.Contains(t, weather, "4 planets retrograde")
	require.Contains(t, weather, "New Moon")
	require.Contains(t, weather, "Tense aspects")

	phase = LunarPhaseInfo{PhaseName: "Full Moon", MoonSign: "Leo"}
	_, energy = buildWeather(retroSet(), phase, aspectsOf(Trine, Sextile))
	require.Equal(t, 10, energy)
}

func TestWeatherEnergyBounds(t *testing.T) {
	phases := []string{"New Moon", "Full Moon", "Waxing Crescent", "Last Quarter"}
	retros := [][]Body{nil, {Mercury}, {Mercury, Venus, Mars}, {Mercury, Venus, Mars, Saturn, Pluto}}
	aspectSets := [][]AspectType{nil, {Trine, Sextile}, {Square, Opposition}, {Square, Trine}}
	for _, ph := range phases {
		for _, rs := range retros {
			for _, as := range aspectSets {
				_, energy := buildWeather(retroSet(rs...), LunarPhaseInfo{PhaseName: ph, MoonSign: "Aries"}, aspectsOf(as...))
				require.GreaterOrEqual(t, energy, 1)
				require.LessOrEqual(t, energy, 10)
			}
		}
	}
}
