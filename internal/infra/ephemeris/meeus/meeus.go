// Package meeus computes geocentric ecliptic longitudes from compact
// analytic series: the solar theory of Meeus' Astronomical Algorithms,
// a truncated lunar longitude series, and Standish's approximate
// Keplerian elements for the planets. Accuracy is a few arcminutes for
// the Sun and Moon and a few tenths of a degree for the planets across
// 1800-2050, ample for sign placement and phase tracking.
package meeus

import (
	"math"
	"time"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/astro"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi

	// crossingStep bounds the scan granularity for phase crossings. The
	// phase angle gains at least 10 degrees a day, so a quarter day can
	// never step over a full cycle.
	crossingStep = 6 * time.Hour
)

// Ephemeris evaluates the analytic series. It is stateless and safe for
// concurrent use.
type Ephemeris struct{}

// New returns the analytic ephemeris.
func New() *Ephemeris {
	return &Ephemeris{}
}

var _ astro.Ephemeris = (*Ephemeris)(nil)

// Longitude returns the geocentric ecliptic longitude of a body in
// degrees, normalized to [0, 360).
func (e *Ephemeris) Longitude(body astro.Body, at time.Time) float64 {
	switch body {
	case astro.Sun:
		return sunLongitude(centuriesSinceJ2000(at))
	case astro.Moon:
		return moonLongitude(daysSinceJ2000(at))
	default:
		return planetLongitude(body, centuriesSinceJ2000(at))
	}
}

// PhaseAngle returns the Moon's elongation from the Sun in degrees.
// Zero is a new moon and 180 a full moon.
func (e *Ephemeris) PhaseAngle(at time.Time) float64 {
	return astro.NormalizeDegrees(moonLongitude(daysSinceJ2000(at)) - sunLongitude(centuriesSinceJ2000(at)))
}

// Illumination returns the sunlit fraction of the lunar disc in [0, 1].
func (e *Ephemeris) Illumination(at time.Time) float64 {
	return (1 - math.Cos(e.PhaseAngle(at)*deg2rad)) / 2
}

// NextPhaseCrossing finds the first instant after the given time at
// which the phase angle reaches the target, scanning at most the given
// window. The gap from the target shrinks monotonically and jumps by a
// full turn the moment the phase passes it, so a jump between samples
// brackets the crossing.
func (e *Ephemeris) NextPhaseCrossing(after time.Time, target float64, within time.Duration) (time.Time, bool) {
	gap := func(at time.Time) float64 {
		return astro.NormalizeDegrees(target - e.PhaseAngle(at))
	}

	end := after.Add(within)
	lo := after
	gapLo := gap(lo)
	for lo.Before(end) {
		hi := lo.Add(crossingStep)
		if hi.After(end) {
			hi = end
		}
		gapHi := gap(hi)
		if gapHi > gapLo {
			return bisectCrossing(gap, lo, hi), true
		}
		lo, gapLo = hi, gapHi
	}
	return time.Time{}, false
}

// bisectCrossing narrows a bracketing interval to under a second.
func bisectCrossing(gap func(time.Time) float64, lo, hi time.Time) time.Time {
	for hi.Sub(lo) > time.Second {
		mid := lo.Add(hi.Sub(lo) / 2)
		if gap(mid) > gap(lo) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi
}

func julianDay(at time.Time) float64 {
	return float64(at.Unix())/86400 + 2440587.5
}

func daysSinceJ2000(at time.Time) float64 {
	return julianDay(at) - 2451545.0
}

func centuriesSinceJ2000(at time.Time) float64 {
	return daysSinceJ2000(at) / 36525
}
