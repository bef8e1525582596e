package meeus

import (
	"math"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/astro"
)

// sunLongitude returns the Sun's apparent ecliptic longitude in degrees
// for a time in Julian centuries since J2000. Mean longitude plus the
// equation of center, Meeus chapter 25.
func sunLongitude(t float64) float64 {
	meanLon := 280.46646 + 36000.76983*t + 0.0003032*t*t
	anomaly := (357.52911 + 35999.05029*t - 0.0001537*t*t) * deg2rad
	center := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(anomaly) +
		(0.019993-0.000101*t)*math.Sin(2*anomaly) +
		0.000289*math.Sin(3*anomaly)
	return astro.NormalizeDegrees(meanLon + center)
}
