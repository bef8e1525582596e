package meeus

import (
	"math"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/astro"
)

// moonLongitude returns the Moon's ecliptic longitude in degrees for a
// time in days since J2000. The mean longitude is corrected by the six
// largest periodic terms (evection, variation, annual equation and the
// leading elliptic and flattening terms), good to about a tenth of a
// degree.
func moonLongitude(d float64) float64 {
	meanLon := 218.316 + 13.176396*d
	sunAnomaly := (357.529 + 0.9856003*d) * deg2rad
	moonAnomaly := (134.963 + 13.064993*d) * deg2rad
	elongation := (297.850 + 12.190749*d) * deg2rad
	latArg := (93.272 + 13.229350*d) * deg2rad

	lon := meanLon +
		6.289*math.Sin(moonAnomaly) +
		1.274*math.Sin(2*elongation-moonAnomaly) +
		0.658*math.Sin(2*elongation) +
		0.214*math.Sin(2*moonAnomaly) -
		0.186*math.Sin(sunAnomaly) -
		0.114*math.Sin(2*latArg)
	return astro.NormalizeDegrees(lon)
}
