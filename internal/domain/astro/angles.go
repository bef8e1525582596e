package astro

import "math"

// NormalizeDegrees folds any angle into [0,360).
func NormalizeDegrees(x float64) float64 {
	return math.Mod(math.Mod(x, 360)+360, 360)
}

// ShortestAngularDistance returns the smallest separation between two
// longitudes, always in [0,180].
func ShortestAngularDistance(a, b float64) float64 {
	d := NormalizeDegrees(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// SignedDelta returns the shortest signed arc from one longitude to another,
// in (-180,180]. Negative means the target sits behind the origin.
func SignedDelta(from, to float64) float64 {
	d := NormalizeDegrees(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// SignAt maps an ecliptic longitude to its zodiac sign name.
func SignAt(longitude float64) string {
	idx := int(NormalizeDegrees(longitude) / 30)
	if idx > 11 {
		idx = 11
	}
	return zodiacSigns[idx]
}

// Decompose splits a longitude into sign, whole in-sign degree and minute.
// The minute is rounded and capped at 59 so the triple always reconstructs
// the longitude to within 1/60 degree.
func Decompose(longitude float64) (sign string, degree, minute int) {
	norm := NormalizeDegrees(longitude)
	idx := int(norm / 30)
	if idx > 11 {
		idx = 11
	}
	inSign := norm - float64(idx)*30
	degree = int(inSign)
	minute = int(math.Round((inSign - float64(degree)) * 60))
	if minute >= 60 {
		minute = 59
	}
	return zodiacSigns[idx], degree, minute
}
