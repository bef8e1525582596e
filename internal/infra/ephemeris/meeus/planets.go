package meeus

import (
	"math"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/astro"
)

// orbit holds Keplerian elements at J2000 and their centennial rates:
// semi-major axis (au), eccentricity, inclination, mean longitude,
// longitude of perihelion and longitude of the ascending node (deg).
type orbit struct {
	a, e, i, l, peri, node       float64
	da, de, di, dl, dperi, dnode float64
}

// earth keys the element set used to shift heliocentric positions to
// the geocentric frame. It is not a tracked body.
const earth = astro.Body("Earth")

// Elements and rates from E.M. Standish, "Approximate Positions of the
// Planets" (JPL), valid 1800-2050.
var orbits = map[astro.Body]orbit{
	astro.Mercury: {
		a: 0.38709927, e: 0.20563593, i: 7.00497902, l: 252.25032350, peri: 77.45779628, node: 48.33076593,
		da: 0.00000037, de: 0.00001906, di: -0.00594749, dl: 149472.67411175, dperi: 0.16047689, dnode: -0.12534081,
	},
	astro.Venus: {
		a: 0.72333566, e: 0.00677672, i: 3.39467605, l: 181.97909950, peri: 131.60246718, node: 76.67984255,
		da: 0.00000390, de: -0.00004107, di: -0.00078890, dl: 58517.81538729, dperi: 0.00268329, dnode: -0.27769418,
	},
	earth: {
		a: 1.00000261, e: 0.01671123, i: -0.00001531, l: 100.46457166, peri: 102.93768193, node: 0,
		da: 0.00000562, de: -0.00004392, di: -0.01294668, dl: 35999.37244981, dperi: 0.32327364, dnode: 0,
	},
	astro.Mars: {
		a: 1.52371034, e: 0.09339410, i: 1.84969142, l: -4.55343205, peri: -23.94362959, node: 49.55953891,
		da: 0.00001847, de: 0.00007882, di: -0.00813131, dl: 19140.30268499, dperi: 0.44441088, dnode: -0.29257343,
	},
	astro.Jupiter: {
		a: 5.20288700, e: 0.04838624, i: 1.30439695, l: 34.39644051, peri: 14.72847983, node: 100.47390909,
		da: -0.00011607, de: -0.00013253, di: -0.00183714, dl: 3034.74612775, dperi: 0.21252668, dnode: 0.20469106,
	},
	astro.Saturn: {
		a: 9.53667594, e: 0.05386179, i: 2.48599187, l: 49.95424423, peri: 92.59887831, node: 113.66242448,
		da: -0.00125060, de: -0.00050991, di: 0.00193609, dl: 1222.49362201, dperi: -0.41897216, dnode: -0.28867794,
	},
	astro.Uranus: {
		a: 19.18916464, e: 0.04725744, i: 0.77263783, l: 313.23810451, peri: 170.95427630, node: 74.01692503,
		da: -0.00196176, de: -0.00004397, di: -0.00242939, dl: 428.48202785, dperi: 0.40805281, dnode: 0.04240589,
	},
	astro.Neptune: {
		a: 30.06992276, e: 0.00859048, i: 1.77004347, l: -55.12002969, peri: 44.96476227, node: 131.78422574,
		da: 0.00026291, de: 0.00005105, di: 0.00035372, dl: 218.45945325, dperi: -0.32241464, dnode: -0.00508664,
	},
	astro.Pluto: {
		a: 39.48211675, e: 0.24882730, i: 17.14001206, l: 238.92903833, peri: 224.06891629, node: 110.30393684,
		da: -0.00031596, de: 0.00005170, di: 0.00004818, dl: 145.20780515, dperi: -0.04062942, dnode: -0.01183482,
	},
}

// planetLongitude projects a planet's heliocentric position and Earth's
// into the ecliptic plane and takes the geocentric longitude, for a
// time in Julian centuries since J2000.
func planetLongitude(body astro.Body, t float64) float64 {
	o, ok := orbits[body]
	if !ok {
		return 0
	}
	px, py := helioEcliptic(o, t)
	ex, ey := helioEcliptic(orbits[earth], t)
	return astro.NormalizeDegrees(math.Atan2(py-ey, px-ex) * rad2deg)
}

// helioEcliptic returns the heliocentric ecliptic x and y of an orbit
// in au at a time in Julian centuries since J2000.
func helioEcliptic(o orbit, t float64) (x, y float64) {
	a := o.a + o.da*t
	ecc := o.e + o.de*t
	inc := (o.i + o.di*t) * deg2rad
	meanLon := o.l + o.dl*t
	peri := o.peri + o.dperi*t
	node := o.node + o.dnode*t

	anomaly := keplerE(math.Mod(meanLon-peri, 360)*deg2rad, ecc)

	// Position in the orbital plane, perihelion along +x.
	xp := a * (math.Cos(anomaly) - ecc)
	yp := a * math.Sqrt(1-ecc*ecc) * math.Sin(anomaly)

	w := (peri - node) * deg2rad
	om := node * deg2rad
	cw, sw := math.Cos(w), math.Sin(w)
	co, so := math.Cos(om), math.Sin(om)
	ci := math.Cos(inc)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	return x, y
}

// keplerE solves Kepler's equation for the eccentric anomaly by Newton
// iteration. Converges in a handful of steps for every solar system
// eccentricity.
func keplerE(meanAnomaly, ecc float64) float64 {
	e := meanAnomaly + ecc*math.Sin(meanAnomaly)
	for i := 0; i < 30; i++ {
		step := (e - ecc*math.Sin(e) - meanAnomaly) / (1 - ecc*math.Cos(e))
		e -= step
		if math.Abs(step) < 1e-12 {
			break
		}
	}
	return e
}
