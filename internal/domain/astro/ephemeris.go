package astro

import "time"

// Ephemeris supplies raw astronomical quantities. Implementations must be
// pure: longitudes in [0,360) degrees, phase angle in [0,360) with 0 = new
// and 180 = full, illumination in [0,1].
type Ephemeris interface {
	// Longitude returns the geocentric ecliptic longitude of a body.
	Longitude(body Body, at time.Time) float64
	// PhaseAngle returns the moon phase angle at an instant.
	PhaseAngle(at time.Time) float64
	// Illumination returns the lit fraction of the lunar disc.
	Illumination(at time.Time) float64
	// NextPhaseCrossing searches forward from an instant for the moment the
	// phase angle crosses target, within the given window. The boolean is
	// false when no crossing was found inside the window.
	NextPhaseCrossing(after time.Time, target float64, within time.Duration) (time.Time, bool)
}
