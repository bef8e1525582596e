package astro

import (
	"math"
	"time"
)

// phaseNameFor buckets a phase angle into one of the eight named phases.
// The boundaries sit 11.25 degrees either side of the four cardinal points.
func phaseNameFor(angle float64) string {
	switch a := NormalizeDegrees(angle); {
	case a < 11.25:
		return "New Moon"
	case a < 78.75:
		return "Waxing Crescent"
	case a < 101.25:
		return "First Quarter"
	case a < 168.75:
		return "Waxing Gibbous"
	case a < 191.25:
		return "Full Moon"
	case a < 258.75:
		return "Waning Gibbous"
	case a < 281.25:
		return "Last Quarter"
	case a < 348.75:
		return "Waning Crescent"
	default:
		return "New Moon"
	}
}

func (s *service) moonPhase(at time.Time) LunarPhaseInfo {
	angle := s.eph.PhaseAngle(at)
	moonSign, moonDegree, _ := Decompose(s.eph.Longitude(Moon, at))

	nextFull := s.nextCrossing(at, 180)
	nextNew := s.nextCrossing(at, 0)

	return LunarPhaseInfo{
		PhaseName:         phaseNameFor(angle),
		Illumination:      s.eph.Illumination(at),
		PhaseAngle:        angle,
		MoonSign:          moonSign,
		MoonSignDegree:    moonDegree,
		DaysUntilFullMoon: daysBetween(at, nextFull),
		DaysUntilNewMoon:  daysBetween(at, nextNew),
		NextFullMoonDate:  nextFull.Format("2006-01-02"),
		NextNewMoonDate:   nextNew.Format("2006-01-02"),
	}
}

func (s *service) nextCrossing(after time.Time, target float64) time.Time {
	when, ok := s.eph.NextPhaseCrossing(after, target, s.cfg.PhaseSearchWindow)
	if !ok {
		// A sane ephemeris never misses a crossing inside a 29.5 day
		// cycle; half the window keeps the estimate in the right month.
		return after.Add(s.cfg.PhaseSearchWindow / 2)
	}
	return when
}

// daysBetween reports the span in days rounded to one decimal.
func daysBetween(from, to time.Time) float64 {
	return math.Round(to.Sub(from).Hours()/24*10) / 10
}
