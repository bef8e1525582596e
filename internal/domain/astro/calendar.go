package astro

import (
	"fmt"
	"time"
)

// scanHour samples each day at noon UTC so events land on the civil date
// most of the world experiences them.
const scanHour = 12

func (s *service) monthEvents(year int, month time.Month) []MonthEvent {
	first := time.Date(year, month, 1, scanHour, 0, 0, 0, time.UTC)
	prior := first.AddDate(0, 0, -1)

	prevPhase := s.eph.PhaseAngle(prior)
	prevSign := make(map[Body]string, len(trackedBodies))
	prevRetro := make(map[Body]bool, len(trackedBodies))
	for _, p := range s.resolvePositions(prior) {
		prevSign[p.Name] = p.Sign
		prevRetro[p.Name] = p.Retrograde
	}

	var events []MonthEvent
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")

		phase := s.eph.PhaseAngle(day)
		moonSign := SignAt(s.eph.Longitude(Moon, day))
		if prevPhase < 180 && phase >= 180 {
			events = append(events, MonthEvent{
				Date:        date,
				Type:        EventFullMoon,
				Description: fmt.Sprintf("Full Moon in %s", moonSign),
				Impact:      ImpactSignificant,
				Emoji:       "\U0001f315",
			})
		}
		if phase < prevPhase {
			events = append(events, MonthEvent{
				Date:        date,
				Type:        EventNewMoon,
				Description: fmt.Sprintf("New Moon in %s", moonSign),
				Impact:      ImpactPositive,
				Emoji:       "\U0001f311",
			})
		}
		prevPhase = phase

		for _, p := range s.resolvePositions(day) {
			if p.Name != Moon && p.Sign != prevSign[p.Name] {
				impact := ImpactNeutral
				if slowBodies[p.Name] {
					impact = ImpactSignificant
				}
				events = append(events, MonthEvent{
					Date:        date,
					Type:        EventIngress,
					Description: fmt.Sprintf("%s enters %s", p.Name, p.Sign),
					Impact:      impact,
					Emoji:       "✨",
				})
			}
			if p.Retrograde != prevRetro[p.Name] {
				events = append(events, stationEvent(date, p))
			}
			prevSign[p.Name] = p.Sign
			prevRetro[p.Name] = p.Retrograde
		}
	}
	return events
}

func stationEvent(date string, p PlanetPosition) MonthEvent {
	if p.Retrograde {
		return MonthEvent{
			Date:        date,
			Type:        EventRetrograde,
			Description: fmt.Sprintf("%s stations retrograde", p.Name),
			Impact:      ImpactChallenging,
			Emoji:       "⏪",
		}
	}
	return MonthEvent{
		Date:        date,
		Type:        EventDirect,
		Description: fmt.Sprintf("%s stations direct", p.Name),
		Impact:      ImpactChallenging,
		Emoji:       "⏩",
	}
}
