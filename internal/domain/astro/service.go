package astro

import (
	"log/slog"
	"time"
)

// retrogradeSampleStep is the finite-difference interval for motion
// direction. A body whose longitude slips backward over a day is
// retrograde.
const retrogradeSampleStep = 24 * time.Hour

const (
	defaultTopAspects        = 8
	defaultPhaseSearchWindow = 30 * 24 * time.Hour
)

// Config tunes summary depth and lunation search.
type Config struct {
	// TopAspects caps how many aspects a daily summary carries.
	TopAspects int
	// PhaseSearchWindow bounds the lookahead for the next full and new moon.
	PhaseSearchWindow time.Duration
}

func (c Config) withDefaults() Config {
	if c.TopAspects <= 0 {
		c.TopAspects = defaultTopAspects
	}
	if c.PhaseSearchWindow <= 0 {
		c.PhaseSearchWindow = defaultPhaseSearchWindow
	}
	return c
}

// Service exposes the astrological computation engine. Every operation is
// a pure function of its inputs and safe for concurrent use.
type Service interface {
	CurrentTransits(at time.Time) []PlanetPosition
	MoonPhase(at time.Time) LunarPhaseInfo
	Aspects(transits, natal []PlanetPosition) []TransitAspect
	DailySummary(at time.Time, natal []PlanetPosition) DailyTransitSummary
	MonthEvents(year int, month time.Month) []MonthEvent
}

type service struct {
	cfg    Config
	eph    Ephemeris
	logger *slog.Logger
}

// NewService wires the computation engine onto an ephemeris source.
func NewService(cfg Config, eph Ephemeris, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg.withDefaults(),
		eph:    eph,
		logger: logger.With("component", "astro.service"),
	}
}

func (s *service) CurrentTransits(at time.Time) []PlanetPosition {
	return s.resolvePositions(at)
}

func (s *service) MoonPhase(at time.Time) LunarPhaseInfo {
	return s.moonPhase(at)
}

func (s *service) Aspects(transits, natal []PlanetPosition) []TransitAspect {
	return matchAspects(transits, natal)
}

func (s *service) DailySummary(at time.Time, natal []PlanetPosition) DailyTransitSummary {
	positions := s.resolvePositions(at)
	phase := s.moonPhase(at)

	var aspects []TransitAspect
	if len(natal) > 0 {
		aspects = matchAspects(positions, natal)
		if len(aspects) > s.cfg.TopAspects {
			aspects = aspects[:s.cfg.TopAspects]
		}
	}

	weather, energy := buildWeather(positions, phase, aspects)
	s.logger.Debug("daily summary built", "at", at, "aspects", len(aspects), "energy", energy)
	return DailyTransitSummary{
		Date:          at.UTC().Format(time.RFC3339),
		Positions:     positions,
		MoonPhase:     phase,
		Aspects:       aspects,
		CosmicWeather: weather,
		EnergyLevel:   energy,
	}
}

func (s *service) MonthEvents(year int, month time.Month) []MonthEvent {
	events := s.monthEvents(year, month)
	s.logger.Debug("month scanned", "year", year, "month", int(month), "events", len(events))
	return events
}

func (s *service) resolvePositions(at time.Time) []PlanetPosition {
	out := make([]PlanetPosition, 0, len(trackedBodies))
	for _, body := range trackedBodies {
		lon := NormalizeDegrees(s.eph.Longitude(body, at))
		sign, degree, minute := Decompose(lon)

		retro := false
		if !isLuminary(body) {
			later := s.eph.Longitude(body, at.Add(retrogradeSampleStep))
			retro = SignedDelta(lon, later) < 0
		}

		out = append(out, PlanetPosition{
			Name:       body,
			Longitude:  lon,
			Sign:       sign,
			SignDegree: degree,
			SignMinute: minute,
			Retrograde: retro,
			Symbol:     bodySymbols[body],
		})
	}
	return out
}
