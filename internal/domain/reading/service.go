package reading

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/astro"
	apperrors "github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/pkg/errors"
)

// Service exposes deterministic daily readings.
type Service interface {
	DailyReading(ctx context.Context, sign, date string) (GeneratedDailyReading, error)
}

// PhaseSource supplies the real lunar phase layered onto each reading.
type PhaseSource interface {
	MoonPhase(at time.Time) astro.LunarPhaseInfo
}

type service struct {
	cfg    Config
	repo   Repository
	store  Store
	phases PhaseSource
	logger *slog.Logger
}

// NewService wires up the reading domain.
func NewService(cfg Config, repo Repository, store Store, phases PhaseSource, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		store:  store,
		phases: phases,
		logger: logger.With("component", "reading.service"),
	}
}

// DailyReading returns the reading for a sign and date, serving cached
// copies when available. Generation is pure, so storage failures degrade
// to recomputation instead of failing the request.
func (s *service) DailyReading(ctx context.Context, sign, date string) (GeneratedDailyReading, error) {
	canonical, ok := astro.CanonicalSign(sign)
	if !ok {
		return GeneratedDailyReading{}, apperrors.Wrap("invalid_input", "unknown zodiac sign", nil)
	}
	day, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return GeneratedDailyReading{}, apperrors.Wrap("invalid_input", "date must be formatted as YYYY-MM-DD", err)
	}
	key := day.Format(dateLayout)

	if cached, found, err := s.store.Get(ctx, canonical, key); err != nil {
		s.logger.Warn("reading cache lookup failed", "error", err)
	} else if found {
		return cached, nil
	}

	if saved, found, err := s.repo.Find(ctx, canonical, key); err != nil {
		s.logger.Warn("reading repository lookup failed", "error", err)
	} else if found {
		if err := s.store.Set(ctx, saved, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("reading cache save failed", "error", err)
		}
		return saved, nil
	}

	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC)
	generated := buildReading(canonical, noon, s.phases.MoonPhase(noon).PhaseName)

	if err := s.repo.Save(ctx, generated); err != nil {
		s.logger.Warn("reading repository save failed", "error", err)
	}
	if err := s.store.Set(ctx, generated, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("reading cache save failed", "error", err)
	}
	s.logger.Info("daily reading generated", "sign", canonical, "date", key)
	return generated, nil
}
