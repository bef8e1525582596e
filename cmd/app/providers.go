package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/astro"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/auth"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/reading"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/infra/config"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/infra/readingrepo"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/infra/readingstore"
)

func provideAstroConfig(cfg *config.Config) astro.Config {
	return astro.Config{
		TopAspects:        cfg.Engine.TopAspects,
		PhaseSearchWindow: time.Duration(cfg.Engine.PhaseSearchWindowDays) * 24 * time.Hour,
	}
}

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Enabled: cfg.Auth.Enabled,
		Secret:  cfg.Auth.Secret,
	}
}

func provideReadingConfig(cfg *config.Config) reading.Config {
	return reading.Config{
		CacheTTL: cfg.Reading.CacheTTL,
	}
}

func provideReadingPhaseSource(svc astro.Service) reading.PhaseSource {
	return svc
}

func provideReadingRepository(cfg *config.Config, logger *slog.Logger) reading.Repository {
	fallback := readingrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Reading.Postgres.DSN)
	if dsn == "" {
		logger.Info("reading postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Reading.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Reading.Postgres.MaxConns
	}
	if cfg.Reading.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Reading.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("reading postgres repository enabled")
	return readingrepo.NewPostgresRepository(pool)
}

func provideReadingStore(cfg *config.Config, logger *slog.Logger) reading.Store {
	if cfg.Reading.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return readingstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return readingstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("reading valkey store enabled", "addr", cfg.Reading.Valkey.Addr)
			return readingstore.NewValkeyStore(client, "reading")
		}
	}
	return readingstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Reading.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Reading.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Reading.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
