//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/bootstrap"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/astro"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/auth"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/reading"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/infra/config"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/infra/ephemeris/meeus"
	httpiface "github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/interface/http"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAstroConfig,
		provideAuthConfig,
		provideReadingConfig,
		provideReadingRepository,
		provideReadingStore,
		provideReadingPhaseSource,
		meeus.New,
		astro.NewService,
		reading.NewService,
		auth.NewService,
		wire.Bind(new(astro.Ephemeris), new(*meeus.Ephemeris)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
