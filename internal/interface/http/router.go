package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/auth"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		errorHandlingMiddleware(handler.logger),
		corsMiddleware(cfg.HTTP.CORS.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	if cfg.Auth.Enabled {
		api.Use(authMiddleware(authSvc))
	}
	{
		api.GET("/transits", handler.Transits)
		api.GET("/moon", handler.MoonPhase)
		api.POST("/aspects", handler.Aspects)
		api.POST("/summary", handler.DailySummary)
		api.GET("/calendar/:year/:month", handler.Calendar)
		api.GET("/readings/:sign/:date", handler.Reading)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "request_id", requestID(c), "latency_ms", latency.Milliseconds())
	}
}
