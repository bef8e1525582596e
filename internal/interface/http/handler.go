package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/astro"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/internal/domain/reading"
	apperrors "github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/pkg/errors"
	"github.com/Shubhamkis196200/VEYa-AI-Astrology-sub001/pkg/util"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	astroSvc   astro.Service
	readingSvc reading.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(astroSvc astro.Service, readingSvc reading.Service, logger *slog.Logger) *Handler {
	return &Handler{
		astroSvc:   astroSvc,
		readingSvc: readingSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

type aspectsRequest struct {
	At    string                 `json:"at"`
	Natal []astro.PlanetPosition `json:"natal"`
}

type summaryRequest struct {
	At    string                 `json:"at"`
	Natal []astro.PlanetPosition `json:"natal"`
}

type transitsResponse struct {
	Date      string                 `json:"date"`
	Positions []astro.PlanetPosition `json:"positions"`
}

type calendarResponse struct {
	Year   int                `json:"year"`
	Month  int                `json:"month"`
	Events []astro.MonthEvent `json:"events"`
}

// Health reports liveness for load balancer probes.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Transits returns the position of every tracked body at the requested instant.
func (h *Handler) Transits(c *gin.Context) {
	at, httpErr := parseInstant(c.Query("at"))
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	positions := h.astroSvc.CurrentTransits(at)
	c.JSON(http.StatusOK, transitsResponse{
		Date:      at.Format(time.RFC3339),
		Positions: positions,
	})
}

// MoonPhase returns the lunar phase snapshot at the requested instant.
func (h *Handler) MoonPhase(c *gin.Context) {
	at, httpErr := parseInstant(c.Query("at"))
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	c.JSON(http.StatusOK, h.astroSvc.MoonPhase(at))
}

// Aspects matches the sky at the requested instant against the supplied
// natal positions.
func (h *Handler) Aspects(c *gin.Context) {
	var req aspectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if len(req.Natal) == 0 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "natal positions are required", nil))
		return
	}
	at, httpErr := parseInstant(req.At)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	transits := h.astroSvc.CurrentTransits(at)
	aspects := h.astroSvc.Aspects(transits, req.Natal)
	c.JSON(http.StatusOK, gin.H{"aspects": aspects})
}

// DailySummary returns the full transit summary, optionally personalized
// with natal positions.
func (h *Handler) DailySummary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	at, httpErr := parseInstant(req.At)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	c.JSON(http.StatusOK, h.astroSvc.DailySummary(at, req.Natal))
}

// Calendar lists the notable astrological events of one month.
func (h *Handler) Calendar(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "year must be a positive integer", err))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "month must be between 1 and 12", err))
		return
	}

	events := h.astroSvc.MonthEvents(year, time.Month(month))
	c.JSON(http.StatusOK, calendarResponse{Year: year, Month: month, Events: events})
}

// Reading serves the deterministic daily reading for one sign and date.
func (h *Handler) Reading(c *gin.Context) {
	sign := c.Param("sign")
	date := c.Param("date")
	if claims, ok := getClaims(c); ok {
		h.logger.Debug("reading requested", "userId", claims.UserID, "sign", sign, "date", date)
	}

	result, err := h.readingSvc.DailyReading(c.Request.Context(), sign, date)
	if err != nil {
		status := http.StatusInternalServerError
		code := "reading_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseInstant resolves an optional RFC 3339 timestamp, defaulting to now.
func parseInstant(raw string) (time.Time, *HTTPError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return util.NowUTC(), nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, NewHTTPError(http.StatusBadRequest, "invalid_request", "at must be an RFC 3339 timestamp", err)
	}
	return at.UTC(), nil
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
