package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/service"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/stats"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatsHandler holds the statistics service dependency.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// parseStatsQuery reads the common scope-selection query parameters:
// period (defaults to week), ref / start / end as YYYY-MM-DD, and an
// optional athleteId for coaches.
func parseStatsQuery(c *gin.Context) (service.StatsQuery, error) {
	q := service.StatsQuery{
		Period:    stats.Period(c.DefaultQuery("period", string(stats.PeriodWeek))),
		Reference: time.Now().UTC(),
	}

	if ref := c.Query("ref"); ref != "" {
		t, err := time.Parse(domain.DateLayout, ref)
		if err != nil {
			return q, errors.New("ref must be formatted YYYY-MM-DD")
		}
		q.Reference = t
	}

	if q.Period == stats.PeriodCustom {
		start, err := time.Parse(domain.DateLayout, c.Query("start"))
		if err != nil {
			return q, errors.New("custom period requires start formatted YYYY-MM-DD")
		}
		end, err := time.Parse(domain.DateLayout, c.Query("end"))
		if err != nil {
			return q, errors.New("custom period requires end formatted YYYY-MM-DD")
		}
		if end.Before(start) {
			return q, errors.New("custom period end is before start")
		}
		q.CustomStart = start
		q.CustomEnd = end
	}

	if athleteID := c.Query("athleteId"); athleteID != "" {
		id, err := primitive.ObjectIDFromHex(athleteID)
		if err != nil {
			return q, errors.New("athleteId must be a valid object ID")
		}
		q.AthleteID = id
	}

	return q, nil
}

// handleServiceError maps service sentinels to HTTP status codes.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAthleteNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSessionNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidPeriod),
		errors.Is(err, service.ErrInvalidWeek),
		errors.Is(err, service.ErrSessionValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// GetDisciplineBreakdown godoc
// @Summary Per-discipline statistics for a scope
// @Description Distribution of the target athlete's sessions across disciplines inside the requested period, plus the totals table.
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param period query string false "day|week|month|year|custom (default week)"
// @Param ref query string false "reference date YYYY-MM-DD (default today)"
// @Param athleteId query string false "target athlete (coaches only)"
// @Success 200 {object} service.DisciplineBreakdown
// @Router /stats/disciplines [get]
func (h *StatsHandler) GetDisciplineBreakdown(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	q, err := parseStatsQuery(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	breakdown, err := h.statsService.DisciplineBreakdown(c.Request.Context(), actor, q)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// GetDailyRPE godoc
// @Summary Daily average RPE time series
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {array} stats.DailyRPE
// @Router /stats/daily-rpe [get]
func (h *StatsHandler) GetDailyRPE(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	q, err := parseStatsQuery(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	series, err := h.statsService.DailyRPE(c.Request.Context(), actor, q)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetSeasonOverview godoc
// @Summary Dense discipline-by-week matrix for a year
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param year query int false "calendar year (default current)"
// @Param athleteId query string false "target athlete (coaches only)"
// @Success 200 {object} service.SeasonOverview
// @Router /stats/season [get]
func (h *StatsHandler) GetSeasonOverview(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	year, athleteID, err := parseSeasonParams(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	overview, err := h.statsService.SeasonOverview(c.Request.Context(), actor, athleteID, year)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetWeekSummary godoc
// @Summary Named roll-up for one focused week
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param year query int false "calendar year (default current)"
// @Param week query int true "ISO week index"
// @Param foldCombinedRun query bool false "fold Laser Run distance into the running total (default true)"
// @Success 200 {object} stats.WeekSummary
// @Router /stats/week-summary [get]
func (h *StatsHandler) GetWeekSummary(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	year, athleteID, err := parseSeasonParams(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	week, err := strconv.Atoi(c.Query("week"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "week must be an integer")
		return
	}
	foldCombinedRun := true
	if raw := c.Query("foldCombinedRun"); raw != "" {
		foldCombinedRun, err = strconv.ParseBool(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "foldCombinedRun must be a boolean")
			return
		}
	}

	summary, err := h.statsService.WeekSummary(c.Request.Context(), actor, athleteID, year, week, foldCombinedRun)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetDashboard godoc
// @Summary Current-week roll-up for the authenticated athlete
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} stats.CurrentWeekSummary
// @Router /stats/dashboard [get]
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	summary, err := h.statsService.Dashboard(c.Request.Context(), actor)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func parseSeasonParams(c *gin.Context) (int, primitive.ObjectID, error) {
	year := time.Now().UTC().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, primitive.NilObjectID, errors.New("year must be an integer")
		}
		year = parsed
	}

	athleteID := primitive.NilObjectID
	if raw := c.Query("athleteId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return 0, primitive.NilObjectID, errors.New("athleteId must be a valid object ID")
		}
		athleteID = id
	}
	return year, athleteID, nil
}
