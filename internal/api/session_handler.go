package api

import (
	"net/http"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/service"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionHandler holds the session service dependency.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// --- DTOs ---

type createSessionRequest struct {
	Discipline      string   `json:"discipline" binding:"required"`
	Date            string   `json:"date" binding:"required"`
	DurationMinutes int      `json:"durationMinutes" binding:"min=0"`
	DistanceKm      *float64 `json:"distanceKm,omitempty"`
	RPE             int      `json:"rpe" binding:"required,min=1,max=10"`
	WorkTypes       []string `json:"workTypes,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Focus           string   `json:"focus,omitempty"`
}

type sessionResponse struct {
	ID              string   `json:"id"`
	AthleteID       string   `json:"athleteId"`
	Discipline      string   `json:"discipline"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	DistanceKm      *float64 `json:"distanceKm,omitempty"`
	RPE             int      `json:"rpe"`
	WorkTypes       []string `json:"workTypes,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Focus           string   `json:"focus,omitempty"`
}

func mapSessionToResponse(s *domain.TrainingSession) sessionResponse {
	return sessionResponse{
		ID:              s.ID.Hex(),
		AthleteID:       s.AthleteID.Hex(),
		Discipline:      string(s.Discipline),
		Date:            s.Date,
		DurationMinutes: s.DurationMinutes,
		DistanceKm:      s.DistanceKm,
		RPE:             s.RPE,
		WorkTypes:       s.WorkTypes,
		Notes:           s.Notes,
		Focus:           s.Focus,
	}
}

func mapSessionsToResponse(sessions []domain.TrainingSession) []sessionResponse {
	responses := make([]sessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, mapSessionToResponse(&sessions[i]))
	}
	return responses
}

// --- Handlers ---

// CreateSession godoc
// @Summary Record a training session
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body createSessionRequest true "Session details"
// @Success 201 {object} sessionResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	input := service.SessionInput{
		Discipline:      domain.Discipline(req.Discipline),
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		DistanceKm:      req.DistanceKm,
		RPE:             req.RPE,
		WorkTypes:       req.WorkTypes,
		Notes:           req.Notes,
		Focus:           req.Focus,
	}

	session, err := h.sessionService.RecordSession(c.Request.Context(), actor.ID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapSessionToResponse(session))
}

// ListSessions godoc
// @Summary List training sessions inside a scope
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param period query string false "day|week|month|year|custom (default week)"
// @Param ref query string false "reference date YYYY-MM-DD (default today)"
// @Param athleteId query string false "target athlete (coaches only)"
// @Success 200 {array} sessionResponse
// @Router /sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
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

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), actor, q)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSessionsToResponse(sessions))
}

// DeleteSession godoc
// @Summary Delete one of the athlete's own sessions
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Router /sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	sessionID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid session ID format.")
		return
	}

	if err := h.sessionService.DeleteSession(c.Request.Context(), actor.ID, sessionID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
