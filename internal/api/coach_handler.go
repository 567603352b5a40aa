package api

import (
	"net/http"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/service"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CoachHandler holds the coach service dependency.
type CoachHandler struct {
	coachService service.CoachService
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(coachService service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

type athleteResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Club   string `json:"club"`
	Active bool   `json:"active"`
}

func mapAthletesToResponse(athletes []domain.Athlete) []athleteResponse {
	responses := make([]athleteResponse, 0, len(athletes))
	for _, a := range athletes {
		responses = append(responses, athleteResponse{
			ID:     a.ID.Hex(),
			Name:   a.Name,
			Email:  a.Email,
			Club:   a.Club,
			Active: a.Active,
		})
	}
	return responses
}

// GetAthletes godoc
// @Summary List the coach's club roster
// @Description Active athletes by default; pending=true lists athletes awaiting validation instead.
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Param pending query bool false "list pending athletes instead of active ones"
// @Success 200 {array} athleteResponse
// @Router /coach/athletes [get]
func (h *CoachHandler) GetAthletes(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var athletes []domain.Athlete
	if c.Query("pending") == "true" {
		athletes, err = h.coachService.PendingAthletes(c.Request.Context(), actor)
	} else {
		athletes, err = h.coachService.ActiveAthletes(c.Request.Context(), actor)
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapAthletesToResponse(athletes))
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetAthleteActive godoc
// @Summary Validate or reject a club athlete
// @Description active=true validates the athlete; active=false rejects and removes the pending account.
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Athlete ID"
// @Param body body setActiveRequest true "Desired state"
// @Success 204 "No Content"
// @Router /coach/athletes/{id}/active [patch]
func (h *CoachHandler) SetAthleteActive(c *gin.Context) {
	actor, err := getActorFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	athleteID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid athlete ID format.")
		return
	}

	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if *req.Active {
		err = h.coachService.ValidateAthlete(c.Request.Context(), actor, athleteID)
	} else {
		err = h.coachService.RejectAthlete(c.Request.Context(), actor, athleteID)
	}
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
