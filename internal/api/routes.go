package api

import (
	"net/http"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/service"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	statsService service.StatsService,
	sessionService service.SessionService,
	coachService service.CoachService,
) {

	statsHandler := NewStatsHandler(statsService)
	sessionHandler := NewSessionHandler(sessionService)
	coachHandler := NewCoachHandler(coachService)

	router.Use(RequestIDMiddleware())

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			actor, err := getActorFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"userId": actor.ID.Hex(),
				"role":   actor.Role,
				"club":   actor.Club,
			})
		})

		// --- Session Routes ---
		sessionGroup := protected.Group("/sessions")
		{
			sessionGroup.GET("", sessionHandler.ListSessions)
			sessionGroup.POST("", RoleMiddleware(domain.RoleAthlete), sessionHandler.CreateSession)
			sessionGroup.DELETE("/:id", RoleMiddleware(domain.RoleAthlete), sessionHandler.DeleteSession)
		}

		// --- Stats Routes ---
		statsGroup := protected.Group("/stats")
		{
			statsGroup.GET("/disciplines", statsHandler.GetDisciplineBreakdown)
			statsGroup.GET("/daily-rpe", statsHandler.GetDailyRPE)
			statsGroup.GET("/season", statsHandler.GetSeasonOverview)
			statsGroup.GET("/week-summary", statsHandler.GetWeekSummary)
			statsGroup.GET("/dashboard", RoleMiddleware(domain.RoleAthlete), statsHandler.GetDashboard)
		}

		// --- Coach Routes ---
		coachGroup := protected.Group("/coach")
		coachGroup.Use(RoleMiddleware(domain.RoleCoach))
		{
			coachGroup.GET("/athletes", coachHandler.GetAthletes)
			coachGroup.PATCH("/athletes/:id/active", coachHandler.SetAthleteActive)
		}
	}
}
