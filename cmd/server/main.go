package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/api"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/config"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/repository/mongo"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/service"
	"github.com/gin-gonic/gin"
)

// @title PentaTrack API
// @version 1.0
// @description Training log and statistics API for a modern pentathlon club.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting PentaTrack Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureSessionIndexes(ctx, appDB.Collection("training_sessions"))
		mongo.EnsureAthleteIndexes(ctx, appDB.Collection("athletes"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	sessionRepo := mongo.NewMongoSessionRepository(appDB)
	athleteRepo := mongo.NewMongoAthleteRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	statsService := service.NewStatsService(sessionRepo, athleteRepo)
	sessionService := service.NewSessionService(sessionRepo, athleteRepo)
	coachService := service.NewCoachService(athleteRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, statsService, sessionService, coachService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
