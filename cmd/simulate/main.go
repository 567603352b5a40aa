package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/config"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/repository/mongo"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/simulation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seeds a full training history for one athlete so the statistics
// screens have realistic data to render during development and demos.
func main() {
	var (
		athleteHex = flag.String("athlete", "", "target athlete ID (hex, required)")
		fromStr    = flag.String("from", "2023-09-01", "first day of the generated period (YYYY-MM-DD)")
		toStr      = flag.String("to", "", "last day of the generated period (YYYY-MM-DD, default today)")
		seed       = flag.Int64("seed", 0, "random seed (0 for a time-based seed)")
	)
	flag.Parse()

	athleteID, err := primitive.ObjectIDFromHex(*athleteHex)
	if err != nil {
		log.Fatalf("FATAL: -athlete must be a valid object ID: %v", err)
	}
	from, err := time.Parse(domain.DateLayout, *fromStr)
	if err != nil {
		log.Fatalf("FATAL: -from must be formatted YYYY-MM-DD: %v", err)
	}
	var to time.Time
	if *toStr != "" {
		to, err = time.Parse(domain.DateLayout, *toStr)
		if err != nil {
			log.Fatalf("FATAL: -to must be formatted YYYY-MM-DD: %v", err)
		}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	sessionRepo := mongo.NewMongoSessionRepository(dbClient.Database(cfg.Database.Name))

	log.Printf("Generating season for athlete %s (seed %d)...", athleteID.Hex(), *seed)
	sessions := simulation.GenerateSeason(simulation.Options{
		AthleteID: athleteID,
		From:      from,
		To:        to,
		Seed:      *seed,
	})
	log.Printf("Generated %d sessions.", len(sessions))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	inserted := 0
	for start := 0; start < len(sessions); start += simulation.ChunkSize {
		end := start + simulation.ChunkSize
		if end > len(sessions) {
			end = len(sessions)
		}
		n, err := sessionRepo.CreateMany(ctx, sessions[start:end])
		inserted += n
		if err != nil {
			log.Fatalf("FATAL: Insert failed after %d sessions: %v", inserted, err)
		}
	}
	log.Printf("Inserted %d sessions.", inserted)
}
