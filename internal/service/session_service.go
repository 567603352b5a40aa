package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/repository"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/stats"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionValidation = errors.New("session validation failed")
)

// SessionInput carries the fields an athlete records for one training
// session.
type SessionInput struct {
	Discipline      domain.Discipline
	Date            string // YYYY-MM-DD
	DurationMinutes int
	DistanceKm      *float64
	RPE             int
	WorkTypes       []string
	Notes           string
	Focus           string
}

// --- Service Interface ---
type SessionService interface {
	RecordSession(ctx context.Context, athleteID primitive.ObjectID, input SessionInput) (*domain.TrainingSession, error)
	ListSessions(ctx context.Context, actor Actor, q StatsQuery) ([]domain.TrainingSession, error)
	DeleteSession(ctx context.Context, athleteID, sessionID primitive.ObjectID) error
}

// --- Service Implementation ---

type sessionService struct {
	sessionRepo repository.SessionRepository
	athleteRepo repository.AthleteRepository
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(sessionRepo repository.SessionRepository, athleteRepo repository.AthleteRepository) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		athleteRepo: athleteRepo,
	}
}

// validateInput checks a session against the discipline profile table
// before it is persisted. The aggregation core tolerates bad records,
// but the entry path is where they are refused.
func validateInput(input SessionInput) error {
	profile, ok := domain.ProfileFor(input.Discipline)
	if !ok {
		return fmt.Errorf("%w: unknown discipline %q", ErrSessionValidation, input.Discipline)
	}
	if _, err := time.Parse(domain.DateLayout, input.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrSessionValidation)
	}
	if input.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration cannot be negative", ErrSessionValidation)
	}
	if input.RPE < 1 || input.RPE > 10 {
		return fmt.Errorf("%w: rpe must be between 1 and 10", ErrSessionValidation)
	}
	if input.DistanceKm != nil {
		if !profile.HasDistance {
			return fmt.Errorf("%w: discipline %q does not carry a distance", ErrSessionValidation, input.Discipline)
		}
		if *input.DistanceKm < 0 {
			return fmt.Errorf("%w: distance cannot be negative", ErrSessionValidation)
		}
	}
	for _, tag := range input.WorkTypes {
		if !domain.AllowsWorkType(input.Discipline, tag) {
			return fmt.Errorf("%w: work type %q not allowed for %q", ErrSessionValidation, tag, input.Discipline)
		}
	}
	return nil
}

// RecordSession validates and persists one training session for the
// athlete.
func (s *sessionService) RecordSession(ctx context.Context, athleteID primitive.ObjectID, input SessionInput) (*domain.TrainingSession, error) {
	if athleteID == primitive.NilObjectID {
		return nil, errors.New("athlete ID is required to record a session")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	session := &domain.TrainingSession{
		AthleteID:       athleteID,
		Discipline:      input.Discipline,
		Date:            input.Date,
		DurationMinutes: input.DurationMinutes,
		DistanceKm:      input.DistanceKm,
		RPE:             input.RPE,
		WorkTypes:       input.WorkTypes,
		Notes:           input.Notes,
		Focus:           input.Focus,
	}

	sessionID, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	return s.sessionRepo.GetByID(ctx, sessionID)
}

// ListSessions returns the scope-filtered sessions of the resolved
// target athlete, the same subset every aggregate view is computed
// over.
func (s *sessionService) ListSessions(ctx context.Context, actor Actor, q StatsQuery) ([]domain.TrainingSession, error) {
	if !stats.IsValidPeriod(q.Period) {
		return nil, ErrInvalidPeriod
	}

	target := actor.ID
	if actor.Role == domain.RoleCoach {
		if q.AthleteID == primitive.NilObjectID {
			return nil, nil
		}
		athlete, err := s.athleteRepo.GetByID(ctx, q.AthleteID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrAthleteNotFound
			}
			return nil, err
		}
		if athlete.Club != actor.Club {
			return nil, ErrAccessDenied
		}
		target = q.AthleteID
	}

	all, err := s.sessionRepo.GetByAthleteID(ctx, target)
	if err != nil {
		return nil, err
	}

	scope := stats.ResolveScope(q.Period, q.Reference, q.CustomStart, q.CustomEnd)
	return stats.FilterSessions(all, target, scope), nil
}

// DeleteSession removes one of the athlete's own sessions.
func (s *sessionService) DeleteSession(ctx context.Context, athleteID, sessionID primitive.ObjectID) error {
	if athleteID == primitive.NilObjectID || sessionID == primitive.NilObjectID {
		return errors.New("athlete ID and session ID are required")
	}

	err := s.sessionRepo.Delete(ctx, sessionID, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}
