package service

import (
	"context"
	"errors"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Service Interface ---

// CoachService covers the coach's account-management duties: listing
// the club's athletes and validating or rejecting new registrations.
type CoachService interface {
	ActiveAthletes(ctx context.Context, actor Actor) ([]domain.Athlete, error)
	PendingAthletes(ctx context.Context, actor Actor) ([]domain.Athlete, error)
	ValidateAthlete(ctx context.Context, actor Actor, athleteID primitive.ObjectID) error
	RejectAthlete(ctx context.Context, actor Actor, athleteID primitive.ObjectID) error
}

// --- Service Implementation ---

type coachService struct {
	athleteRepo repository.AthleteRepository
}

// NewCoachService creates a new instance of coachService.
func NewCoachService(athleteRepo repository.AthleteRepository) CoachService {
	return &coachService{athleteRepo: athleteRepo}
}

// ActiveAthletes lists the coach's club athletes whose accounts have
// been validated.
func (s *coachService) ActiveAthletes(ctx context.Context, actor Actor) ([]domain.Athlete, error) {
	return s.athleteRepo.GetByClub(ctx, actor.Club, domain.RoleAthlete, true)
}

// PendingAthletes lists registrations awaiting coach validation.
func (s *coachService) PendingAthletes(ctx context.Context, actor Actor) ([]domain.Athlete, error) {
	return s.athleteRepo.GetByClub(ctx, actor.Club, domain.RoleAthlete, false)
}

// checkClub ensures the account exists and belongs to the coach's club.
func (s *coachService) checkClub(ctx context.Context, actor Actor, athleteID primitive.ObjectID) error {
	athlete, err := s.athleteRepo.GetByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAthleteNotFound
		}
		return err
	}
	if athlete.Club != actor.Club {
		return ErrAccessDenied
	}
	return nil
}

// ValidateAthlete activates a pending registration.
func (s *coachService) ValidateAthlete(ctx context.Context, actor Actor, athleteID primitive.ObjectID) error {
	if err := s.checkClub(ctx, actor, athleteID); err != nil {
		return err
	}
	return s.athleteRepo.SetActive(ctx, athleteID, true)
}

// RejectAthlete removes a pending registration.
func (s *coachService) RejectAthlete(ctx context.Context, actor Actor, athleteID primitive.ObjectID) error {
	if err := s.checkClub(ctx, actor, athleteID); err != nil {
		return err
	}
	return s.athleteRepo.Delete(ctx, athleteID)
}
