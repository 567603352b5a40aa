package repository

import (
	"context"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SessionRepository defines the interface for interacting with training
// session data. The statistics core never talks to this layer: services
// fetch a full snapshot here and hand it to the pure aggregation
// functions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.TrainingSession) (primitive.ObjectID, error)
	CreateMany(ctx context.Context, sessions []domain.TrainingSession) (int, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSession, error)
	GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.TrainingSession, error)
	Delete(ctx context.Context, id, athleteID primitive.ObjectID) error // Ensure athlete owns the session
}

// AthleteRepository defines the interface for interacting with club
// member accounts.
type AthleteRepository interface {
	Create(ctx context.Context, athlete *domain.Athlete) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error)
	GetByClub(ctx context.Context, club string, role domain.Role, active bool) ([]domain.Athlete, error)
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
