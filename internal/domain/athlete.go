package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

const (
	RoleAthlete Role = "athlete"
	RoleCoach   Role = "coach"
)

// Athlete represents a club member account (either an athlete recording
// sessions or a coach reviewing them).
type Athlete struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"` // Should be unique
	Club      string             `bson:"club" json:"club"`
	Role      Role               `bson:"role" json:"role"`
	Active    bool               `bson:"active" json:"active"` // Coach-validated accounts only
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (a *Athlete) IsCoach() bool {
	return a.Role == RoleCoach
}

func (a *Athlete) IsAthlete() bool {
	return a.Role == RoleAthlete
}
