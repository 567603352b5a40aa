package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the canonical storage format for session dates. Day
// granularity only; the format is lexicographically sortable, which the
// daily RPE aggregation relies on.
const DateLayout = "2006-01-02"

// TrainingSession represents one recorded unit of training performed by
// an athlete in a single discipline.
type TrainingSession struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AthleteID       primitive.ObjectID `bson:"athleteId" json:"athleteId"`
	Discipline      Discipline         `bson:"discipline" json:"discipline"`
	Date            string             `bson:"date" json:"date"` // YYYY-MM-DD
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	DistanceKm      *float64           `bson:"distanceKm,omitempty" json:"distanceKm,omitempty"`
	RPE             int                `bson:"rpe" json:"rpe"` // 1-10 perceived exertion
	WorkTypes       []string           `bson:"workTypes,omitempty" json:"workTypes,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Focus           string             `bson:"focus,omitempty" json:"focus,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// Day parses the session date into a UTC midnight instant. The second
// return value is false when the stored date is malformed.
func (s *TrainingSession) Day() (time.Time, bool) {
	t, err := time.Parse(DateLayout, s.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Distance returns the recorded distance, or 0 when the session carries
// none. Missing distances contribute zero to aggregates, they are never
// skipped.
func (s *TrainingSession) Distance() float64 {
	if s.DistanceKm == nil {
		return 0
	}
	return *s.DistanceKm
}
