package stats

import (
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilterSessions narrows the full session collection to the sessions
// belonging to athleteID whose date falls inside scope, bounds
// included.
//
// A zero athleteID means no subject is selected (a coach has not picked
// an athlete yet); that is a valid state and yields an empty subset,
// not an error. Sessions with malformed dates are excluded.
func FilterSessions(all []domain.TrainingSession, athleteID primitive.ObjectID, scope Scope) []domain.TrainingSession {
	if athleteID.IsZero() {
		return nil
	}

	var subset []domain.TrainingSession
	for _, s := range all {
		if s.AthleteID != athleteID {
			continue
		}
		day, ok := s.Day()
		if !ok {
			continue
		}
		if scope.Contains(day) {
			subset = append(subset, s)
		}
	}
	return subset
}
