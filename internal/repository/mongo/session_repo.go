package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "training_sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new TrainingSession repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Create inserts a single training session.
func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.TrainingSession) (primitive.ObjectID, error) {
	if session.AthleteID == primitive.NilObjectID || session.Discipline == "" || session.Date == "" {
		return primitive.NilObjectID, errors.New("session requires athleteId, discipline, and date")
	}
	session.ID = primitive.NewObjectID()
	session.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted session ID")
	}
	return insertedID, nil
}

// CreateMany inserts a batch of sessions and returns the number
// inserted. Used by the season simulator, which writes thousands of
// rows in chunks.
func (r *mongoSessionRepository) CreateMany(ctx context.Context, sessions []domain.TrainingSession) (int, error) {
	if len(sessions) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(sessions))
	for i := range sessions {
		if sessions[i].ID == primitive.NilObjectID {
			sessions[i].ID = primitive.NewObjectID()
		}
		if sessions[i].CreatedAt.IsZero() {
			sessions[i].CreatedAt = now
		}
		docs[i] = sessions[i]
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		if result != nil {
			// Partial failure: report what actually made it in.
			return len(result.InsertedIDs), err
		}
		return 0, err
	}
	return len(result.InsertedIDs), nil
}

// GetByID retrieves a single session by its ID.
func (r *mongoSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingSession, error) {
	var session domain.TrainingSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// GetByAthleteID retrieves the full session collection of one athlete,
// sorted by date ascending. Scope filtering happens in the statistics
// core, not here.
func (r *mongoSessionRepository) GetByAthleteID(ctx context.Context, athleteID primitive.ObjectID) ([]domain.TrainingSession, error) {
	var sessions []domain.TrainingSession
	filter := bson.M{"athleteId": athleteID}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	// Return empty slice if no sessions found
	return sessions, nil
}

// Delete removes a session, ensuring the session belongs to the given
// athlete.
func (r *mongoSessionRepository) Delete(ctx context.Context, id, athleteID primitive.ObjectID) error {
	if id == primitive.NilObjectID || athleteID == primitive.NilObjectID {
		return errors.New("session ID and athlete ID are required for deletion")
	}

	// Filter ensures the session exists AND belongs to the athlete.
	filter := bson.M{
		"_id":       id,
		"athleteId": athleteID,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		// Session not found OR not owned by this athlete.
		return repository.ErrNotFound
	}
	return nil
}

// EnsureSessionIndexes creates necessary indexes. Call during startup.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// The stats snapshot fetch: all sessions of one athlete by date.
			Keys:    bson.D{{Key: "athleteId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "discipline", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
