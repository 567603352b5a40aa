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

const athleteCollectionName = "athletes"

// mongoAthleteRepository implements repository.AthleteRepository
type mongoAthleteRepository struct {
	collection *mongo.Collection
}

// NewMongoAthleteRepository creates a new Athlete repository.
func NewMongoAthleteRepository(db *mongo.Database) repository.AthleteRepository {
	return &mongoAthleteRepository{
		collection: db.Collection(athleteCollectionName),
	}
}

// Create inserts a new club member account.
func (r *mongoAthleteRepository) Create(ctx context.Context, athlete *domain.Athlete) (primitive.ObjectID, error) {
	if athlete.Email == "" || athlete.Club == "" || athlete.Role == "" {
		return primitive.NilObjectID, errors.New("athlete requires email, club, and role")
	}
	athlete.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	athlete.CreatedAt = now
	athlete.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, athlete)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted athlete ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single account by its ID.
func (r *mongoAthleteRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error) {
	var athlete domain.Athlete
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&athlete)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &athlete, nil
}

// GetByClub lists accounts of one club filtered by role and active
// flag, sorted by name. Coaches use this both for the active athlete
// pickers and the pending-validation queue.
func (r *mongoAthleteRepository) GetByClub(ctx context.Context, club string, role domain.Role, active bool) ([]domain.Athlete, error) {
	var athletes []domain.Athlete
	filter := bson.M{"club": club, "role": role, "active": active}
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &athletes); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return athletes, nil
}

// SetActive flips the coach-validation flag of an account.
func (r *mongoAthleteRepository) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	if id == primitive.NilObjectID {
		return errors.New("athlete ID is required for update")
	}

	update := bson.M{
		"$set": bson.M{
			"active":    active,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an account (a rejected registration).
func (r *mongoAthleteRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if id == primitive.NilObjectID {
		return errors.New("athlete ID is required for deletion")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureAthleteIndexes creates necessary indexes. Call during startup.
func EnsureAthleteIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "club", Value: 1}, {Key: "role", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
