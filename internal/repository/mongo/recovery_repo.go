package mongo

import (
	"context"
	"errors"
	"time"

	"vigor/fitness-app/internal/domain"
	"vigor/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recoveryCollectionName = "muscle_recovery"

// mongoRecoveryRepository implements repository.RecoveryRepository
type mongoRecoveryRepository struct {
	collection *mongo.Collection
}

// NewMongoRecoveryRepository creates a new recovery state repository.
func NewMongoRecoveryRepository(db *mongo.Database) repository.RecoveryRepository {
	return &mongoRecoveryRepository{
		collection: db.Collection(recoveryCollectionName),
	}
}

// Upsert writes the recovery state keyed by (userId, muscleGroup).
// Concurrent writes for the same key resolve as last write wins, which is
// what "latest observed stimulus" semantics want.
func (r *mongoRecoveryRepository) Upsert(ctx context.Context, state *domain.MuscleRecoveryState) error {
	if state.UserID == primitive.NilObjectID || state.MuscleGroup == "" {
		return errors.New("recovery state requires userId and muscleGroup")
	}

	now := time.Now().UTC()
	filter := bson.M{"userId": state.UserID, "muscleGroup": state.MuscleGroup}
	updateDoc := bson.M{
		"$set": bson.M{
			"lastWorkedAt":            state.LastWorkedAt,
			"lastSessionSets":         state.LastSessionSets,
			"lastSessionRpe":          state.LastSessionRPE,
			"setsAccumulatedThisWeek": state.SetsAccumulatedThisWeek,
			"weekStart":               state.WeekStart,
			"updatedAt":               now,
		},
		"$setOnInsert": bson.M{
			"userId":      state.UserID,
			"muscleGroup": state.MuscleGroup,
			"createdAt":   now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, updateDoc, opts)
	return err
}

// Get retrieves the state for one (user, muscle group) pair.
func (r *mongoRecoveryRepository) Get(ctx context.Context, userID primitive.ObjectID, group domain.MuscleGroup) (*domain.MuscleRecoveryState, error) {
	var state domain.MuscleRecoveryState
	filter := bson.M{"userId": userID, "muscleGroup": group}

	err := r.collection.FindOne(ctx, filter).Decode(&state)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &state, nil
}

// GetAllForUser retrieves every tracked muscle group for a user.
func (r *mongoRecoveryRepository) GetAllForUser(ctx context.Context, userID primitive.ObjectID) ([]domain.MuscleRecoveryState, error) {
	var states []domain.MuscleRecoveryState
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "muscleGroup", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &states); err != nil {
		return nil, err
	}
	// Return empty slice if nothing tracked yet
	return states, nil
}

// EnsureRecoveryIndexes creates necessary indexes. Call during startup.
func EnsureRecoveryIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// One document per (user, muscle group); also the upsert key
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "muscleGroup", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
