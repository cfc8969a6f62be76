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

const readinessCollectionName = "readiness_logs"

// mongoReadinessRepository implements repository.ReadinessRepository
type mongoReadinessRepository struct {
	collection *mongo.Collection
}

// NewMongoReadinessRepository creates a new readiness log repository.
func NewMongoReadinessRepository(db *mongo.Database) repository.ReadinessRepository {
	return &mongoReadinessRepository{
		collection: db.Collection(readinessCollectionName),
	}
}

// Create appends a new readiness log. Logs are never updated in place:
// the newest entry for a day is the authoritative one.
func (r *mongoReadinessRepository) Create(ctx context.Context, log *domain.ReadinessLog) (primitive.ObjectID, error) {
	if log.UserID == primitive.NilObjectID || log.Day == "" {
		return primitive.NilObjectID, errors.New("readiness log requires userId and day")
	}

	log.ID = primitive.NewObjectID()
	log.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted readiness log ID")
	}
	return insertedID, nil
}

// GetLatestForDay returns the newest log for the given calendar day.
func (r *mongoReadinessRepository) GetLatestForDay(ctx context.Context, userID primitive.ObjectID, day string) (*domain.ReadinessLog, error) {
	var log domain.ReadinessLog
	filter := bson.M{"userId": userID, "day": day}
	findOptions := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	err := r.collection.FindOne(ctx, filter, findOptions).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// GetSince returns logs from the given day onward, newest first.
func (r *mongoReadinessRepository) GetSince(ctx context.Context, userID primitive.ObjectID, fromDay string) ([]domain.ReadinessLog, error) {
	var logs []domain.ReadinessLog
	filter := bson.M{"userId": userID, "day": bson.M{"$gte": fromDay}}
	findOptions := options.Find().SetSort(bson.D{{Key: "day", Value: -1}, {Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// EnsureReadinessIndexes creates necessary indexes. Call during startup.
func EnsureReadinessIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Day lookups and trailing-window queries
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "day", Value: -1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
