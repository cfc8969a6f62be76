package repository

import (
	"context"

	"vigor/fitness-app/internal/domain" // Import our defined domain models

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer (optional but good practice)
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
	// Add more specific errors as needed
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

// ExerciseRepository is the catalog's query surface. The recommendation
// selector only ever calls FindCandidates; the CRUD methods exist for
// coach-side catalog management and startup seeding.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	// FindCandidates returns exercises in any of the given categories that
	// target one of the muscle groups, capped at maxDifficulty. Equipment
	// filtering happens in the service layer: availability is a
	// request-time property, not a stored one.
	FindCandidates(ctx context.Context, groups []domain.MuscleGroup, categories []domain.ExerciseCategory, maxDifficulty domain.FitnessLevel) ([]domain.Exercise, error)
}

// RecoveryRepository stores one MuscleRecoveryState per (user, muscle group).
type RecoveryRepository interface {
	// Upsert writes the state keyed by (userId, muscleGroup); last write wins.
	Upsert(ctx context.Context, state *domain.MuscleRecoveryState) error
	Get(ctx context.Context, userID primitive.ObjectID, group domain.MuscleGroup) (*domain.MuscleRecoveryState, error)
	GetAllForUser(ctx context.Context, userID primitive.ObjectID) ([]domain.MuscleRecoveryState, error)
}

// ReadinessRepository appends daily check-ins and serves day/window queries.
type ReadinessRepository interface {
	Create(ctx context.Context, log *domain.ReadinessLog) (primitive.ObjectID, error)
	// GetLatestForDay returns the newest log for the given calendar day.
	GetLatestForDay(ctx context.Context, userID primitive.ObjectID, day string) (*domain.ReadinessLog, error)
	// GetSince returns logs from the given day onward, newest first.
	GetSince(ctx context.Context, userID primitive.ObjectID, fromDay string) ([]domain.ReadinessLog, error)
}

// SessionRepository persists completed workout sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.TrainingSession) (primitive.ObjectID, error)
	GetRecent(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.TrainingSession, error)
}
