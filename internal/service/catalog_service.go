package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"vigor/fitness-app/internal/domain"
	"vigor/fitness-app/internal/repository" // Import repository package
	"vigor/fitness-app/internal/storage"

	"github.com/google/uuid" // For generating unique identifiers for S3 keys
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("exercise validation failed")
	ErrNoDemoVideo      = errors.New("exercise has no demo video")
	ErrUploadURLError   = errors.New("failed to generate upload URL")
	ErrDownloadURLError = errors.New("failed to generate download URL")
)

// CatalogUploadURLResponse carries a presigned PUT URL and the object key
// the coach must report back when attaching the video to the exercise.
type CatalogUploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// CatalogService manages the exercise catalog: coach-side CRUD plus
// presigned URLs for demonstration videos. The recommendation engine
// reads the catalog through the repository directly; this service is the
// management surface.
type CatalogService interface {
	CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID primitive.ObjectID) error

	// Demo video handling
	RequestDemoUploadURL(ctx context.Context, exerciseID primitive.ObjectID, contentType string) (*CatalogUploadURLResponse, error)
	AttachDemoVideo(ctx context.Context, exerciseID primitive.ObjectID, objectKey string) (*domain.Exercise, error)
	GetDemoVideoURL(ctx context.Context, exerciseID primitive.ObjectID) (string, error)
}

// catalogService implements the CatalogService interface.
type catalogService struct {
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.FileStorage
}

// NewCatalogService creates a new instance of catalogService.
func NewCatalogService(exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage) CatalogService {
	return &catalogService{
		exerciseRepo: exerciseRepo,
		fileStorage:  fileStorage,
	}
}

// CreateExercise handles the creation of a new catalog entry.
func (s *catalogService) CreateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if err := validateExercise(exercise); err != nil {
		return nil, err
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, err
	}
	// Fetch again so DB-populated timestamps come back with the result.
	return s.exerciseRepo.GetByID(ctx, exerciseID)
}

// GetExerciseByID retrieves a single catalog entry.
func (s *catalogService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err // Propagate other repository errors
	}
	return exercise, nil
}

// ListExercises retrieves the whole catalog.
func (s *catalogService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// UpdateExercise overwrites an existing catalog entry.
func (s *catalogService) UpdateExercise(ctx context.Context, exercise *domain.Exercise) (*domain.Exercise, error) {
	if exercise.ID == primitive.NilObjectID {
		return nil, errors.New("exercise ID is required")
	}
	if err := validateExercise(exercise); err != nil {
		return nil, err
	}

	existing, err := s.exerciseRepo.GetByID(ctx, exercise.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	// The demo video is attached through its own flow; keep the stored key.
	exercise.DemoObjectKey = existing.DemoObjectKey

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return s.exerciseRepo.GetByID(ctx, exercise.ID)
}

// DeleteExercise removes a catalog entry and its demo video, if any.
func (s *catalogService) DeleteExercise(ctx context.Context, exerciseID primitive.ObjectID) error {
	if exerciseID == primitive.NilObjectID {
		return errors.New("exercise ID is required")
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}

	if err := s.exerciseRepo.Delete(ctx, exerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}

	// Best effort: the catalog entry is already gone, a leaked object is
	// acceptable and logged by the storage layer.
	if exercise.DemoObjectKey != "" {
		_ = s.fileStorage.DeleteObject(ctx, exercise.DemoObjectKey)
	}
	return nil
}

// RequestDemoUploadURL generates a presigned PUT URL for a coach to
// upload a demonstration video for an exercise.
func (s *catalogService) RequestDemoUploadURL(ctx context.Context, exerciseID primitive.ObjectID, contentType string) (*CatalogUploadURLResponse, error) {
	if contentType == "" || !strings.HasPrefix(strings.ToLower(contentType), "video/") {
		return nil, errors.New("invalid or missing video content type")
	}

	if _, err := s.GetExerciseByID(ctx, exerciseID); err != nil {
		return nil, err
	}

	uniqueID := uuid.NewString()
	fileExtension := ""
	parts := strings.Split(contentType, "/")
	if len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("exercise-demos", exerciseID.Hex(), fmt.Sprintf("%s.%s", uniqueID, fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &CatalogUploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
	}, nil
}

// AttachDemoVideo records the uploaded object key on the exercise,
// replacing (and deleting) any previous video.
func (s *catalogService) AttachDemoVideo(ctx context.Context, exerciseID primitive.ObjectID, objectKey string) (*domain.Exercise, error) {
	if objectKey == "" {
		return nil, errors.New("object key is required")
	}

	exercise, err := s.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	previousKey := exercise.DemoObjectKey
	exercise.DemoObjectKey = objectKey
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return nil, err
	}

	if previousKey != "" && previousKey != objectKey {
		_ = s.fileStorage.DeleteObject(ctx, previousKey)
	}
	return exercise, nil
}

// GetDemoVideoURL returns a temporary download URL for an exercise's
// demonstration video.
func (s *catalogService) GetDemoVideoURL(ctx context.Context, exerciseID primitive.ObjectID) (string, error) {
	exercise, err := s.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return "", err
	}
	if exercise.DemoObjectKey == "" {
		return "", ErrNoDemoVideo
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, exercise.DemoObjectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", ErrDownloadURLError
	}
	return url, nil
}

func validateExercise(exercise *domain.Exercise) error {
	if exercise.Name == "" {
		return ErrValidationFailed
	}
	if !domain.IsValidMuscleGroup(string(exercise.MuscleGroup)) {
		return ErrValidationFailed
	}
	switch exercise.Category {
	case domain.CategoryCompound, domain.CategoryIsolation, domain.CategoryAccessory,
		domain.CategoryFinisher, domain.CategoryMobility, domain.CategoryStretch:
	default:
		return ErrValidationFailed
	}
	if exercise.CaloriesPerMinute < 0 {
		return ErrValidationFailed
	}
	return nil
}
