package service

import (
	"context"
	"strings"
	"time"

	"vigor/fitness-app/internal/domain"
	"vigor/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes shared by the service tests. They mirror
// the query semantics of the Mongo implementations closely enough for
// the services not to notice the difference.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	user.ID = id
	copied := *user
	r.users[id] = &copied
	return id, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type recoveryKey struct {
	userID primitive.ObjectID
	group  domain.MuscleGroup
}

type fakeRecoveryRepo struct {
	states map[recoveryKey]*domain.MuscleRecoveryState
}

func newFakeRecoveryRepo() *fakeRecoveryRepo {
	return &fakeRecoveryRepo{states: make(map[recoveryKey]*domain.MuscleRecoveryState)}
}

func (r *fakeRecoveryRepo) Upsert(_ context.Context, state *domain.MuscleRecoveryState) error {
	copied := *state
	r.states[recoveryKey{state.UserID, state.MuscleGroup}] = &copied
	return nil
}

func (r *fakeRecoveryRepo) Get(_ context.Context, userID primitive.ObjectID, group domain.MuscleGroup) (*domain.MuscleRecoveryState, error) {
	if st, ok := r.states[recoveryKey{userID, group}]; ok {
		copied := *st
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeRecoveryRepo) GetAllForUser(_ context.Context, userID primitive.ObjectID) ([]domain.MuscleRecoveryState, error) {
	var out []domain.MuscleRecoveryState
	for key, st := range r.states {
		if key.userID == userID {
			out = append(out, *st)
		}
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions []domain.TrainingSession
}

func (r *fakeSessionRepo) Create(_ context.Context, session *domain.TrainingSession) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	session.ID = id
	r.sessions = append(r.sessions, *session)
	return id, nil
}

func (r *fakeSessionRepo) GetRecent(_ context.Context, userID primitive.ObjectID, limit int64) ([]domain.TrainingSession, error) {
	var out []domain.TrainingSession
	for i := len(r.sessions) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		if r.sessions[i].UserID == userID {
			out = append(out, r.sessions[i])
		}
	}
	return out, nil
}

type fakeReadinessRepo struct {
	logs []domain.ReadinessLog
}

func (r *fakeReadinessRepo) Create(_ context.Context, log *domain.ReadinessLog) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	log.ID = id
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	r.logs = append(r.logs, *log)
	return id, nil
}

func (r *fakeReadinessRepo) GetLatestForDay(_ context.Context, userID primitive.ObjectID, day string) (*domain.ReadinessLog, error) {
	for i := len(r.logs) - 1; i >= 0; i-- {
		if r.logs[i].UserID == userID && r.logs[i].Day == day {
			copied := r.logs[i]
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeReadinessRepo) GetSince(_ context.Context, userID primitive.ObjectID, fromDay string) ([]domain.ReadinessLog, error) {
	var out []domain.ReadinessLog
	for i := len(r.logs) - 1; i >= 0; i-- {
		if r.logs[i].UserID == userID && r.logs[i].Day >= fromDay {
			out = append(out, r.logs[i])
		}
	}
	return out, nil
}

type fakeExerciseRepo struct {
	exercises []domain.Exercise
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	exercise.ID = id
	r.exercises = append(r.exercises, *exercise)
	return id, nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	for i := range r.exercises {
		if r.exercises[i].ID == id {
			copied := r.exercises[i]
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeExerciseRepo) List(_ context.Context) ([]domain.Exercise, error) {
	return append([]domain.Exercise(nil), r.exercises...), nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	for i := range r.exercises {
		if r.exercises[i].ID == exercise.ID {
			r.exercises[i] = *exercise
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range r.exercises {
		if r.exercises[i].ID == id {
			r.exercises = append(r.exercises[:i], r.exercises[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeExerciseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.exercises)), nil
}

// FindCandidates mirrors the Mongo query: difficulty caps at novice for
// novices, everything for advanced, novice+medium otherwise.
func (r *fakeExerciseRepo) FindCandidates(_ context.Context, groups []domain.MuscleGroup, categories []domain.ExerciseCategory, maxDifficulty domain.FitnessLevel) ([]domain.Exercise, error) {
	allowed := map[domain.FitnessLevel]bool{domain.LevelNovice: true}
	switch maxDifficulty {
	case domain.LevelNovice:
	case domain.LevelAdvanced:
		allowed[domain.LevelMedium] = true
		allowed[domain.LevelAdvanced] = true
	default:
		allowed[domain.LevelMedium] = true
	}

	groupSet := make(map[domain.MuscleGroup]bool, len(groups))
	for _, g := range groups {
		groupSet[g] = true
	}
	categorySet := make(map[domain.ExerciseCategory]bool, len(categories))
	for _, c := range categories {
		categorySet[c] = true
	}

	var out []domain.Exercise
	for _, ex := range r.exercises {
		if len(groups) > 0 && !groupSet[ex.MuscleGroup] {
			continue
		}
		if len(categories) > 0 && !categorySet[ex.Category] {
			continue
		}
		if !allowed[ex.Difficulty] {
			continue
		}
		out = append(out, ex)
	}
	return out, nil
}
