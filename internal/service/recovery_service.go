package service

import (
	"context"
	"errors"
	"math"
	"time"

	"vigor/fitness-app/internal/domain"
	"vigor/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrInvalidSets        = errors.New("sets must be at least 1")
	ErrInvalidRPE         = errors.New("rpe must be between 0 and 10")
	ErrInvalidMuscleGroup = errors.New("unknown muscle group")
	ErrEmptySession       = errors.New("session must contain at least one muscle group entry")
)

const (
	// baseRecoveryHours is the recovery window for the reference session
	// (10 sets at RPE 7).
	baseRecoveryHours = 48.0
	// minRecoveryHours floors the estimate so that tiny sessions (1 set at
	// RPE 2) still produce a meaningful, positive recovery window.
	minRecoveryHours = 6
)

// RecoveryService is the recovery tracker: it records per-muscle-group
// training stimulus and derives recovery percentages at read time.
type RecoveryService interface {
	// RecordSession upserts the latest stimulus for one muscle group.
	RecordSession(ctx context.Context, userID primitive.ObjectID, group domain.MuscleGroup, sets int, rpe float64) (*domain.MuscleRecoveryState, error)
	// LogWorkout persists a completed session and fans its entries out
	// into per-muscle-group recovery records.
	LogWorkout(ctx context.Context, userID primitive.ObjectID, performedAt time.Time, entries []domain.SessionEntry, notes string) (*domain.TrainingSession, error)
	// GetRecoveryStatus computes the current recovery view for every
	// tracked muscle group.
	GetRecoveryStatus(ctx context.Context, userID primitive.ObjectID) ([]domain.MuscleRecoveryStatus, error)
}

type recoveryService struct {
	recoveryRepo repository.RecoveryRepository
	sessionRepo  repository.SessionRepository
	now          func() time.Time // Injected clock, time.Now in production
}

// NewRecoveryService creates a new instance of recoveryService.
func NewRecoveryService(recoveryRepo repository.RecoveryRepository, sessionRepo repository.SessionRepository) RecoveryService {
	return &recoveryService{
		recoveryRepo: recoveryRepo,
		sessionRepo:  sessionRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// EstimateRecoveryHours converts one session's stimulus into the hours a
// muscle group needs to fully recover. Linear in both volume and
// intensity around the 10-set / RPE-7 reference session, floored at
// minRecoveryHours so degenerate inputs cannot produce a non-positive
// window.
func EstimateRecoveryHours(sets int, rpe float64) int {
	volumeFactor := 1 + (float64(sets)-10)*0.05
	intensityFactor := 1 + (rpe-7)*0.1
	hours := int(math.Round(baseRecoveryHours * volumeFactor * intensityFactor))
	if hours < minRecoveryHours {
		return minRecoveryHours
	}
	return hours
}

// RecordSession stores the latest stimulus for a muscle group. Recovery
// percent is not written anywhere: the fresh LastWorkedAt is enough for
// the next read to show low recovery.
func (s *recoveryService) RecordSession(ctx context.Context, userID primitive.ObjectID, group domain.MuscleGroup, sets int, rpe float64) (*domain.MuscleRecoveryState, error) {
	return s.recordSessionAt(ctx, userID, group, sets, rpe, s.now())
}

// recordSessionAt records a session that happened at a given time, which
// may be in the past for backdated workout logs. A session older than the
// group's current LastWorkedAt contributes nothing to the stimulus, and a
// session from an earlier training week does not touch the current
// week's set counter.
func (s *recoveryService) recordSessionAt(ctx context.Context, userID primitive.ObjectID, group domain.MuscleGroup, sets int, rpe float64, at time.Time) (*domain.MuscleRecoveryState, error) {
	if sets < 1 {
		return nil, ErrInvalidSets
	}
	if rpe < 0 || rpe > 10 {
		return nil, ErrInvalidRPE
	}
	if !domain.IsValidMuscleGroup(string(group)) {
		return nil, ErrInvalidMuscleGroup
	}

	at = at.UTC()
	state, err := s.recoveryRepo.Get(ctx, userID, group)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		// First session for this group
		state = &domain.MuscleRecoveryState{
			UserID:      userID,
			MuscleGroup: group,
			WeekStart:   startOfWeek(at),
		}
	}

	// Roll the weekly counter when the training week has turned over.
	week := startOfWeek(at)
	if state.WeekStart.Before(week) {
		state.WeekStart = week
		state.SetsAccumulatedThisWeek = 0
	}
	if state.WeekStart.Equal(week) {
		state.SetsAccumulatedThisWeek += sets
	}

	if state.LastWorkedAt == nil || !at.Before(*state.LastWorkedAt) {
		worked := at
		state.LastWorkedAt = &worked
		state.LastSessionSets = sets
		state.LastSessionRPE = rpe
	}

	if err := s.recoveryRepo.Upsert(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// LogWorkout validates and persists a completed session, then records
// each entry as that muscle group's latest stimulus.
func (s *recoveryService) LogWorkout(ctx context.Context, userID primitive.ObjectID, performedAt time.Time, entries []domain.SessionEntry, notes string) (*domain.TrainingSession, error) {
	if len(entries) == 0 {
		return nil, ErrEmptySession
	}
	for _, e := range entries {
		if e.Sets < 1 {
			return nil, ErrInvalidSets
		}
		if e.RPE < 0 || e.RPE > 10 {
			return nil, ErrInvalidRPE
		}
		if !domain.IsValidMuscleGroup(string(e.MuscleGroup)) {
			return nil, ErrInvalidMuscleGroup
		}
	}

	if performedAt.IsZero() {
		performedAt = s.now()
	}
	performedAt = performedAt.UTC()

	session := &domain.TrainingSession{
		UserID:      userID,
		PerformedAt: performedAt,
		Entries:     entries,
		Notes:       notes,
	}
	sessionID, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = sessionID

	// Recovery is measured from when the workout happened, not from when
	// it was logged, so backdated sessions do not look freshly trained.
	for _, e := range entries {
		if _, err := s.recordSessionAt(ctx, userID, e.MuscleGroup, e.Sets, e.RPE, performedAt); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// GetRecoveryStatus derives the recovery percentage for every tracked
// muscle group. A group with no recorded work (or a nil LastWorkedAt) is
// fully recovered: absence of history is not evidence of fatigue.
//
// The ramp is linear: 0% at the moment of training, 100% once the
// estimated recovery window has elapsed, capped at 100 thereafter.
func (s *recoveryService) GetRecoveryStatus(ctx context.Context, userID primitive.ObjectID) ([]domain.MuscleRecoveryStatus, error) {
	states, err := s.recoveryRepo.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	statuses := make([]domain.MuscleRecoveryStatus, 0, len(states))
	for _, st := range states {
		statuses = append(statuses, computeRecoveryStatus(&st, now))
	}
	return statuses, nil
}

// computeRecoveryStatus is the pure read-time view over one state record.
func computeRecoveryStatus(st *domain.MuscleRecoveryState, now time.Time) domain.MuscleRecoveryStatus {
	status := domain.MuscleRecoveryStatus{
		MuscleGroup:  st.MuscleGroup,
		LastWorkedAt: st.LastWorkedAt,
	}
	if st.LastWorkedAt == nil {
		status.RecoveryPercent = 100
		return status
	}

	hoursToRecover := EstimateRecoveryHours(st.LastSessionSets, st.LastSessionRPE)
	status.HoursToRecover = hoursToRecover

	hoursElapsed := now.Sub(*st.LastWorkedAt).Hours()
	if hoursElapsed < 0 {
		hoursElapsed = 0 // Clock skew between writer and reader
	}
	percent := int(math.Round(100 * hoursElapsed / float64(hoursToRecover)))
	if percent > 100 {
		percent = 100
	}
	status.RecoveryPercent = percent
	return status
}

// startOfWeek truncates to the Monday 00:00 UTC of t's week.
func startOfWeek(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -(weekday - 1))
}
