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
	ErrInvalidLevelScale = errors.New("level values must be between 1 and 10")
	ErrInvalidPainScale  = errors.New("pain intensity must be between 0 and 10")
	ErrNoReadinessToday  = errors.New("no readiness log for today")
)

// ReadinessInput carries the raw subjective check-in values.
type ReadinessInput struct {
	EnergyLevel     int
	MotivationLevel int
	MoodLevel       int
	// OverallReadiness, when non-zero, overrides the averaged score.
	OverallReadiness int
	SorenessLevel    int
	PainIntensity    int
	FeelingIll       bool
}

// ReadinessService is the readiness classifier: it turns daily subjective
// check-ins into a discrete intensity recommendation.
type ReadinessService interface {
	LogReadiness(ctx context.Context, userID primitive.ObjectID, input ReadinessInput) (*domain.ReadinessLog, error)
	GetTodayReadiness(ctx context.Context, userID primitive.ObjectID) (*domain.ReadinessLog, error)
	GetReadinessHistory(ctx context.Context, userID primitive.ObjectID, days int) ([]domain.ReadinessLog, error)
}

type readinessService struct {
	readinessRepo repository.ReadinessRepository
	now           func() time.Time // Injected clock, time.Now in production
}

// NewReadinessService creates a new instance of readinessService.
func NewReadinessService(readinessRepo repository.ReadinessRepository) ReadinessService {
	return &readinessService{
		readinessRepo: readinessRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// intensityRule is one row of the classification table. Rules are
// evaluated top to bottom and the first match wins; the ordering is the
// contract, not an optimization.
type intensityRule struct {
	matches func(input ReadinessInput, score int) bool
	level   domain.IntensityLevel
}

var intensityRules = []intensityRule{
	{
		// Illness or significant pain overrides everything else.
		matches: func(in ReadinessInput, _ int) bool { return in.FeelingIll || in.PainIntensity > 6 },
		level:   domain.IntensityRecovery,
	},
	{
		matches: func(in ReadinessInput, score int) bool { return score <= 3 || in.SorenessLevel > 7 },
		level:   domain.IntensityLight,
	},
	{
		matches: func(_ ReadinessInput, score int) bool { return score <= 5 },
		level:   domain.IntensityModerate,
	},
	{
		matches: func(_ ReadinessInput, score int) bool { return score <= 7 },
		level:   domain.IntensityHigh,
	},
	{
		matches: func(ReadinessInput, int) bool { return true },
		level:   domain.IntensityMaximum,
	},
}

// ClassifyReadiness computes the score and runs the rule table.
// Exported as a pure function so the classification contract is directly
// testable without storage.
func ClassifyReadiness(input ReadinessInput) (score int, level domain.IntensityLevel, shouldSkip bool) {
	if input.OverallReadiness > 0 {
		score = input.OverallReadiness
	} else {
		score = int(math.Round(float64(input.EnergyLevel+input.MotivationLevel+input.MoodLevel) / 3.0))
	}

	for _, rule := range intensityRules {
		if rule.matches(input, score) {
			level = rule.level
			break
		}
	}

	shouldSkip = score < 3 || input.FeelingIll
	return score, level, shouldSkip
}

// LogReadiness validates the check-in, classifies it and appends the log.
// Derived fields are stored with the raw inputs so history stays stable
// if thresholds ever change.
func (s *readinessService) LogReadiness(ctx context.Context, userID primitive.ObjectID, input ReadinessInput) (*domain.ReadinessLog, error) {
	for _, v := range []int{input.EnergyLevel, input.MotivationLevel, input.MoodLevel, input.SorenessLevel} {
		if v < 1 || v > 10 {
			return nil, ErrInvalidLevelScale
		}
	}
	if input.OverallReadiness != 0 && (input.OverallReadiness < 1 || input.OverallReadiness > 10) {
		return nil, ErrInvalidLevelScale
	}
	if input.PainIntensity < 0 || input.PainIntensity > 10 {
		return nil, ErrInvalidPainScale
	}

	score, level, shouldSkip := ClassifyReadiness(input)

	log := &domain.ReadinessLog{
		UserID:               userID,
		Day:                  s.now().Format(domain.ReadinessDayFormat),
		EnergyLevel:          input.EnergyLevel,
		MotivationLevel:      input.MotivationLevel,
		MoodLevel:            input.MoodLevel,
		OverallReadiness:     input.OverallReadiness,
		SorenessLevel:        input.SorenessLevel,
		PainIntensity:        input.PainIntensity,
		FeelingIll:           input.FeelingIll,
		Score:                score,
		RecommendedIntensity: level,
		ShouldSkipWorkout:    shouldSkip,
	}

	logID, err := s.readinessRepo.Create(ctx, log)
	if err != nil {
		return nil, err
	}
	log.ID = logID
	return log, nil
}

// GetTodayReadiness returns today's authoritative (newest) log.
func (s *readinessService) GetTodayReadiness(ctx context.Context, userID primitive.ObjectID) (*domain.ReadinessLog, error) {
	day := s.now().Format(domain.ReadinessDayFormat)
	log, err := s.readinessRepo.GetLatestForDay(ctx, userID, day)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoReadinessToday
		}
		return nil, err
	}
	return log, nil
}

// GetReadinessHistory returns the trailing window of logs, newest first.
func (s *readinessService) GetReadinessHistory(ctx context.Context, userID primitive.ObjectID, days int) ([]domain.ReadinessLog, error) {
	if days < 1 {
		days = 7
	}
	fromDay := s.now().AddDate(0, 0, -(days - 1)).Format(domain.ReadinessDayFormat)
	return s.readinessRepo.GetSince(ctx, userID, fromDay)
}
