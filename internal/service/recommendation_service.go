package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"vigor/fitness-app/internal/domain"
	"vigor/fitness-app/internal/i18n"
	"vigor/fitness-app/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrInvalidMinutes  = errors.New("available minutes must be positive")
	ErrInvalidEnergy   = errors.New("energy level must be low, medium or high")
	ErrInvalidLocation = errors.New("unknown training location")
)

const (
	// freshnessThreshold is the recovery percent above which a muscle
	// group is considered ready to be targeted. Groups below it are only
	// used when nothing clears the bar.
	freshnessThreshold = 70
	// quickWorkoutMinutes is the duration below which a workout is
	// classified as quick rather than full.
	quickWorkoutMinutes = 20

	maxTargetMuscles = 3
)

// RecommendationService is the "what now" selector: given situational
// input plus the tracker and classifier outputs, it composes a concrete
// workout recommendation or advises rest.
type RecommendationService interface {
	Recommend(ctx context.Context, userID primitive.ObjectID, req domain.RecommendationRequest) (*domain.RecommendationResult, error)
}

type recommendationService struct {
	userRepo      repository.UserRepository
	recoveryRepo  repository.RecoveryRepository
	readinessRepo repository.ReadinessRepository
	exerciseRepo  repository.ExerciseRepository
	now           func() time.Time // Injected clock, time.Now in production
}

// NewRecommendationService creates a new instance of recommendationService.
func NewRecommendationService(
	userRepo repository.UserRepository,
	recoveryRepo repository.RecoveryRepository,
	readinessRepo repository.ReadinessRepository,
	exerciseRepo repository.ExerciseRepository,
) RecommendationService {
	return &recommendationService{
		userRepo:      userRepo,
		recoveryRepo:  recoveryRepo,
		readinessRepo: readinessRepo,
		exerciseRepo:  exerciseRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// setScheme is the per-exercise prescription derived from the readiness tier.
type setScheme struct {
	sets        int
	reps        int
	restSeconds int
	targetRPE   float64
}

// schemeForIntensity maps the readiness tier onto sets/reps/rest. Harder
// tiers mean fewer reps, more sets and longer rest.
func schemeForIntensity(level domain.IntensityLevel) setScheme {
	switch level {
	case domain.IntensityLight:
		return setScheme{sets: 2, reps: 12, restSeconds: 60, targetRPE: 6}
	case domain.IntensityHigh:
		return setScheme{sets: 4, reps: 8, restSeconds: 90, targetRPE: 8}
	case domain.IntensityMaximum:
		return setScheme{sets: 4, reps: 6, restSeconds: 120, targetRPE: 9}
	default: // MODERATE and anything unexpected
		return setScheme{sets: 3, reps: 10, restSeconds: 75, targetRPE: 7}
	}
}

// Recommend runs the full decision sequence: readiness gate, intensity
// ceiling, muscle eligibility, format choice, and workout composition.
func (s *recommendationService) Recommend(ctx context.Context, userID primitive.ObjectID, req domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	if req.AvailableMinutes <= 0 {
		return nil, ErrInvalidMinutes
	}
	switch req.EnergyLevel {
	case domain.EnergyLow, domain.EnergyMedium, domain.EnergyHigh:
	default:
		return nil, ErrInvalidEnergy
	}
	switch req.Location {
	case domain.LocationGym, domain.LocationHome, domain.LocationHomeGym, domain.LocationOutdoor, domain.LocationHotel:
	default:
		return nil, ErrInvalidLocation
	}

	// Profile is a soft bias signal only; a missing user record still
	// gets a recommendation at the default difficulty cap and language.
	maxDifficulty := domain.LevelMedium
	lang := i18n.DefaultLang
	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		maxDifficulty = user.MaxDifficulty()
		lang = i18n.ParseLanguage(user.Language)
	}

	now := s.now()

	// 1. Today's readiness, defaulting to a neutral moderate day.
	readiness, err := s.readinessRepo.GetLatestForDay(ctx, userID, now.Format(domain.ReadinessDayFormat))
	hasCheckin := true
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		hasCheckin = false
		readiness = &domain.ReadinessLog{
			Score:                5,
			RecommendedIntensity: domain.IntensityModerate,
			ShouldSkipWorkout:    false,
		}
	}

	result := &domain.RecommendationResult{ID: uuid.NewString(), Language: string(lang)}

	// 2. Rest gate.
	if readiness.ShouldSkipWorkout {
		result.Type = domain.RecommendationRest
		result.Rationale = append(result.Rationale, restRationale(readiness))
		return result, nil
	}

	// 3. Intensity ceiling from readiness tier and requested energy.
	activeRecovery := false
	switch {
	case readiness.RecommendedIntensity == domain.IntensityRecovery:
		activeRecovery = true
		result.Rationale = append(result.Rationale, rationale("rationale.active_recovery.readiness"))
	case readiness.RecommendedIntensity == domain.IntensityLight && req.EnergyLevel == domain.EnergyLow:
		activeRecovery = true
		result.Rationale = append(result.Rationale, rationale("rationale.active_recovery.light_low_energy"))
	}

	if activeRecovery {
		return s.composeActiveRecovery(ctx, req, result)
	}

	if hasCheckin {
		result.Rationale = append(result.Rationale, rationale("rationale.workout.readiness", string(readiness.RecommendedIntensity)))
	} else {
		result.Rationale = append(result.Rationale, rationale("rationale.workout.no_checkin"))
	}

	if req.AvailableMinutes < quickWorkoutMinutes {
		result.Type = domain.RecommendationQuickWorkout
		result.Rationale = append(result.Rationale, rationale("rationale.duration.quick", req.AvailableMinutes))
	} else {
		result.Type = domain.RecommendationFullWorkout
		result.Rationale = append(result.Rationale, rationale("rationale.duration.full", req.AvailableMinutes))
	}

	// 4. Muscle-group eligibility from recovery state.
	states, err := s.recoveryRepo.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	targets, allFatigued := selectTargetMuscles(states, now)
	result.TargetMuscles = targets
	if allFatigued {
		result.Rationale = append(result.Rationale, rationale("rationale.muscles.all_fatigued"))
	} else {
		result.Rationale = append(result.Rationale, rationale("rationale.muscles.fresh", muscleList(targets)))
	}

	// 5. Format.
	result.Format = chooseFormat(result.Type, req, readiness.RecommendedIntensity)
	result.Rationale = append(result.Rationale, rationale("rationale.format", string(result.Format)))

	// 6. Composition.
	if err := s.composeWorkout(ctx, req, readiness.RecommendedIntensity, maxDifficulty, result); err != nil {
		return nil, err
	}
	return result, nil
}

// restRationale names the factor that triggered the skip, most severe first.
func restRationale(log *domain.ReadinessLog) domain.Rationale {
	switch {
	case log.FeelingIll:
		return rationale("rationale.skip.ill")
	case log.PainIntensity > 6:
		return rationale("rationale.skip.pain", log.PainIntensity)
	default:
		return rationale("rationale.skip.low_score", log.Score)
	}
}

// selectTargetMuscles computes the eligibility set. Every known muscle
// group participates: a group with no recorded state is fully recovered.
// Groups at or above the freshness threshold are preferred; when nothing
// clears it the best-recovered groups are used anyway (the threshold
// biases selection, it does not hard-exclude). Ties favor the group
// trained longest ago.
func selectTargetMuscles(states []domain.MuscleRecoveryState, now time.Time) (targets []domain.MuscleGroup, allFatigued bool) {
	type candidate struct {
		group      domain.MuscleGroup
		percent    int
		lastWorked time.Time // zero value sorts as "never trained"
	}

	byGroup := make(map[domain.MuscleGroup]*domain.MuscleRecoveryState, len(states))
	for i := range states {
		byGroup[states[i].MuscleGroup] = &states[i]
	}

	candidates := make([]candidate, 0, len(domain.AllMuscleGroups))
	for _, g := range domain.AllMuscleGroups {
		c := candidate{group: g, percent: 100}
		if st, ok := byGroup[g]; ok {
			status := computeRecoveryStatus(st, now)
			c.percent = status.RecoveryPercent
			if st.LastWorkedAt != nil {
				c.lastWorked = *st.LastWorkedAt
			}
		}
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].percent != candidates[j].percent {
			return candidates[i].percent > candidates[j].percent
		}
		return candidates[i].lastWorked.Before(candidates[j].lastWorked)
	})

	fresh := 0
	for _, c := range candidates {
		if c.percent >= freshnessThreshold {
			fresh++
		}
	}
	allFatigued = fresh == 0

	take := fresh
	if take == 0 || take > maxTargetMuscles {
		take = maxTargetMuscles
	}
	for _, c := range candidates[:take] {
		targets = append(targets, c.group)
	}
	return targets, allFatigued
}

// chooseFormat picks the workout structure from duration, location and
// the intensity tier. Short budgets favor dense formats; long gym
// sessions get full rest intervals; bodyweight-heavy locations circuit.
func chooseFormat(t domain.RecommendationType, req domain.RecommendationRequest, level domain.IntensityLevel) domain.WorkoutFormat {
	if t == domain.RecommendationQuickWorkout {
		switch req.Location {
		case domain.LocationGym, domain.LocationHomeGym:
			return domain.FormatEMOM
		default:
			if req.AvailableMinutes <= 10 {
				return domain.FormatTabata
			}
			return domain.FormatCircuit
		}
	}

	switch req.Location {
	case domain.LocationGym:
		if req.AvailableMinutes >= 60 && level == domain.IntensityMaximum {
			return domain.FormatCluster
		}
		if req.AvailableMinutes >= 45 {
			return domain.FormatStraightSets
		}
		return domain.FormatSuperset
	case domain.LocationHomeGym:
		if req.AvailableMinutes >= 60 && level == domain.IntensityMaximum {
			return domain.FormatRestPause
		}
		if req.AvailableMinutes >= 45 {
			return domain.FormatTraditional
		}
		return domain.FormatSuperset
	case domain.LocationHome:
		return domain.FormatSuperset
	default: // outdoor, hotel
		return domain.FormatCircuit
	}
}

// composeWorkout fills the warmup, working-set and cooldown blocks and
// derives duration and calories.
func (s *recommendationService) composeWorkout(ctx context.Context, req domain.RecommendationRequest, level domain.IntensityLevel, maxDifficulty domain.FitnessLevel, result *domain.RecommendationResult) error {
	available := req.Location.EquipmentProfile()

	// Warmup and cooldown bracket the session; warmup gets ~10% of the
	// budget, cooldown a fixed short block.
	warmupMinutes := req.AvailableMinutes / 10
	if warmupMinutes < 2 {
		warmupMinutes = 2
	}
	cooldownMinutes := 3
	if req.AvailableMinutes < 15 {
		cooldownMinutes = 2
	}
	workingMinutes := req.AvailableMinutes - warmupMinutes - cooldownMinutes
	if workingMinutes < 5 {
		workingMinutes = 5
	}

	// Working block candidates from the eligible muscle groups.
	workCategories := []domain.ExerciseCategory{
		domain.CategoryCompound, domain.CategoryIsolation,
		domain.CategoryAccessory, domain.CategoryFinisher,
	}
	candidates, err := s.exerciseRepo.FindCandidates(ctx, result.TargetMuscles, workCategories, maxDifficulty)
	if err != nil {
		return err
	}
	candidates = filterByEquipment(candidates, available)

	// Graceful degradation: when location and recovery leave nothing,
	// fall back to bodyweight work across all muscle groups.
	if len(candidates) < 2 {
		fallback, err := s.exerciseRepo.FindCandidates(ctx, nil, workCategories, maxDifficulty)
		if err != nil {
			return err
		}
		for _, ex := range fallback {
			if ex.Bodyweight {
				candidates = append(candidates, ex)
			}
		}
		result.TargetMuscles = []domain.MuscleGroup{domain.MuscleFullBody}
		result.Rationale = append(result.Rationale, rationale("rationale.fallback.bodyweight"))
	}

	scheme := schemeForIntensity(level)

	// Time cost of one exercise slot, including its rest intervals.
	minutesPerExercise := (scheme.sets*(45+scheme.restSeconds) + 59) / 60
	numExercises := workingMinutes / minutesPerExercise
	if numExercises < 2 {
		numExercises = 2
	}
	if numExercises > 6 {
		numExercises = 6
	}

	picked := pickWorkingExercises(candidates, result.TargetMuscles, numExercises)
	result.WorkingSets = buildWorkingSets(picked, scheme, result.Format)

	// Auxiliary blocks drawn from the mobility and stretch pools.
	warmupPool, err := s.exerciseRepo.FindCandidates(ctx, nil, []domain.ExerciseCategory{domain.CategoryMobility}, maxDifficulty)
	if err != nil {
		return err
	}
	result.Warmup = buildAuxiliaryBlock(warmupPool, result.TargetMuscles, warmupMinutes, 4)

	cooldownPool, err := s.exerciseRepo.FindCandidates(ctx, nil, []domain.ExerciseCategory{domain.CategoryStretch}, maxDifficulty)
	if err != nil {
		return err
	}
	result.Cooldown = buildAuxiliaryBlock(cooldownPool, result.TargetMuscles, cooldownMinutes, 3)

	result.DurationMinutes = warmupMinutes + len(result.WorkingSets)*minutesPerExercise + cooldownMinutes
	if result.DurationMinutes > req.AvailableMinutes {
		result.DurationMinutes = req.AvailableMinutes
	}
	result.EstimatedCalories = estimateCalories(picked, scheme, minutesPerExercise, warmupMinutes+cooldownMinutes)
	return nil
}

// composeActiveRecovery builds a light mobility-and-stretch session.
func (s *recommendationService) composeActiveRecovery(ctx context.Context, req domain.RecommendationRequest, result *domain.RecommendationResult) (*domain.RecommendationResult, error) {
	result.Type = domain.RecommendationActiveRecovery
	result.Format = domain.FormatCircuit

	duration := req.AvailableMinutes
	if duration > 30 {
		duration = 30
	}
	result.DurationMinutes = duration

	pool, err := s.exerciseRepo.FindCandidates(ctx, nil, []domain.ExerciseCategory{domain.CategoryMobility, domain.CategoryStretch}, domain.LevelNovice)
	if err != nil {
		return nil, err
	}
	half := duration / 2
	if half < 2 {
		half = 2
	}
	result.Warmup = buildAuxiliaryBlock(filterCategory(pool, domain.CategoryMobility), nil, half, 4)
	result.Cooldown = buildAuxiliaryBlock(filterCategory(pool, domain.CategoryStretch), nil, duration-half, 4)

	// Roughly 3 kcal/min of easy movement.
	result.EstimatedCalories = duration * 3
	return result, nil
}

// filterByEquipment keeps exercises performable at the location.
func filterByEquipment(exercises []domain.Exercise, available map[domain.Equipment]bool) []domain.Exercise {
	out := exercises[:0:0]
	for _, ex := range exercises {
		if ex.RequiresOnly(available) {
			out = append(out, ex)
		}
	}
	return out
}

func filterCategory(exercises []domain.Exercise, category domain.ExerciseCategory) []domain.Exercise {
	out := exercises[:0:0]
	for _, ex := range exercises {
		if ex.Category == category {
			out = append(out, ex)
		}
	}
	return out
}

// pickWorkingExercises fills the working block: compounds first, then the
// rest, round-robin over the target muscle groups so no single group
// dominates the session.
func pickWorkingExercises(candidates []domain.Exercise, targets []domain.MuscleGroup, n int) []domain.Exercise {
	byGroup := make(map[domain.MuscleGroup][]domain.Exercise)
	for _, ex := range candidates {
		byGroup[ex.MuscleGroup] = append(byGroup[ex.MuscleGroup], ex)
	}
	for g := range byGroup {
		group := byGroup[g]
		sort.SliceStable(group, func(i, j int) bool {
			return categoryRank(group[i].Category) < categoryRank(group[j].Category)
		})
		byGroup[g] = group
	}

	order := targets
	if len(order) == 0 {
		for g := range byGroup {
			order = append(order, g)
		}
		sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	}

	var picked []domain.Exercise
	seen := make(map[string]bool)
	for round := 0; len(picked) < n && round < n; round++ {
		progress := false
		for _, g := range order {
			if len(picked) >= n {
				break
			}
			group := byGroup[g]
			if round < len(group) && !seen[group[round].Name] {
				picked = append(picked, group[round])
				seen[group[round].Name] = true
				progress = true
			}
		}
		if !progress {
			break
		}
	}
	return picked
}

func categoryRank(c domain.ExerciseCategory) int {
	switch c {
	case domain.CategoryCompound:
		return 0
	case domain.CategoryIsolation:
		return 1
	case domain.CategoryAccessory:
		return 2
	default:
		return 3
	}
}

// buildWorkingSets annotates picked exercises with the prescription.
// Superset formats pair adjacent exercises; slow tempo is prescribed for
// compounds in full-rest formats.
func buildWorkingSets(picked []domain.Exercise, scheme setScheme, format domain.WorkoutFormat) []domain.WorkingSet {
	sets := make([]domain.WorkingSet, 0, len(picked))
	fullRest := format == domain.FormatStraightSets || format == domain.FormatTraditional ||
		format == domain.FormatCluster || format == domain.FormatRestPause

	for i, ex := range picked {
		ws := domain.WorkingSet{
			ExerciseID:  ex.ID.Hex(),
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Category:    ex.Category,
			Sets:        scheme.sets,
			Reps:        scheme.reps,
			RestSeconds: scheme.restSeconds,
			TargetRPE:   scheme.targetRPE,
		}
		if fullRest && ex.Category == domain.CategoryCompound {
			ws.Tempo = "3-1-1"
		}
		if format == domain.FormatSuperset && i%2 == 1 {
			ws.SupersetWith = picked[i-1].ID.Hex()
			sets[i-1].SupersetWith = ex.ID.Hex()
			// Paired exercises share one rest interval.
			ws.RestSeconds = scheme.restSeconds / 2
			sets[i-1].RestSeconds = scheme.restSeconds / 2
		}
		sets = append(sets, ws)
	}
	return sets
}

// buildAuxiliaryBlock composes a warmup or cooldown, preferring entries
// that touch the session's target muscles.
func buildAuxiliaryBlock(pool []domain.Exercise, targets []domain.MuscleGroup, minutes, maxEntries int) []domain.AuxiliaryEntry {
	if len(pool) == 0 || minutes <= 0 {
		return nil
	}

	targeted := make(map[domain.MuscleGroup]bool, len(targets))
	for _, g := range targets {
		targeted[g] = true
	}
	sort.SliceStable(pool, func(i, j int) bool {
		ti, tj := targeted[pool[i].MuscleGroup], targeted[pool[j].MuscleGroup]
		if ti != tj {
			return ti
		}
		return pool[i].Name < pool[j].Name
	})

	n := maxEntries
	if n > len(pool) {
		n = len(pool)
	}
	if n < 2 && len(pool) >= 2 {
		n = 2
	}

	perEntry := (minutes * 60) / n
	entries := make([]domain.AuxiliaryEntry, 0, n)
	for _, ex := range pool[:n] {
		entries = append(entries, domain.AuxiliaryEntry{
			ExerciseID:      ex.ID.Hex(),
			Name:            ex.Name,
			MuscleGroup:     ex.MuscleGroup,
			DurationSeconds: perEntry,
		})
	}
	return entries
}

// estimateCalories is additive over blocks: each working exercise burns
// its catalog rate (scaled by target RPE) for its slot, auxiliary minutes
// burn a flat easy-movement rate. More or harder work always raises the
// estimate.
func estimateCalories(picked []domain.Exercise, scheme setScheme, minutesPerExercise, auxiliaryMinutes int) int {
	intensityScale := scheme.targetRPE / 7.0
	total := float64(auxiliaryMinutes) * 3
	for _, ex := range picked {
		total += float64(minutesPerExercise) * ex.CaloriesPerMinute * intensityScale
	}
	return int(total)
}

// rationale renders a message key in both languages.
func rationale(key string, args ...interface{}) domain.Rationale {
	en, ru := i18n.Pair(key, args...)
	return domain.Rationale{En: en, Ru: ru}
}

func muscleList(groups []domain.MuscleGroup) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = string(g)
	}
	return strings.Join(parts, ", ")
}
