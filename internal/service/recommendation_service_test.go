package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vigor/fitness-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testCatalog is a small but representative slice of the seed catalog:
// compounds per major group with mixed equipment needs, plus the
// mobility and stretch pools the auxiliary blocks draw from.
func testCatalog() *fakeExerciseRepo {
	repo := &fakeExerciseRepo{}
	add := func(name string, group domain.MuscleGroup, cat domain.ExerciseCategory, equipment []domain.Equipment, bodyweight bool, kcal float64) {
		repo.Create(context.Background(), &domain.Exercise{
			Name:              name,
			MuscleGroup:       group,
			Category:          cat,
			Equipment:         equipment,
			Bodyweight:        bodyweight,
			Difficulty:        domain.LevelNovice,
			CaloriesPerMinute: kcal,
		})
	}

	add("Barbell Bench Press", domain.MuscleChest, domain.CategoryCompound, []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentBench}, false, 7)
	add("Push-Up", domain.MuscleChest, domain.CategoryCompound, nil, true, 6)
	add("Pull-Up", domain.MuscleBack, domain.CategoryCompound, []domain.Equipment{domain.EquipmentPullupBar}, false, 7)
	add("Dumbbell Row", domain.MuscleBack, domain.CategoryCompound, []domain.Equipment{domain.EquipmentDumbbells}, false, 6)
	add("Goblet Squat", domain.MuscleLegs, domain.CategoryCompound, []domain.Equipment{domain.EquipmentDumbbells}, false, 8)
	add("Lateral Raise", domain.MuscleShoulders, domain.CategoryIsolation, []domain.Equipment{domain.EquipmentDumbbells}, false, 4)
	add("Plank", domain.MuscleCore, domain.CategoryAccessory, nil, true, 4)

	add("Arm Circles", domain.MuscleShoulders, domain.CategoryMobility, nil, true, 2)
	add("Leg Swings", domain.MuscleLegs, domain.CategoryMobility, nil, true, 2)
	add("Cat-Cow", domain.MuscleCore, domain.CategoryMobility, nil, true, 2)
	add("Doorway Chest Stretch", domain.MuscleChest, domain.CategoryStretch, nil, true, 1)
	add("Hamstring Stretch", domain.MuscleLegs, domain.CategoryStretch, nil, true, 1)
	add("Child's Pose", domain.MuscleCore, domain.CategoryStretch, nil, true, 1)
	return repo
}

func newTestRecommendationService(users *fakeUserRepo, recovery *fakeRecoveryRepo, readiness *fakeReadinessRepo, exercises *fakeExerciseRepo, now time.Time) *recommendationService {
	return &recommendationService{
		userRepo:      users,
		recoveryRepo:  recovery,
		readinessRepo: readiness,
		exerciseRepo:  exercises,
		now:           func() time.Time { return now },
	}
}

func logCheckin(t *testing.T, repo *fakeReadinessRepo, userID primitive.ObjectID, day time.Time, input ReadinessInput) {
	t.Helper()
	svc := newTestReadinessService(repo, day)
	if _, err := svc.LogReadiness(context.Background(), userID, input); err != nil {
		t.Fatalf("seeding check-in: %v", err)
	}
}

func TestRecommend_Validation(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	svc := newTestRecommendationService(newFakeUserRepo(), newFakeRecoveryRepo(), &fakeReadinessRepo{}, testCatalog(), now)
	userID := primitive.NewObjectID()

	cases := []struct {
		name    string
		req     domain.RecommendationRequest
		wantErr error
	}{
		{"zero minutes", domain.RecommendationRequest{AvailableMinutes: 0, EnergyLevel: domain.EnergyMedium, Location: domain.LocationGym}, ErrInvalidMinutes},
		{"unknown energy", domain.RecommendationRequest{AvailableMinutes: 30, EnergyLevel: "wired", Location: domain.LocationGym}, ErrInvalidEnergy},
		{"unknown location", domain.RecommendationRequest{AvailableMinutes: 30, EnergyLevel: domain.EnergyMedium, Location: "office"}, ErrInvalidLocation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Recommend(context.Background(), userID, tc.req); !errors.Is(err, tc.wantErr) {
				t.Errorf("Recommend error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestRecommend_RestWhenIll(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	readiness := &fakeReadinessRepo{}
	userID := primitive.NewObjectID()
	logCheckin(t, readiness, userID, now, ReadinessInput{
		EnergyLevel: 6, MotivationLevel: 6, MoodLevel: 6, SorenessLevel: 3, FeelingIll: true,
	})

	svc := newTestRecommendationService(newFakeUserRepo(), newFakeRecoveryRepo(), readiness, testCatalog(), now)
	result, err := svc.Recommend(context.Background(), userID, domain.RecommendationRequest{
		AvailableMinutes: 60, EnergyLevel: domain.EnergyHigh, Location: domain.LocationGym,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if result.Type != domain.RecommendationRest {
		t.Fatalf("Type = %s, want rest", result.Type)
	}
	if len(result.WorkingSets) != 0 || len(result.Warmup) != 0 {
		t.Error("rest recommendation must not contain exercises")
	}
	if len(result.Rationale) == 0 {
		t.Fatal("rest recommendation carries no rationale")
	}
	if result.Rationale[0].En == "" || result.Rationale[0].Ru == "" {
		t.Errorf("rationale must be bilingual, got %+v", result.Rationale[0])
	}
}

func TestRecommend_ActiveRecoveryOnPain(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	readiness := &fakeReadinessRepo{}
	userID := primitive.NewObjectID()
	// High score but serious pain: RECOVERY tier without the skip flag.
	logCheckin(t, readiness, userID, now, ReadinessInput{
		EnergyLevel: 8, MotivationLevel: 8, MoodLevel: 8, SorenessLevel: 2, PainIntensity: 7,
	})

	svc := newTestRecommendationService(newFakeUserRepo(), newFakeRecoveryRepo(), readiness, testCatalog(), now)
	result, err := svc.Recommend(context.Background(), userID, domain.RecommendationRequest{
		AvailableMinutes: 45, EnergyLevel: domain.EnergyMedium, Location: domain.LocationHome,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if result.Type != domain.RecommendationActiveRecovery {
		t.Fatalf("Type = %s, want active_recovery", result.Type)
	}
	if result.DurationMinutes > 30 {
		t.Errorf("active recovery duration = %d, want at most 30", result.DurationMinutes)
	}
	if len(result.Warmup) == 0 || len(result.Cooldown) == 0 {
		t.Error("active recovery should contain mobility and stretch blocks")
	}
	if len(result.WorkingSets) != 0 {
		t.Error("active recovery must not prescribe working sets")
	}
}

func TestRecommend_ActiveRecoveryOnLightLowEnergy(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	readiness := &fakeReadinessRepo{}
	userID := primitive.NewObjectID()
	logCheckin(t, readiness, userID, now, ReadinessInput{
		EnergyLevel: 3, MotivationLevel: 3, MoodLevel: 4, SorenessLevel: 5, // score 3: LIGHT, no skip
	})

	svc := newTestRecommendationService(newFakeUserRepo(), newFakeRecoveryRepo(), readiness, testCatalog(), now)
	result, err := svc.Recommend(context.Background(), userID, domain.RecommendationRequest{
		AvailableMinutes: 40, EnergyLevel: domain.EnergyLow, Location: domain.LocationHome,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if result.Type != domain.RecommendationActiveRecovery {
		t.Errorf("Type = %s, want active_recovery for LIGHT tier plus low energy", result.Type)
	}
}

func TestRecommend_QuickWorkoutWithoutCheckin(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	svc := newTestRecommendationService(newFakeUserRepo(), newFakeRecoveryRepo(), &fakeReadinessRepo{}, testCatalog(), now)
	userID := primitive.NewObjectID()

	result, err := svc.Recommend(context.Background(), userID, domain.RecommendationRequest{
		AvailableMinutes: 15, EnergyLevel: domain.EnergyHigh, Location: domain.LocationHome,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if result.Type != domain.RecommendationQuickWorkout {
		t.Fatalf("Type = %s, want quick_workout for a 15 minute budget", result.Type)
	}
	if result.Format != domain.FormatCircuit {
		t.Errorf("Format = %s, want CIRCUIT for a short home session", result.Format)
	}
	if len(result.WorkingSets) == 0 {
		t.Fatal("quick workout has no working sets")
	}
	// Missing check-in defaults to a moderate prescription.
	for _, ws := range result.WorkingSets {
		if ws.Sets != 3 || ws.Reps != 10 {
			t.Errorf("%s prescribed %dx%d, want the moderate 3x10", ws.Name, ws.Sets, ws.Reps)
		}
	}
	// Everything prescribed must be performable at home.
	home := domain.LocationHome.EquipmentProfile()
	for _, ws := range result.WorkingSets {
		id, err := primitive.ObjectIDFromHex(ws.ExerciseID)
		if err != nil {
			t.Fatalf("working set carries invalid exercise id %q", ws.ExerciseID)
		}
		ex, err := svc.exerciseRepo.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("working set references unknown exercise %s", ws.Name)
		}
		if !ex.RequiresOnly(home) {
			t.Errorf("%s requires equipment not available at home", ex.Name)
		}
	}
	if result.DurationMinutes > 15 {
		t.Errorf("DurationMinutes = %d, exceeds the 15 minute budget", result.DurationMinutes)
	}
	if result.EstimatedCalories <= 0 {
		t.Error("EstimatedCalories must be positive for a workout")
	}
}

func TestRecommend_FullWorkoutAtGym(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	readiness := &fakeReadinessRepo{}
	userID := primitive.NewObjectID()
	logCheckin(t, readiness, userID, now, ReadinessInput{
		EnergyLevel: 7, MotivationLevel: 7, MoodLevel: 7, SorenessLevel: 3, // score 7: HIGH
	})

	svc := newTestRecommendationService(newFakeUserRepo(), newFakeRecoveryRepo(), readiness, testCatalog(), now)
	result, err := svc.Recommend(context.Background(), userID, domain.RecommendationRequest{
		AvailableMinutes: 60, EnergyLevel: domain.EnergyMedium, Location: domain.LocationGym,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if result.Type != domain.RecommendationFullWorkout {
		t.Fatalf("Type = %s, want full_workout", result.Type)
	}
	if result.Format != domain.FormatStraightSets {
		t.Errorf("Format = %s, want STRAIGHT_SETS for a long gym session below max intensity", result.Format)
	}
	if len(result.TargetMuscles) == 0 || len(result.TargetMuscles) > 3 {
		t.Errorf("TargetMuscles = %v, want between 1 and 3 groups", result.TargetMuscles)
	}
	if len(result.Warmup) == 0 || len(result.Cooldown) == 0 {
		t.Error("full workout must bracket with warmup and cooldown")
	}
	for _, ws := range result.WorkingSets {
		if ws.Sets != 4 || ws.Reps != 8 || ws.RestSeconds != 90 {
			t.Errorf("%s prescribed %dx%d rest %ds, want the HIGH tier 4x8 rest 90s", ws.Name, ws.Sets, ws.Reps, ws.RestSeconds)
		}
		if ws.Category == domain.CategoryCompound && ws.Tempo == "" {
			t.Errorf("%s is a compound in a full-rest format, expected a tempo prescription", ws.Name)
		}
	}
	if result.DurationMinutes > 60 {
		t.Errorf("DurationMinutes = %d, exceeds the 60 minute budget", result.DurationMinutes)
	}
}

func TestRecommend_SupersetPairing(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	svc := newTestRecommendationService(newFakeUserRepo(), newFakeRecoveryRepo(), &fakeReadinessRepo{}, testCatalog(), now)
	userID := primitive.NewObjectID()

	result, err := svc.Recommend(context.Background(), userID, domain.RecommendationRequest{
		AvailableMinutes: 40, EnergyLevel: domain.EnergyMedium, Location: domain.LocationHome,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if result.Format != domain.FormatSuperset {
		t.Fatalf("Format = %s, want SUPERSET at home", result.Format)
	}
	if len(result.WorkingSets) < 2 {
		t.Fatalf("need at least one pair, got %d working sets", len(result.WorkingSets))
	}
	first, second := result.WorkingSets[0], result.WorkingSets[1]
	if first.SupersetWith != second.ExerciseID || second.SupersetWith != first.ExerciseID {
		t.Errorf("first pair not cross-linked: %q / %q", first.SupersetWith, second.SupersetWith)
	}
	// Paired exercises share one rest interval: half the moderate 75s.
	if first.RestSeconds != 37 || second.RestSeconds != 37 {
		t.Errorf("paired rest = (%d, %d), want 37s each", first.RestSeconds, second.RestSeconds)
	}
}

func TestRecommend_BodyweightFallback(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	// A machine-only catalog plus one bodyweight movement: at home nothing
	// clears the equipment filter, so the engine must degrade gracefully.
	repo := &fakeExerciseRepo{}
	repo.Create(context.Background(), &domain.Exercise{
		Name: "Chest Press Machine", MuscleGroup: domain.MuscleChest, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentMachines}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 6,
	})
	repo.Create(context.Background(), &domain.Exercise{
		Name: "Lat Pulldown", MuscleGroup: domain.MuscleBack, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentMachines}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 6,
	})
	repo.Create(context.Background(), &domain.Exercise{
		Name: "Burpee", MuscleGroup: domain.MuscleFullBody, Category: domain.CategoryCompound,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 10,
	})

	svc := newTestRecommendationService(newFakeUserRepo(), newFakeRecoveryRepo(), &fakeReadinessRepo{}, repo, now)
	result, err := svc.Recommend(context.Background(), primitive.NewObjectID(), domain.RecommendationRequest{
		AvailableMinutes: 30, EnergyLevel: domain.EnergyMedium, Location: domain.LocationHome,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(result.TargetMuscles) != 1 || result.TargetMuscles[0] != domain.MuscleFullBody {
		t.Errorf("TargetMuscles = %v, want the FULL_BODY fallback", result.TargetMuscles)
	}
	if len(result.WorkingSets) == 0 {
		t.Fatal("fallback produced no working sets")
	}
	for _, ws := range result.WorkingSets {
		if ws.Name != "Burpee" {
			t.Errorf("fallback prescribed %s, want bodyweight work only", ws.Name)
		}
	}
}

func TestSelectTargetMuscles(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	t.Run("no history prefers the canonical order", func(t *testing.T) {
		targets, allFatigued := selectTargetMuscles(nil, now)
		if allFatigued {
			t.Error("no history must not read as fatigue")
		}
		want := []domain.MuscleGroup{domain.MuscleChest, domain.MuscleBack, domain.MuscleShoulders}
		if len(targets) != len(want) {
			t.Fatalf("targets = %v, want %v", targets, want)
		}
		for i := range want {
			if targets[i] != want[i] {
				t.Fatalf("targets = %v, want %v", targets, want)
			}
		}
	})

	t.Run("recently trained group is skipped", func(t *testing.T) {
		worked := now.Add(-24 * time.Hour) // 50% on the reference session
		states := []domain.MuscleRecoveryState{{
			MuscleGroup: domain.MuscleChest, LastWorkedAt: &worked, LastSessionSets: 10, LastSessionRPE: 7,
		}}
		targets, allFatigued := selectTargetMuscles(states, now)
		if allFatigued {
			t.Error("one fatigued group must not flag the whole set")
		}
		for _, g := range targets {
			if g == domain.MuscleChest {
				t.Error("chest at 50% recovery should not be targeted while fresh groups exist")
			}
		}
	})

	t.Run("all fatigued picks the least fatigued", func(t *testing.T) {
		var states []domain.MuscleRecoveryState
		for i, g := range domain.AllMuscleGroups {
			worked := now.Add(-time.Duration(i+1) * time.Hour)
			states = append(states, domain.MuscleRecoveryState{
				MuscleGroup: g, LastWorkedAt: &worked, LastSessionSets: 10, LastSessionRPE: 7,
			})
		}
		targets, allFatigued := selectTargetMuscles(states, now)
		if !allFatigued {
			t.Error("every group below the threshold should flag allFatigued")
		}
		if len(targets) != 3 {
			t.Fatalf("got %d targets, want 3", len(targets))
		}
		// The groups trained longest ago recovered the most.
		n := len(domain.AllMuscleGroups)
		want := []domain.MuscleGroup{
			domain.AllMuscleGroups[n-1], domain.AllMuscleGroups[n-2], domain.AllMuscleGroups[n-3],
		}
		for i := range want {
			if targets[i] != want[i] {
				t.Fatalf("targets = %v, want %v", targets, want)
			}
		}
	})

	t.Run("never trained outranks trained long ago", func(t *testing.T) {
		worked := now.Add(-300 * time.Hour) // fully recovered, but has history
		states := []domain.MuscleRecoveryState{{
			MuscleGroup: domain.MuscleChest, LastWorkedAt: &worked, LastSessionSets: 10, LastSessionRPE: 7,
		}}
		targets, _ := selectTargetMuscles(states, now)
		for _, g := range targets {
			if g == domain.MuscleChest {
				t.Errorf("chest with history sorted ahead of never-trained groups: %v", targets)
			}
		}
	})
}

func TestChooseFormat(t *testing.T) {
	cases := []struct {
		name     string
		recType  domain.RecommendationType
		minutes  int
		location domain.Location
		level    domain.IntensityLevel
		want     domain.WorkoutFormat
	}{
		{"quick at gym", domain.RecommendationQuickWorkout, 15, domain.LocationGym, domain.IntensityModerate, domain.FormatEMOM},
		{"very short at home", domain.RecommendationQuickWorkout, 8, domain.LocationHome, domain.IntensityModerate, domain.FormatTabata},
		{"quick at home", domain.RecommendationQuickWorkout, 15, domain.LocationHome, domain.IntensityModerate, domain.FormatCircuit},
		{"long max gym session", domain.RecommendationFullWorkout, 75, domain.LocationGym, domain.IntensityMaximum, domain.FormatCluster},
		{"standard gym session", domain.RecommendationFullWorkout, 50, domain.LocationGym, domain.IntensityHigh, domain.FormatStraightSets},
		{"short gym session", domain.RecommendationFullWorkout, 30, domain.LocationGym, domain.IntensityModerate, domain.FormatSuperset},
		{"long max home gym", domain.RecommendationFullWorkout, 60, domain.LocationHomeGym, domain.IntensityMaximum, domain.FormatRestPause},
		{"standard home gym", domain.RecommendationFullWorkout, 45, domain.LocationHomeGym, domain.IntensityHigh, domain.FormatTraditional},
		{"home session", domain.RecommendationFullWorkout, 45, domain.LocationHome, domain.IntensityHigh, domain.FormatSuperset},
		{"outdoor session", domain.RecommendationFullWorkout, 45, domain.LocationOutdoor, domain.IntensityModerate, domain.FormatCircuit},
		{"hotel session", domain.RecommendationFullWorkout, 30, domain.LocationHotel, domain.IntensityModerate, domain.FormatCircuit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := domain.RecommendationRequest{AvailableMinutes: tc.minutes, Location: tc.location}
			if got := chooseFormat(tc.recType, req, tc.level); got != tc.want {
				t.Errorf("chooseFormat = %s, want %s", got, tc.want)
			}
		})
	}
}

// TestEstimateCalories_Monotonic: more exercises or a harder tier must
// never lower the estimate.
func TestEstimateCalories_Monotonic(t *testing.T) {
	ex := domain.Exercise{Name: "Goblet Squat", CaloriesPerMinute: 8}
	light := schemeForIntensity(domain.IntensityLight)
	max := schemeForIntensity(domain.IntensityMaximum)

	one := estimateCalories([]domain.Exercise{ex}, light, 6, 8)
	two := estimateCalories([]domain.Exercise{ex, ex}, light, 6, 8)
	if two <= one {
		t.Errorf("adding an exercise lowered calories: %d -> %d", one, two)
	}

	harder := estimateCalories([]domain.Exercise{ex}, max, 6, 8)
	if harder <= one {
		t.Errorf("raising intensity lowered calories: %d -> %d", one, harder)
	}
}

func TestRecommend_UnknownUserStillServed(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	svc := newTestRecommendationService(newFakeUserRepo(), newFakeRecoveryRepo(), &fakeReadinessRepo{}, testCatalog(), now)

	// No user record, no check-in, no recovery history: the profile is a
	// bias signal, not a prerequisite.
	result, err := svc.Recommend(context.Background(), primitive.NewObjectID(), domain.RecommendationRequest{
		AvailableMinutes: 45, EnergyLevel: domain.EnergyMedium, Location: domain.LocationGym,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if result.Type != domain.RecommendationFullWorkout {
		t.Errorf("Type = %s, want full_workout", result.Type)
	}
	if len(result.WorkingSets) == 0 {
		t.Error("expected a composed workout for an unknown user")
	}
	if result.Language != "en" {
		t.Errorf("Language = %q, want the en default for an unknown user", result.Language)
	}
}

// TestRecommend_EchoesPreferredLanguage verifies that the profile's
// stored language preference surfaces on the result so clients know
// which side of the bilingual rationale to display.
func TestRecommend_EchoesPreferredLanguage(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	users := newFakeUserRepo()
	userID, err := users.Create(context.Background(), &domain.User{
		Name:     "Оля",
		Email:    "olya@example.com",
		Role:     domain.RoleMember,
		Language: "RU", // Stored casing must not matter
	})
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	svc := newTestRecommendationService(users, newFakeRecoveryRepo(), &fakeReadinessRepo{}, testCatalog(), now)
	result, err := svc.Recommend(context.Background(), userID, domain.RecommendationRequest{
		AvailableMinutes: 45, EnergyLevel: domain.EnergyMedium, Location: domain.LocationGym,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if result.Language != "ru" {
		t.Errorf("Language = %q, want ru", result.Language)
	}
	// The preference picks a side, it never drops the other one.
	for i, r := range result.Rationale {
		if r.En == "" || r.Ru == "" {
			t.Errorf("rationale %d is missing a translation: %+v", i, r)
		}
	}
}
