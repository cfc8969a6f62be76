// Package catalog ships the default exercise reference data. The catalog
// lives in MongoDB so coaches can extend it; this seed only runs against
// an empty collection.
package catalog

import (
	"context"
	"fmt"

	"vigor/fitness-app/internal/domain"
	"vigor/fitness-app/internal/repository"
)

// DefaultExercises is the built-in catalog. Calories-per-minute values
// are rough per-category heuristics: compounds burn the most, mobility
// and stretching the least.
var DefaultExercises = []domain.Exercise{
	// --- CHEST ---
	{Name: "Barbell Bench Press", MuscleGroup: domain.MuscleChest, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentBench}, Difficulty: domain.LevelMedium, CaloriesPerMinute: 8},
	{Name: "Dumbbell Bench Press", MuscleGroup: domain.MuscleChest, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentDumbbells, domain.EquipmentBench}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 8},
	{Name: "Push-Up", MuscleGroup: domain.MuscleChest, Category: domain.CategoryCompound,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 7},
	{Name: "Dumbbell Fly", MuscleGroup: domain.MuscleChest, Category: domain.CategoryIsolation,
		Equipment: []domain.Equipment{domain.EquipmentDumbbells, domain.EquipmentBench}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 5},
	{Name: "Cable Crossover", MuscleGroup: domain.MuscleChest, Category: domain.CategoryIsolation,
		Equipment: []domain.Equipment{domain.EquipmentMachines}, Difficulty: domain.LevelMedium, CaloriesPerMinute: 5},

	// --- BACK ---
	{Name: "Pull-Up", MuscleGroup: domain.MuscleBack, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentPullupBar}, Bodyweight: true, Difficulty: domain.LevelMedium, CaloriesPerMinute: 8},
	{Name: "Barbell Row", MuscleGroup: domain.MuscleBack, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentBarbell}, Difficulty: domain.LevelMedium, CaloriesPerMinute: 8},
	{Name: "One-Arm Dumbbell Row", MuscleGroup: domain.MuscleBack, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentDumbbells}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 7},
	{Name: "Lat Pulldown", MuscleGroup: domain.MuscleBack, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentMachines}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 7},
	{Name: "Band Pull-Apart", MuscleGroup: domain.MuscleBack, Category: domain.CategoryAccessory,
		Equipment: []domain.Equipment{domain.EquipmentBands}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 4},
	{Name: "Superman Hold", MuscleGroup: domain.MuscleBack, Category: domain.CategoryAccessory,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 4},

	// --- SHOULDERS ---
	{Name: "Overhead Press", MuscleGroup: domain.MuscleShoulders, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentBarbell}, Difficulty: domain.LevelMedium, CaloriesPerMinute: 7},
	{Name: "Dumbbell Shoulder Press", MuscleGroup: domain.MuscleShoulders, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentDumbbells}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 7},
	{Name: "Lateral Raise", MuscleGroup: domain.MuscleShoulders, Category: domain.CategoryIsolation,
		Equipment: []domain.Equipment{domain.EquipmentDumbbells}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 5},
	{Name: "Pike Push-Up", MuscleGroup: domain.MuscleShoulders, Category: domain.CategoryCompound,
		Bodyweight: true, Difficulty: domain.LevelMedium, CaloriesPerMinute: 7},
	{Name: "Band Face Pull", MuscleGroup: domain.MuscleShoulders, Category: domain.CategoryAccessory,
		Equipment: []domain.Equipment{domain.EquipmentBands}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 4},

	// --- BICEPS ---
	{Name: "Barbell Curl", MuscleGroup: domain.MuscleBiceps, Category: domain.CategoryIsolation,
		Equipment: []domain.Equipment{domain.EquipmentBarbell}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 5},
	{Name: "Dumbbell Curl", MuscleGroup: domain.MuscleBiceps, Category: domain.CategoryIsolation,
		Equipment: []domain.Equipment{domain.EquipmentDumbbells}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 5},
	{Name: "Chin-Up", MuscleGroup: domain.MuscleBiceps, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentPullupBar}, Bodyweight: true, Difficulty: domain.LevelMedium, CaloriesPerMinute: 8},
	{Name: "Band Curl", MuscleGroup: domain.MuscleBiceps, Category: domain.CategoryIsolation,
		Equipment: []domain.Equipment{domain.EquipmentBands}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 4},

	// --- TRICEPS ---
	{Name: "Close-Grip Bench Press", MuscleGroup: domain.MuscleTriceps, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentBench}, Difficulty: domain.LevelMedium, CaloriesPerMinute: 7},
	{Name: "Bench Dip", MuscleGroup: domain.MuscleTriceps, Category: domain.CategoryCompound,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 6},
	{Name: "Overhead Triceps Extension", MuscleGroup: domain.MuscleTriceps, Category: domain.CategoryIsolation,
		Equipment: []domain.Equipment{domain.EquipmentDumbbells}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 5},
	{Name: "Diamond Push-Up", MuscleGroup: domain.MuscleTriceps, Category: domain.CategoryIsolation,
		Bodyweight: true, Difficulty: domain.LevelMedium, CaloriesPerMinute: 6},

	// --- LEGS ---
	{Name: "Barbell Back Squat", MuscleGroup: domain.MuscleLegs, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentBarbell}, Difficulty: domain.LevelMedium, CaloriesPerMinute: 9},
	{Name: "Goblet Squat", MuscleGroup: domain.MuscleLegs, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentDumbbells}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 8},
	{Name: "Bodyweight Squat", MuscleGroup: domain.MuscleLegs, Category: domain.CategoryCompound,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 7},
	{Name: "Walking Lunge", MuscleGroup: domain.MuscleLegs, Category: domain.CategoryCompound,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 8},
	{Name: "Leg Press", MuscleGroup: domain.MuscleLegs, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentMachines}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 8},
	{Name: "Kettlebell Swing", MuscleGroup: domain.MuscleLegs, Category: domain.CategoryFinisher,
		Equipment: []domain.Equipment{domain.EquipmentKettlebell}, Difficulty: domain.LevelMedium, CaloriesPerMinute: 10},

	// --- GLUTES ---
	{Name: "Hip Thrust", MuscleGroup: domain.MuscleGlutes, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentBarbell, domain.EquipmentBench}, Difficulty: domain.LevelMedium, CaloriesPerMinute: 7},
	{Name: "Glute Bridge", MuscleGroup: domain.MuscleGlutes, Category: domain.CategoryCompound,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 6},
	{Name: "Romanian Deadlift", MuscleGroup: domain.MuscleGlutes, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentBarbell}, Difficulty: domain.LevelMedium, CaloriesPerMinute: 8},
	{Name: "Band Lateral Walk", MuscleGroup: domain.MuscleGlutes, Category: domain.CategoryAccessory,
		Equipment: []domain.Equipment{domain.EquipmentBands}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 5},

	// --- CORE ---
	{Name: "Plank", MuscleGroup: domain.MuscleCore, Category: domain.CategoryAccessory,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 4},
	{Name: "Hanging Knee Raise", MuscleGroup: domain.MuscleCore, Category: domain.CategoryAccessory,
		Equipment: []domain.Equipment{domain.EquipmentPullupBar}, Bodyweight: true, Difficulty: domain.LevelMedium, CaloriesPerMinute: 5},
	{Name: "Russian Twist", MuscleGroup: domain.MuscleCore, Category: domain.CategoryAccessory,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 5},
	{Name: "Ab Wheel Rollout", MuscleGroup: domain.MuscleCore, Category: domain.CategoryAccessory,
		Equipment: []domain.Equipment{domain.EquipmentMachines}, Difficulty: domain.LevelAdvanced, CaloriesPerMinute: 6},
	{Name: "Mountain Climber", MuscleGroup: domain.MuscleCore, Category: domain.CategoryFinisher,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 9},

	// --- CALVES ---
	{Name: "Standing Calf Raise", MuscleGroup: domain.MuscleCalves, Category: domain.CategoryIsolation,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 4},
	{Name: "Seated Calf Raise", MuscleGroup: domain.MuscleCalves, Category: domain.CategoryIsolation,
		Equipment: []domain.Equipment{domain.EquipmentMachines}, Difficulty: domain.LevelNovice, CaloriesPerMinute: 4},

	// --- FULL BODY ---
	{Name: "Burpee", MuscleGroup: domain.MuscleFullBody, Category: domain.CategoryFinisher,
		Bodyweight: true, Difficulty: domain.LevelMedium, CaloriesPerMinute: 11},
	{Name: "Thruster", MuscleGroup: domain.MuscleFullBody, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentDumbbells}, Difficulty: domain.LevelMedium, CaloriesPerMinute: 10},
	{Name: "Deadlift", MuscleGroup: domain.MuscleFullBody, Category: domain.CategoryCompound,
		Equipment: []domain.Equipment{domain.EquipmentBarbell}, Difficulty: domain.LevelAdvanced, CaloriesPerMinute: 9},
	{Name: "Jumping Jack", MuscleGroup: domain.MuscleFullBody, Category: domain.CategoryFinisher,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 8},

	// --- MOBILITY (warmup pool) ---
	{Name: "Arm Circles", MuscleGroup: domain.MuscleShoulders, Category: domain.CategoryMobility,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 3},
	{Name: "Leg Swings", MuscleGroup: domain.MuscleLegs, Category: domain.CategoryMobility,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 3},
	{Name: "Cat-Cow", MuscleGroup: domain.MuscleCore, Category: domain.CategoryMobility,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 2},
	{Name: "Hip Opener", MuscleGroup: domain.MuscleGlutes, Category: domain.CategoryMobility,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 3},
	{Name: "Scapular Push-Up", MuscleGroup: domain.MuscleChest, Category: domain.CategoryMobility,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 3},
	{Name: "World's Greatest Stretch", MuscleGroup: domain.MuscleFullBody, Category: domain.CategoryMobility,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 3},

	// --- STRETCH (cooldown pool) ---
	{Name: "Doorway Chest Stretch", MuscleGroup: domain.MuscleChest, Category: domain.CategoryStretch,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 2},
	{Name: "Child's Pose", MuscleGroup: domain.MuscleBack, Category: domain.CategoryStretch,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 2},
	{Name: "Quad Stretch", MuscleGroup: domain.MuscleLegs, Category: domain.CategoryStretch,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 2},
	{Name: "Hamstring Stretch", MuscleGroup: domain.MuscleLegs, Category: domain.CategoryStretch,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 2},
	{Name: "Pigeon Pose", MuscleGroup: domain.MuscleGlutes, Category: domain.CategoryStretch,
		Bodyweight: true, Difficulty: domain.LevelNovice, CaloriesPerMinute: 2},
}

// Seed inserts the default catalog when the exercises collection is
// empty. An already-populated catalog is left untouched so coach edits
// survive restarts.
func Seed(ctx context.Context, repo repository.ExerciseRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check catalog size: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for i := range DefaultExercises {
		ex := DefaultExercises[i] // Copy: Create mutates ID/timestamps
		if _, err := repo.Create(ctx, &ex); err != nil {
			return inserted, fmt.Errorf("failed to seed exercise %q: %w", ex.Name, err)
		}
		inserted++
	}
	return inserted, nil
}
