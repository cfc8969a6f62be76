// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Equipment identifies a piece of training equipment an exercise needs.
type Equipment string

const (
	EquipmentNone       Equipment = "none" // Bodyweight only
	EquipmentDumbbells  Equipment = "dumbbells"
	EquipmentBarbell    Equipment = "barbell"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentBands      Equipment = "bands"
	EquipmentPullupBar  Equipment = "pullup_bar"
	EquipmentMachines   Equipment = "machines"
	EquipmentBench      Equipment = "bench"
)

// ExerciseCategory classifies an exercise's role within a workout.
type ExerciseCategory string

const (
	CategoryCompound  ExerciseCategory = "compound"
	CategoryIsolation ExerciseCategory = "isolation"
	CategoryAccessory ExerciseCategory = "accessory"
	CategoryFinisher  ExerciseCategory = "finisher"
	CategoryMobility  ExerciseCategory = "mobility" // Warmup entries
	CategoryStretch   ExerciseCategory = "stretch"  // Cooldown entries
)

// Exercise represents a single exercise definition in the catalog.
// The catalog is reference data for the recommendation engine: it is
// queried by muscle group, equipment and difficulty, never mutated by it.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	MuscleGroup MuscleGroup      `bson:"muscleGroup" json:"muscleGroup"`
	Category    ExerciseCategory `bson:"category" json:"category"`
	Equipment   []Equipment      `bson:"equipment" json:"equipment"` // ALL listed items are required
	Difficulty  FitnessLevel     `bson:"difficulty" json:"difficulty"`
	Bodyweight  bool             `bson:"bodyweight" json:"bodyweight"`

	// CaloriesPerMinute is the per-category burn heuristic used for the
	// recommendation calorie estimate.
	CaloriesPerMinute float64 `bson:"caloriesPerMinute" json:"caloriesPerMinute"`

	// DemoObjectKey points at the demonstration video in object storage.
	// Exposed to clients only as a presigned URL, never as the raw key.
	DemoObjectKey string `bson:"demoObjectKey,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RequiresOnly reports whether the exercise can be performed with the
// given equipment set. Bodyweight exercises always pass.
func (e *Exercise) RequiresOnly(available map[Equipment]bool) bool {
	if e.Bodyweight || len(e.Equipment) == 0 {
		return true
	}
	for _, eq := range e.Equipment {
		if eq == EquipmentNone {
			continue
		}
		if !available[eq] {
			return false
		}
	}
	return true
}
