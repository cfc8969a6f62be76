package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleMember Role = "member" // Regular app user logging workouts
	RoleCoach  Role = "coach"  // Can manage the exercise catalog
)

// TrainingGoal is a soft bias signal for exercise selection.
type TrainingGoal string

const (
	GoalStrength    TrainingGoal = "strength"
	GoalHypertrophy TrainingGoal = "hypertrophy"
	GoalFatLoss     TrainingGoal = "fat_loss"
	GoalEndurance   TrainingGoal = "endurance"
	GoalGeneral     TrainingGoal = "general_fitness"
)

// FitnessLevel caps how difficult the selected exercises may be.
type FitnessLevel string

const (
	LevelNovice   FitnessLevel = "novice"
	LevelMedium   FitnessLevel = "medium"
	LevelAdvanced FitnessLevel = "advanced"
)

// User represents an app user (member or coach).
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`

	// --- Profile (soft bias signals for the recommendation engine) ---
	Age          int          `bson:"age,omitempty" json:"age,omitempty"`
	Goal         TrainingGoal `bson:"goal,omitempty" json:"goal,omitempty"`
	FitnessLevel FitnessLevel `bson:"fitnessLevel,omitempty" json:"fitnessLevel,omitempty"`
	// Language the user wants rationale text in first ("en" or "ru").
	Language string `bson:"language,omitempty" json:"language,omitempty"`
}

// Helper methods (Optional but can be useful)
func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

// MaxDifficulty maps the user's fitness level to the hardest catalog
// difficulty they should be prescribed. Unset level defaults to medium.
func (u *User) MaxDifficulty() FitnessLevel {
	switch u.FitnessLevel {
	case LevelNovice, LevelMedium, LevelAdvanced:
		return u.FitnessLevel
	default:
		return LevelMedium
	}
}
