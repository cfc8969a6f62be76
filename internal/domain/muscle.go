package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MuscleGroup identifies a trainable muscle group.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "CHEST"
	MuscleBack      MuscleGroup = "BACK"
	MuscleShoulders MuscleGroup = "SHOULDERS"
	MuscleBiceps    MuscleGroup = "BICEPS"
	MuscleTriceps   MuscleGroup = "TRICEPS"
	MuscleLegs      MuscleGroup = "LEGS"
	MuscleGlutes    MuscleGroup = "GLUTES"
	MuscleCore      MuscleGroup = "CORE"
	MuscleCalves    MuscleGroup = "CALVES"
	MuscleFullBody  MuscleGroup = "FULL_BODY"
)

// AllMuscleGroups lists every group the recovery tracker knows about.
var AllMuscleGroups = []MuscleGroup{
	MuscleChest, MuscleBack, MuscleShoulders, MuscleBiceps, MuscleTriceps,
	MuscleLegs, MuscleGlutes, MuscleCore, MuscleCalves, MuscleFullBody,
}

// IsValidMuscleGroup reports whether s is a known muscle group identifier.
func IsValidMuscleGroup(s string) bool {
	for _, g := range AllMuscleGroups {
		if MuscleGroup(s) == g {
			return true
		}
	}
	return false
}

// MuscleRecoveryState holds the latest training stimulus for one
// (user, muscle group) pair. Recovery percent is NOT stored here: it is
// always recomputed from LastWorkedAt and the stimulus fields at read
// time, so a stale write can never report a wrong recovery value.
type MuscleRecoveryState struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	MuscleGroup MuscleGroup        `bson:"muscleGroup" json:"muscleGroup"`

	// LastWorkedAt is nil until the first session for this group is logged.
	LastWorkedAt    *time.Time `bson:"lastWorkedAt,omitempty" json:"lastWorkedAt,omitempty"`
	LastSessionSets int        `bson:"lastSessionSets" json:"lastSessionSets"`
	LastSessionRPE  float64    `bson:"lastSessionRpe" json:"lastSessionRpe"`

	// Rolling weekly volume counter, reset when WeekStart rolls over.
	SetsAccumulatedThisWeek int       `bson:"setsAccumulatedThisWeek" json:"setsAccumulatedThisWeek"`
	WeekStart               time.Time `bson:"weekStart" json:"weekStart"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// MuscleRecoveryStatus is the computed read-time view of one group's recovery.
type MuscleRecoveryStatus struct {
	MuscleGroup     MuscleGroup `json:"muscleGroup"`
	RecoveryPercent int         `json:"recoveryPercent"` // clamped to [0,100]
	LastWorkedAt    *time.Time  `json:"lastWorkedAt,omitempty"`
	HoursToRecover  int         `json:"hoursToRecover"`
}
