package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionEntry is the stimulus logged for one muscle group within a
// completed workout session.
type SessionEntry struct {
	MuscleGroup MuscleGroup `bson:"muscleGroup" json:"muscleGroup"`
	Sets        int         `bson:"sets" json:"sets"` // >= 1
	RPE         float64     `bson:"rpe" json:"rpe"`   // 0-10 perceived exertion
}

// TrainingSession records a completed workout. Each entry fans out into
// the recovery tracker as that muscle group's latest stimulus.
type TrainingSession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	PerformedAt time.Time          `bson:"performedAt" json:"performedAt"`
	Entries     []SessionEntry     `bson:"entries" json:"entries"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
