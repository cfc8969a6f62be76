package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IntensityLevel is the discrete daily training-intensity recommendation.
type IntensityLevel string

const (
	IntensityRecovery IntensityLevel = "RECOVERY"
	IntensityLight    IntensityLevel = "LIGHT"
	IntensityModerate IntensityLevel = "MODERATE"
	IntensityHigh     IntensityLevel = "HIGH"
	IntensityMaximum  IntensityLevel = "MAXIMUM"
)

// ReadinessDayFormat is the layout for the calendar-day key on ReadinessLog.
const ReadinessDayFormat = "2006-01-02"

// ReadinessLog is one subjective daily check-in. Logs are appended, never
// updated; when several exist for the same day the newest one wins.
//
// RecommendedIntensity and ShouldSkipWorkout are derived from the raw
// inputs once, at log time, and stored with the log so history stays
// stable even if classification thresholds change later.
type ReadinessLog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Day    string             `bson:"day" json:"day"` // UTC calendar day, ReadinessDayFormat

	EnergyLevel     int  `bson:"energyLevel" json:"energyLevel"`         // 1-10
	MotivationLevel int  `bson:"motivationLevel" json:"motivationLevel"` // 1-10
	MoodLevel       int  `bson:"moodLevel" json:"moodLevel"`             // 1-10
	// Optional explicit 1-10 override of the averaged score (0 = not supplied).
	OverallReadiness int  `bson:"overallReadiness,omitempty" json:"overallReadiness,omitempty"`
	SorenessLevel    int  `bson:"sorenessLevel" json:"sorenessLevel"` // 1-10
	PainIntensity    int  `bson:"painIntensity" json:"painIntensity"` // 0-10
	FeelingIll       bool `bson:"feelingIll" json:"feelingIll"`

	// --- Derived at log time ---
	Score                int            `bson:"score" json:"score"`
	RecommendedIntensity IntensityLevel `bson:"recommendedIntensity" json:"recommendedIntensity"`
	ShouldSkipWorkout    bool           `bson:"shouldSkipWorkout" json:"shouldSkipWorkout"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
