package domain

// EnergyLevel is the user's self-reported energy at request time.
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

// Location is where the user is about to train. Each location implies an
// equipment profile used to filter catalog exercises.
type Location string

const (
	LocationGym     Location = "gym"
	LocationHome    Location = "home"
	LocationHomeGym Location = "home_gym"
	LocationOutdoor Location = "outdoor"
	LocationHotel   Location = "hotel"
)

// EquipmentProfile returns the equipment assumed available at a location.
func (l Location) EquipmentProfile() map[Equipment]bool {
	switch l {
	case LocationGym:
		return map[Equipment]bool{
			EquipmentDumbbells: true, EquipmentBarbell: true, EquipmentKettlebell: true,
			EquipmentBands: true, EquipmentPullupBar: true, EquipmentMachines: true,
			EquipmentBench: true,
		}
	case LocationHomeGym:
		return map[Equipment]bool{
			EquipmentDumbbells: true, EquipmentBarbell: true, EquipmentKettlebell: true,
			EquipmentBands: true, EquipmentPullupBar: true, EquipmentBench: true,
		}
	case LocationHome:
		return map[Equipment]bool{
			EquipmentDumbbells: true, EquipmentBands: true,
		}
	case LocationOutdoor:
		return map[Equipment]bool{
			EquipmentPullupBar: true,
		}
	default: // hotel and anything unknown: bodyweight plus bands
		return map[Equipment]bool{
			EquipmentBands: true,
		}
	}
}

// WorkoutFormat is the structural pattern governing how exercises are
// sequenced and timed.
type WorkoutFormat string

const (
	FormatEMOM         WorkoutFormat = "EMOM"
	FormatTabata       WorkoutFormat = "TABATA"
	FormatCircuit      WorkoutFormat = "CIRCUIT"
	FormatSuperset     WorkoutFormat = "SUPERSET"
	FormatStraightSets WorkoutFormat = "STRAIGHT_SETS"
	FormatCluster      WorkoutFormat = "CLUSTER"
	FormatRestPause    WorkoutFormat = "REST_PAUSE"
	FormatTraditional  WorkoutFormat = "TRADITIONAL"
)

// RecommendationType is the top-level shape of a recommendation.
type RecommendationType string

const (
	RecommendationRest           RecommendationType = "rest"
	RecommendationActiveRecovery RecommendationType = "active_recovery"
	RecommendationQuickWorkout   RecommendationType = "quick_workout"
	RecommendationFullWorkout    RecommendationType = "full_workout"
)

// Rationale is one human-readable justification for a recommendation,
// always carried in both supported languages.
type Rationale struct {
	En string `json:"en"`
	Ru string `json:"ru"`
}

// AuxiliaryEntry is a warmup or cooldown item.
type AuxiliaryEntry struct {
	ExerciseID      string      `json:"exerciseId,omitempty"`
	Name            string      `json:"name"`
	MuscleGroup     MuscleGroup `json:"muscleGroup"`
	DurationSeconds int         `json:"durationSeconds"`
}

// WorkingSet is a prescribed exercise entry within the main block.
type WorkingSet struct {
	ExerciseID   string           `json:"exerciseId"`
	Name         string           `json:"name"`
	MuscleGroup  MuscleGroup      `json:"muscleGroup"`
	Category     ExerciseCategory `json:"category"`
	Sets         int              `json:"sets"`
	Reps         int              `json:"reps"`
	RestSeconds  int              `json:"restSeconds"`
	Tempo        string           `json:"tempo,omitempty"`        // e.g. "3-1-1"
	TargetRPE    float64          `json:"targetRpe,omitempty"`    // 0 = unspecified
	SupersetWith string           `json:"supersetWith,omitempty"` // Paired exercise ID
}

// RecommendationRequest is the situational input to the selector.
// It is ephemeral and never persisted.
type RecommendationRequest struct {
	AvailableMinutes int         `json:"availableMinutes"`
	EnergyLevel      EnergyLevel `json:"energyLevel"`
	Location         Location    `json:"location"`
}

// RecommendationResult is the engine's answer to "what should I do now".
type RecommendationResult struct {
	ID                string             `json:"id"`       // Ephemeral, for client-side correlation
	Language          string             `json:"language"` // User's preferred rationale language ("en" or "ru")
	Type              RecommendationType `json:"type"`
	Format            WorkoutFormat      `json:"format,omitempty"`
	DurationMinutes   int                `json:"durationMinutes"`
	EstimatedCalories int                `json:"estimatedCalories"`
	TargetMuscles     []MuscleGroup      `json:"targetMuscles,omitempty"`
	Warmup            []AuxiliaryEntry   `json:"warmup,omitempty"`
	WorkingSets       []WorkingSet       `json:"workingSets,omitempty"`
	Cooldown          []AuxiliaryEntry   `json:"cooldown,omitempty"`
	Rationale         []Rationale        `json:"rationale"`
}
