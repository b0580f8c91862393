package models

import "time"

// Goal is the training goal chosen during onboarding.
type Goal string

const (
	GoalStrength    Goal = "strength"
	GoalHypertrophy Goal = "hypertrophy"
	GoalFatLoss     Goal = "fat_loss"
	GoalEndurance   Goal = "endurance"
	GoalGeneral     Goal = "general_fitness"
)

// Location is where the user trains.
type Location string

const (
	LocationGym  Location = "gym"
	LocationHome Location = "home"
)

// Level is the assessed fitness level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Sex is used for baseline inference and cycle gating.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// RunningPrefs captures the optional running block of onboarding.
type RunningPrefs struct {
	Enabled         bool   `json:"enabled" yaml:"enabled"`
	Level           Level  `json:"level,omitempty" yaml:"level,omitempty"`
	SessionsPerWeek int    `json:"sessions_per_week,omitempty" yaml:"sessions_per_week,omitempty"`
	Goal            string `json:"goal,omitempty" yaml:"goal,omitempty"`
}

// Profile is the onboarding and screening record for a user. Zero values
// mean "not answered".
type Profile struct {
	UserID          int                `json:"user_id" yaml:"-"`
	Goal            Goal               `json:"goal,omitempty" yaml:"goal,omitempty"`
	Location        Location           `json:"location,omitempty" yaml:"location,omitempty"`
	Frequency       int                `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	SessionDuration int                `json:"session_duration,omitempty" yaml:"session_duration,omitempty"`
	PainAreas       []BodyArea         `json:"pain_areas,omitempty" yaml:"pain_areas,omitempty"`
	ScreeningLevel  Level              `json:"screening_level,omitempty" yaml:"screening_level,omitempty"`
	QuizLevel       Level              `json:"quiz_level,omitempty" yaml:"quiz_level,omitempty"`
	Sex             Sex                `json:"sex,omitempty" yaml:"sex,omitempty"`
	BodyweightKg    float64            `json:"bodyweight_kg,omitempty" yaml:"bodyweight_kg,omitempty"`
	Baselines       map[string]float64 `json:"baselines,omitempty" yaml:"baselines,omitempty"`
	Running         RunningPrefs       `json:"running" yaml:"running"`
	UpdatedAt       time.Time          `json:"updated_at" yaml:"-"`
}

// BetaOverrides are tester-controlled values that win over onboarding data
// at generation time. Nil means "no override".
type BetaOverrides struct {
	FitnessLevel    *Level     `json:"fitness_level,omitempty" yaml:"fitness_level,omitempty"`
	Goal            *Goal      `json:"goal,omitempty" yaml:"goal,omitempty"`
	Location        *Location  `json:"location,omitempty" yaml:"location,omitempty"`
	PainAreas       []BodyArea `json:"pain_areas,omitempty" yaml:"pain_areas,omitempty"`
	Frequency       *int       `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	SessionDuration *int       `json:"session_duration,omitempty" yaml:"session_duration,omitempty"`
}

// IsZero reports whether no override is set.
func (o BetaOverrides) IsZero() bool {
	return o.FitnessLevel == nil && o.Goal == nil && o.Location == nil &&
		o.PainAreas == nil && o.Frequency == nil && o.SessionDuration == nil
}

// User is an authenticated account.
type User struct {
	ID          int       `json:"id"`
	Login       string    `json:"login"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email,omitempty"`
	Tier        string    `json:"tier,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Valid reports whether g is a known goal.
func (g Goal) Valid() bool {
	switch g {
	case GoalStrength, GoalHypertrophy, GoalFatLoss, GoalEndurance, GoalGeneral:
		return true
	}
	return false
}

// Valid reports whether l is a known location.
func (l Location) Valid() bool {
	return l == LocationGym || l == LocationHome
}

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}
