package models

import (
	"time"

	"github.com/google/uuid"
)

// CyclePhase is the self-reported menstrual cycle phase.
type CyclePhase string

const (
	CyclePhaseFollicular   CyclePhase = "follicular"
	CyclePhaseOvulation    CyclePhase = "ovulation"
	CyclePhaseLuteal       CyclePhase = "luteal"
	CyclePhaseMenstruation CyclePhase = "menstruation"
	CyclePhaseMenopause    CyclePhase = "menopause"
	CyclePhasePreferNotSay CyclePhase = "prefer_not_say"
)

// Valid reports whether p is a known phase. The empty phase is valid and
// means "not reported".
func (p CyclePhase) Valid() bool {
	switch p {
	case "", CyclePhaseFollicular, CyclePhaseOvulation, CyclePhaseLuteal,
		CyclePhaseMenstruation, CyclePhaseMenopause, CyclePhasePreferNotSay:
		return true
	}
	return false
}

// ExerciseMode is the session shape chosen from the available time.
type ExerciseMode string

const (
	ModeExpress  ExerciseMode = "express"
	ModeReduced  ExerciseMode = "reduced"
	ModeStandard ExerciseMode = "standard"
	ModeFull     ExerciseMode = "full"
	ModeExtended ExerciseMode = "extended"
)

// TimePresets are the available-time choices offered by the screening form.
var TimePresets = []int{20, 30, 45, 60, 90}

// RecoveryAssessment is the pre-workout screening input.
type RecoveryAssessment struct {
	SleepHours           float64    `json:"sleep_hours" yaml:"sleep_hours"`
	StressLevel          int        `json:"stress_level" yaml:"stress_level"`
	HasInjury            bool       `json:"has_injury" yaml:"has_injury"`
	InjuryDetails        string     `json:"injury_details,omitempty" yaml:"injury_details,omitempty"`
	InjuryAreas          []BodyArea `json:"injury_areas,omitempty" yaml:"injury_areas,omitempty"`
	IsFemale             bool       `json:"is_female" yaml:"is_female"`
	MenstrualCyclePhase  CyclePhase `json:"menstrual_cycle_phase,omitempty" yaml:"menstrual_cycle_phase,omitempty"`
	AvailableTimeMinutes int        `json:"available_time_minutes" yaml:"available_time_minutes"`
}

// AdjustmentResult is the load adaptation derived from a RecoveryAssessment.
type AdjustmentResult struct {
	VolumeMultiplier    float64      `json:"volume_multiplier"`
	IntensityMultiplier float64      `json:"intensity_multiplier"`
	RestMultiplier      float64      `json:"rest_multiplier"`
	ExerciseMode        ExerciseMode `json:"exercise_mode"`
	SkipExercises       []string     `json:"skip_exercises"`
	Warnings            []string     `json:"warnings"`
	Recommendation      string       `json:"recommendation"`
}

// Skips reports whether the named exercise is excluded.
func (r AdjustmentResult) Skips(exercise string) bool {
	for _, s := range r.SkipExercises {
		if s == exercise {
			return true
		}
	}
	return false
}

// RecoveryRecord is the audit row written for each scored assessment.
type RecoveryRecord struct {
	ID         uuid.UUID          `json:"id"`
	UserID     int                `json:"user_id"`
	Assessment RecoveryAssessment `json:"assessment"`
	Result     AdjustmentResult   `json:"result"`
	CreatedAt  time.Time          `json:"created_at"`
}
