package models

import (
	"time"

	"github.com/google/uuid"
)

// DayType is the kind of a program day.
type DayType string

const (
	DayStrength DayType = "strength"
	DayRunning  DayType = "running"
	DayRest     DayType = "rest"
)

// ProgramExercise is one prescribed exercise of a program day.
type ProgramExercise struct {
	Name         string  `json:"name"`
	Sets         int     `json:"sets"`
	Reps         string  `json:"reps"`
	RestSeconds  int     `json:"rest_seconds"`
	IntensityPct float64 `json:"intensity_pct,omitempty"`
	WeightKg     float64 `json:"weight_kg,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// ProgramDay is one day of the weekly split.
type ProgramDay struct {
	Name      string            `json:"name"`
	Type      DayType           `json:"type"`
	Exercises []ProgramExercise `json:"exercises"`
}

// WeeklySplit is the repeating week of a program.
type WeeklySplit struct {
	Name string       `json:"name"`
	Days []ProgramDay `json:"days"`
}

// TrainingProgram is a generated program as stored for a user.
type TrainingProgram struct {
	ID              uuid.UUID   `json:"id"`
	UserID          int         `json:"user_id"`
	Name            string      `json:"name"`
	Level           Level       `json:"level"`
	Goal            Goal        `json:"goal"`
	Location        Location    `json:"location"`
	Frequency       int         `json:"frequency"`
	SessionDuration int         `json:"session_duration"`
	WeeklySplit     WeeklySplit `json:"weekly_split"`
	IsActive        bool        `json:"is_active"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Day returns the program day at index, wrapping around the split.
func (p *TrainingProgram) Day(index int) (ProgramDay, bool) {
	n := len(p.WeeklySplit.Days)
	if n == 0 || index < 0 {
		return ProgramDay{}, false
	}
	return p.WeeklySplit.Days[index%n], true
}

// Workout log statuses.
const (
	WorkoutCompleted = "completed"
	WorkoutSkipped   = "skipped"
)

// ExerciseLog is one logged set.
type ExerciseLog struct {
	ExerciseName string  `json:"exercise_name"`
	SetNumber    int     `json:"set_number"`
	WeightKg     float64 `json:"weight_kg"`
	Reps         int     `json:"reps"`
	RPE          float64 `json:"rpe,omitempty"`
}

// WorkoutLog is a completed or skipped workout.
type WorkoutLog struct {
	ID          uuid.UUID     `json:"id"`
	UserID      int           `json:"user_id"`
	ProgramID   *uuid.UUID    `json:"program_id,omitempty"`
	DayIndex    int           `json:"day_index"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at"`
	Status      string        `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	Exercises   []ExerciseLog `json:"exercises"`
}

// PainLog is a self-reported pain entry.
type PainLog struct {
	ID       int64     `json:"id"`
	UserID   int       `json:"user_id"`
	BodyArea BodyArea  `json:"body_area"`
	Level    int       `json:"level"`
	Notes    string    `json:"notes,omitempty"`
	LoggedAt time.Time `json:"logged_at"`
}
