package server

import (
	"fmt"
	"math"

	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/program"
	"go.uber.org/multierr"
)

const (
	maxBodyweightKg = 400
	maxPainLevel    = 10
)

// normalizeAreas maps localized area names to canonical ones. Unknown names
// are kept so validation can reject them.
func normalizeAreas(areas []models.BodyArea) []models.BodyArea {
	out := make([]models.BodyArea, len(areas))
	for i, a := range areas {
		out[i], _ = models.NormalizeBodyArea(string(a))
	}
	return out
}

func validateAreas(field string, areas []models.BodyArea) error {
	var err error
	for _, a := range areas {
		if !a.Valid() {
			err = multierr.Append(err, fmt.Errorf("%s: unknown body area %q", field, a))
		}
	}
	return err
}

// validateProfile checks answered fields only; zero values mean unanswered.
func validateProfile(p models.Profile) error {
	var err error
	if p.Goal != "" && !p.Goal.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown goal %q", p.Goal))
	}
	if p.Location != "" && !p.Location.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown location %q", p.Location))
	}
	for name, lvl := range map[string]models.Level{
		"screening_level": p.ScreeningLevel,
		"quiz_level":      p.QuizLevel,
		"running.level":   p.Running.Level,
	} {
		if lvl != "" && !lvl.Valid() {
			err = multierr.Append(err, fmt.Errorf("%s: unknown level %q", name, lvl))
		}
	}
	if p.Frequency != 0 && (p.Frequency < program.MinFrequency || p.Frequency > program.MaxFrequency) {
		err = multierr.Append(err, fmt.Errorf("frequency must be between %d and %d, got %d",
			program.MinFrequency, program.MaxFrequency, p.Frequency))
	}
	if p.SessionDuration != 0 && (p.SessionDuration < program.MinSessionDuration || p.SessionDuration > program.MaxSessionDuration) {
		err = multierr.Append(err, fmt.Errorf("session_duration must be between %d and %d, got %d",
			program.MinSessionDuration, program.MaxSessionDuration, p.SessionDuration))
	}
	switch p.Sex {
	case "", models.SexMale, models.SexFemale, models.SexOther:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown sex %q", p.Sex))
	}
	if p.BodyweightKg < 0 || p.BodyweightKg > maxBodyweightKg {
		err = multierr.Append(err, fmt.Errorf("bodyweight_kg must be between 0 and %d", maxBodyweightKg))
	}
	for lift, kg := range p.Baselines {
		if kg < 0 || math.IsNaN(kg) {
			err = multierr.Append(err, fmt.Errorf("baseline %q must not be negative", lift))
		}
	}
	if p.Running.SessionsPerWeek < 0 || p.Running.SessionsPerWeek > 7 {
		err = multierr.Append(err, fmt.Errorf("running.sessions_per_week must be between 0 and 7"))
	}
	return multierr.Append(err, validateAreas("pain_areas", p.PainAreas))
}

func validateOverrides(o models.BetaOverrides) error {
	var err error
	if o.FitnessLevel != nil && !o.FitnessLevel.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown fitness_level %q", *o.FitnessLevel))
	}
	if o.Goal != nil && !o.Goal.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown goal %q", *o.Goal))
	}
	if o.Location != nil && !o.Location.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown location %q", *o.Location))
	}
	if o.Frequency != nil && (*o.Frequency < program.MinFrequency || *o.Frequency > program.MaxFrequency) {
		err = multierr.Append(err, fmt.Errorf("frequency must be between %d and %d",
			program.MinFrequency, program.MaxFrequency))
	}
	if o.SessionDuration != nil && (*o.SessionDuration < program.MinSessionDuration || *o.SessionDuration > program.MaxSessionDuration) {
		err = multierr.Append(err, fmt.Errorf("session_duration must be between %d and %d",
			program.MinSessionDuration, program.MaxSessionDuration))
	}
	return multierr.Append(err, validateAreas("pain_areas", o.PainAreas))
}

func validateWorkoutLog(l models.WorkoutLog) error {
	var err error
	switch l.Status {
	case "", models.WorkoutCompleted, models.WorkoutSkipped:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown status %q", l.Status))
	}
	if l.DayIndex < 0 {
		err = multierr.Append(err, fmt.Errorf("day_index must not be negative"))
	}
	if !l.StartedAt.IsZero() && !l.CompletedAt.IsZero() && l.CompletedAt.Before(l.StartedAt) {
		err = multierr.Append(err, fmt.Errorf("completed_at is before started_at"))
	}
	for i, e := range l.Exercises {
		if e.ExerciseName == "" {
			err = multierr.Append(err, fmt.Errorf("exercises[%d]: exercise_name is required", i))
		}
		if e.SetNumber < 1 {
			err = multierr.Append(err, fmt.Errorf("exercises[%d]: set_number must be at least 1", i))
		}
		if e.WeightKg < 0 || e.Reps < 0 {
			err = multierr.Append(err, fmt.Errorf("exercises[%d]: weight and reps must not be negative", i))
		}
		if e.RPE < 0 || e.RPE > 10 {
			err = multierr.Append(err, fmt.Errorf("exercises[%d]: rpe must be between 0 and 10", i))
		}
	}
	return err
}

func validatePainLog(p models.PainLog) error {
	var err error
	if !p.BodyArea.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown body area %q", p.BodyArea))
	}
	if p.Level < 0 || p.Level > maxPainLevel {
		err = multierr.Append(err, fmt.Errorf("level must be between 0 and %d, got %d", maxPainLevel, p.Level))
	}
	return err
}
