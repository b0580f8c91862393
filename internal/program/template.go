package program

import (
	"context"
	"fmt"
	"math"

	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/strength"
	"go.uber.org/multierr"
)

// Request limits enforced by TemplateGenerator.
const (
	MinFrequency       = 1
	MaxFrequency       = 6
	MinSessionDuration = 15
	MaxSessionDuration = 240
	daysPerWeek        = 7
	minExercises       = 2
	maxExercises       = 8
	plateIncrementKg   = 2.5
)

// TemplateGenerator builds programs from the built-in exercise catalog.
type TemplateGenerator struct{}

// Generate validates req and lays out a weekly split. Validation failures
// produce a blocked result, not an error.
func (TemplateGenerator) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return blocked(err), nil
	}

	excluded := map[string]bool{}
	for _, area := range req.PainAreas {
		for _, name := range models.ExcludedExercises(area) {
			excluded[name] = true
		}
	}

	sp := splitFor(req.Frequency)
	limit := exerciseLimit(req.SessionDuration)
	var days []models.ProgramDay
	var errs error
	for i := range req.Frequency {
		tmpl := sp.Days[i%len(sp.Days)]
		day := strengthDay(req, tmpl, excluded, limit)
		if len(day.Exercises) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("no %s exercises left for %s after pain exclusions", tmpl, req.Location))
			continue
		}
		day.Name = fmt.Sprintf("%s %c", tmpl, 'A'+rune(i/len(sp.Days)))
		days = append(days, day)
	}
	if errs != nil {
		return blocked(errs), nil
	}
	days = append(days, runningDays(req)...)

	return &GenerateResult{Program: &models.TrainingProgram{
		UserID:          req.UserID,
		Name:            fmt.Sprintf("%s (%s)", sp.Name, req.Goal),
		Level:           req.Level,
		Goal:            req.Goal,
		Location:        req.Location,
		Frequency:       req.Frequency,
		SessionDuration: req.SessionDuration,
		WeeklySplit:     models.WeeklySplit{Name: sp.Name, Days: days},
	}}, nil
}

func validateRequest(req GenerateRequest) error {
	var errs error
	if req.Frequency < MinFrequency || req.Frequency > MaxFrequency {
		errs = multierr.Append(errs, fmt.Errorf("frequency must be between %d and %d, got %d", MinFrequency, MaxFrequency, req.Frequency))
	}
	if req.SessionDuration < MinSessionDuration || req.SessionDuration > MaxSessionDuration {
		errs = multierr.Append(errs, fmt.Errorf("session duration must be between %d and %d minutes, got %d", MinSessionDuration, MaxSessionDuration, req.SessionDuration))
	}
	if !req.Goal.Valid() {
		errs = multierr.Append(errs, fmt.Errorf("unknown goal %q", req.Goal))
	}
	if !req.Location.Valid() {
		errs = multierr.Append(errs, fmt.Errorf("unknown location %q", req.Location))
	}
	if !req.Level.Valid() {
		errs = multierr.Append(errs, fmt.Errorf("unknown level %q", req.Level))
	}
	for _, area := range req.PainAreas {
		if !area.Valid() {
			errs = multierr.Append(errs, fmt.Errorf("unknown pain area %q", area))
		}
	}
	if req.Running.Enabled {
		runs := runSessions(req.Running)
		if runs > daysPerWeek {
			errs = multierr.Append(errs, fmt.Errorf("running sessions per week must be at most %d, got %d", daysPerWeek, runs))
		} else if req.Frequency+runs > daysPerWeek {
			errs = multierr.Append(errs, fmt.Errorf("%d strength and %d running sessions do not fit in a week", req.Frequency, runs))
		}
	}
	return errs
}

func blocked(err error) *GenerateResult {
	var msgs []string
	for _, e := range multierr.Errors(err) {
		msgs = append(msgs, e.Error())
	}
	return &GenerateResult{Blocked: &Blocked{Errors: msgs}}
}

// exerciseLimit caps the exercises per day by session length, roughly ten
// minutes per exercise.
func exerciseLimit(duration int) int {
	return max(minExercises, min(maxExercises, duration/10))
}

func strengthDay(req GenerateRequest, tmpl dayTemplate, excluded map[string]bool, limit int) models.ProgramDay {
	rx := prescriptions[req.Goal]
	day := models.ProgramDay{Type: models.DayStrength}
	for _, entry := range catalog[req.Location][tmpl] {
		if len(day.Exercises) == limit {
			break
		}
		if excluded[entry.Name] {
			continue
		}
		day.Exercises = append(day.Exercises, prescribe(entry, rx, req))
	}
	return day
}

func prescribe(entry catalogEntry, rx prescription, req GenerateRequest) models.ProgramExercise {
	ex := models.ProgramExercise{
		Name:        entry.Name,
		Sets:        rx.Sets,
		Reps:        rx.Reps,
		RestSeconds: rx.RestSeconds,
	}
	if !entry.Compound {
		ex.Sets = max(2, rx.Sets-1)
		ex.Reps = rx.AccessoryRep
		ex.RestSeconds = int(math.Round(float64(rx.RestSeconds) * 2 / 3))
		return ex
	}

	intensity := rx.IntensityPct
	switch req.Level {
	case models.LevelBeginner:
		ex.Sets = max(2, ex.Sets-1)
		intensity -= 5
	case models.LevelAdvanced:
		ex.Sets++
		intensity = min(90, intensity+5)
	}
	ex.IntensityPct = intensity
	if oneRM, ok := req.Baselines[entry.Name]; ok {
		ex.WeightKg = strength.WorkingWeight(oneRM, intensity, plateIncrementKg)
	}
	return ex
}

func runSessions(r models.RunningPrefs) int {
	if r.SessionsPerWeek <= 0 {
		return 1
	}
	return r.SessionsPerWeek
}

func runningDays(req GenerateRequest) []models.ProgramDay {
	if !req.Running.Enabled {
		return nil
	}
	level := req.Running.Level
	if !level.Valid() {
		level = req.Level
	}
	minutes := runMinutes[level]

	var days []models.ProgramDay
	for i := range runSessions(req.Running) {
		name := runRotation[i%len(runRotation)]
		dur := minutes
		if name == "Long Run" {
			dur = minutes * 3 / 2
		}
		days = append(days, models.ProgramDay{
			Name: name,
			Type: models.DayRunning,
			Exercises: []models.ProgramExercise{{
				Name:  name,
				Sets:  1,
				Reps:  fmt.Sprintf("%d min", dur),
				Notes: req.Running.Goal,
			}},
		})
	}
	return days
}
