// Package recovery turns a pre-workout screening into load multipliers and
// exercise exclusions.
//
// Rules run in a fixed order. Time budget and injury compound by
// multiplication, while sleep and stress overwrite the running multipliers.
// The mix is kept exactly as the coaching team tuned it; see DESIGN.md.
package recovery

import (
	"fmt"
	"math"
	"strings"

	"github.com/meltforce/fitcoach/internal/models"
)

// Floors applied after every rule has run.
const (
	MinVolumeMultiplier    = 0.5
	MinIntensityMultiplier = 0.7
)

// Recommendation labels.
const (
	RecommendLight    = "light session"
	RecommendModerate = "moderate session"
	RecommendNormal   = "normal session"
)

// Score computes the adjustment for a screening. It is pure: identical input
// always yields an identical result. Input is expected to have passed Validate.
func Score(a models.RecoveryAssessment) models.AdjustmentResult {
	res := models.AdjustmentResult{
		VolumeMultiplier:    1.0,
		IntensityMultiplier: 1.0,
		RestMultiplier:      1.0,
		ExerciseMode:        models.ModeStandard,
		SkipExercises:       []string{},
		Warnings:            []string{},
	}

	applyTimeBudget(&res, a.AvailableTimeMinutes)
	applySleep(&res, a.SleepHours)
	applyStress(&res, a.StressLevel)
	applyInjury(&res, a)
	if a.IsFemale {
		applyCycle(&res, a.MenstrualCyclePhase)
	}

	res.VolumeMultiplier = math.Max(MinVolumeMultiplier, res.VolumeMultiplier)
	res.IntensityMultiplier = math.Max(MinIntensityMultiplier, res.IntensityMultiplier)
	res.Recommendation = recommend(res)

	return res
}

func applyTimeBudget(res *models.AdjustmentResult, minutes int) {
	switch {
	case minutes <= 20:
		res.ExerciseMode = models.ModeExpress
		res.VolumeMultiplier *= 0.5
		res.RestMultiplier *= 0.6
		res.Warnings = append(res.Warnings, fmt.Sprintf("Express session: only %d minutes available, volume halved and rests shortened", minutes))
	case minutes <= 30:
		res.ExerciseMode = models.ModeReduced
		res.VolumeMultiplier *= 0.7
		res.RestMultiplier *= 0.8
		res.Warnings = append(res.Warnings, fmt.Sprintf("Reduced session: %d minutes available, volume reduced", minutes))
	case minutes >= 75:
		res.ExerciseMode = models.ModeExtended
		res.VolumeMultiplier *= 1.15
		res.Warnings = append(res.Warnings, fmt.Sprintf("Extended session: %d minutes available, extra volume added", minutes))
	case minutes >= 60:
		res.ExerciseMode = models.ModeFull
		res.VolumeMultiplier *= 1.10
		res.Warnings = append(res.Warnings, fmt.Sprintf("Full session: %d minutes available, volume slightly increased", minutes))
	}
}

// applySleep overwrites the volume multiplier instead of compounding it.
func applySleep(res *models.AdjustmentResult, hours float64) {
	switch {
	case hours < 5:
		res.VolumeMultiplier = 0.7
		res.IntensityMultiplier = 0.9
		res.Warnings = append(res.Warnings, fmt.Sprintf("Poor sleep (%.1fh): volume and intensity reduced", hours))
	case hours < 6:
		res.VolumeMultiplier = 0.8
		res.Warnings = append(res.Warnings, fmt.Sprintf("Short sleep (%.1fh): volume reduced", hours))
	}
}

// applyStress overwrites like applySleep.
func applyStress(res *models.AdjustmentResult, level int) {
	switch {
	case level >= 8:
		res.IntensityMultiplier = 0.8
		res.VolumeMultiplier = 0.85
		res.Warnings = append(res.Warnings, fmt.Sprintf("High stress (%d/10): intensity and volume reduced", level))
	case level >= 6:
		res.IntensityMultiplier = 0.9
		res.Warnings = append(res.Warnings, fmt.Sprintf("Elevated stress (%d/10): intensity reduced", level))
	}
}

func applyInjury(res *models.AdjustmentResult, a models.RecoveryAssessment) {
	details := strings.TrimSpace(a.InjuryDetails)
	if !a.HasInjury || (details == "" && len(a.InjuryAreas) == 0) {
		return
	}

	res.VolumeMultiplier *= 0.85
	res.IntensityMultiplier *= 0.85

	areas := InjuryAreas(a)
	seen := make(map[string]bool, len(res.SkipExercises))
	for _, s := range res.SkipExercises {
		seen[s] = true
	}
	for _, area := range areas {
		for _, ex := range models.ExcludedExercises(area) {
			if !seen[ex] {
				seen[ex] = true
				res.SkipExercises = append(res.SkipExercises, ex)
			}
		}
	}

	if len(areas) == 0 {
		res.Warnings = append(res.Warnings, "Injury reported: load reduced, check each exercise for pain")
		return
	}
	names := make([]string, len(areas))
	for i, area := range areas {
		names[i] = string(area)
	}
	res.Warnings = append(res.Warnings, fmt.Sprintf("Injury reported (%s): load reduced, %d exercises excluded",
		strings.Join(names, ", "), len(res.SkipExercises)))
}

// InjuryAreas merges the structured areas of an assessment with the areas
// matched in its free-text details. Structured areas come first.
func InjuryAreas(a models.RecoveryAssessment) []models.BodyArea {
	var areas []models.BodyArea
	seen := map[models.BodyArea]bool{}
	for _, area := range a.InjuryAreas {
		if !seen[area] {
			seen[area] = true
			areas = append(areas, area)
		}
	}
	for _, area := range models.MatchInjuryAreas(a.InjuryDetails) {
		if !seen[area] {
			seen[area] = true
			areas = append(areas, area)
		}
	}
	return areas
}

func applyCycle(res *models.AdjustmentResult, phase models.CyclePhase) {
	switch phase {
	case models.CyclePhaseLuteal:
		res.VolumeMultiplier *= 0.9
		res.Warnings = append(res.Warnings, "Luteal phase: volume slightly reduced")
	case models.CyclePhaseMenstruation:
		res.VolumeMultiplier *= 0.8
		res.Warnings = append(res.Warnings, "Menstruation: volume reduced")
	case models.CyclePhaseMenopause:
		res.VolumeMultiplier *= 0.95
		res.IntensityMultiplier *= 0.95
		res.Warnings = append(res.Warnings, "Menopause: volume and intensity slightly reduced")
	}
}

// Level returns the recommendation label of a result without the warning
// suffix: one of RecommendLight, RecommendModerate or RecommendNormal.
func Level(res models.AdjustmentResult) string {
	lowest := math.Min(res.VolumeMultiplier, res.IntensityMultiplier)
	switch {
	case lowest < 0.75:
		return RecommendLight
	case lowest < 0.9:
		return RecommendModerate
	}
	return RecommendNormal
}

func recommend(res models.AdjustmentResult) string {
	label := Level(res)
	if len(res.Warnings) > 0 {
		return label + ": " + res.Warnings[0]
	}
	return label
}
