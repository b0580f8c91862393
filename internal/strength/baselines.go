package strength

import (
	"maps"
	"math"

	"github.com/meltforce/fitcoach/internal/models"
)

// Main lifts with inferable baselines.
const (
	LiftSquat         = "Squat"
	LiftBenchPress    = "Bench Press"
	LiftDeadlift      = "Deadlift"
	LiftOverheadPress = "Overhead Press"
	LiftBarbellRow    = "Barbell Row"
)

// bodyweightRatios is the estimated 1RM as a multiple of bodyweight, by
// level. Female ratios are scaled by femaleRatioScale.
var bodyweightRatios = map[models.Level]map[string]float64{
	models.LevelBeginner: {
		LiftSquat:         0.75,
		LiftBenchPress:    0.6,
		LiftDeadlift:      1.0,
		LiftOverheadPress: 0.4,
		LiftBarbellRow:    0.5,
	},
	models.LevelIntermediate: {
		LiftSquat:         1.25,
		LiftBenchPress:    1.0,
		LiftDeadlift:      1.5,
		LiftOverheadPress: 0.65,
		LiftBarbellRow:    0.8,
	},
	models.LevelAdvanced: {
		LiftSquat:         1.75,
		LiftBenchPress:    1.35,
		LiftDeadlift:      2.1,
		LiftOverheadPress: 0.85,
		LiftBarbellRow:    1.1,
	},
}

const (
	femaleRatioScale   = 0.7
	defaultBodyweight  = 70.0
	baselineRoundingKg = 2.5
)

// InferMissingBaselines fills the main-lift baselines that the user did not
// report, estimated from bodyweight, sex and level. Reported baselines are
// never replaced. The input map is not modified.
func InferMissingBaselines(known map[string]float64, level models.Level, sex models.Sex, bodyweightKg float64) map[string]float64 {
	out := make(map[string]float64, len(bodyweightRatios[models.LevelBeginner]))
	maps.Copy(out, known)

	ratios, ok := bodyweightRatios[level]
	if !ok {
		ratios = bodyweightRatios[models.LevelBeginner]
	}
	if bodyweightKg <= 0 {
		bodyweightKg = defaultBodyweight
	}
	scale := 1.0
	if sex == models.SexFemale {
		scale = femaleRatioScale
	}

	for lift, ratio := range ratios {
		if v, ok := out[lift]; ok && v > 0 {
			continue
		}
		est := bodyweightKg * ratio * scale
		out[lift] = math.Round(est/baselineRoundingKg) * baselineRoundingKg
	}
	return out
}
