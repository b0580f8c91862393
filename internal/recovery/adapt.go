package recovery

import (
	"fmt"
	"math"
	"strings"

	"github.com/meltforce/fitcoach/internal/models"
)

// Exercise caps per mode. Modes not listed keep the whole day.
var modeExerciseCap = map[models.ExerciseMode]int{
	models.ModeExpress: 3,
	models.ModeReduced: 4,
}

// Messages derives the user-facing adaptation notes shown on the screening
// summary, after the rule warnings.
func Messages(res models.AdjustmentResult) []string {
	var msgs []string
	switch res.ExerciseMode {
	case models.ModeExpress:
		msgs = append(msgs, "Express mode: main lifts only")
	case models.ModeReduced:
		msgs = append(msgs, "Reduced mode: accessories trimmed")
	case models.ModeFull:
		msgs = append(msgs, "Full mode: complete session")
	case models.ModeExtended:
		msgs = append(msgs, "Extended mode: extra sets on main lifts")
	}
	if res.RestMultiplier < 1 {
		msgs = append(msgs, fmt.Sprintf("Rest periods at %.0f%%", res.RestMultiplier*100))
	}
	if res.VolumeMultiplier != 1 {
		msgs = append(msgs, fmt.Sprintf("Volume at %.0f%%", res.VolumeMultiplier*100))
	}
	if res.IntensityMultiplier != 1 {
		msgs = append(msgs, fmt.Sprintf("Intensity at %.0f%%", res.IntensityMultiplier*100))
	}
	if len(res.SkipExercises) > 0 {
		msgs = append(msgs, "Skipping: "+strings.Join(res.SkipExercises, ", "))
	}
	if len(msgs) == 0 {
		msgs = append(msgs, "No adaptation needed")
	}
	return msgs
}

// AdjustDay applies an adjustment to a program day. Excluded exercises are
// dropped, sets scale with volume, load with intensity and rest with the rest
// multiplier. The input day is not modified.
func AdjustDay(day models.ProgramDay, res models.AdjustmentResult) models.ProgramDay {
	out := models.ProgramDay{Name: day.Name, Type: day.Type}
	for _, ex := range day.Exercises {
		if res.Skips(ex.Name) {
			continue
		}
		out.Exercises = append(out.Exercises, AdjustExercise(ex, res))
	}
	if limit, ok := modeExerciseCap[res.ExerciseMode]; ok && len(out.Exercises) > limit {
		out.Exercises = out.Exercises[:limit]
	}
	return out
}

// AdjustExercise scales one prescription. Sets never drop below one.
func AdjustExercise(ex models.ProgramExercise, res models.AdjustmentResult) models.ProgramExercise {
	ex.Sets = max(1, int(math.Round(float64(ex.Sets)*res.VolumeMultiplier)))
	ex.RestSeconds = int(math.Round(float64(ex.RestSeconds) * res.RestMultiplier))
	if ex.IntensityPct > 0 {
		ex.IntensityPct = math.Round(ex.IntensityPct*res.IntensityMultiplier*10) / 10
	}
	if ex.WeightKg > 0 {
		// Round to the nearest 0.5 kg.
		ex.WeightKg = math.Round(ex.WeightKg*res.IntensityMultiplier*2) / 2
	}
	return ex
}
