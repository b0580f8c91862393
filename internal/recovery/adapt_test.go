package recovery_test

import (
	"testing"

	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/recovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legDay() models.ProgramDay {
	return models.ProgramDay{
		Name: "Lower",
		Type: models.DayStrength,
		Exercises: []models.ProgramExercise{
			{Name: "Squat", Sets: 4, Reps: "6-8", RestSeconds: 180, IntensityPct: 80, WeightKg: 100},
			{Name: "Romanian Deadlift", Sets: 3, Reps: "8-10", RestSeconds: 120, WeightKg: 80},
			{Name: "Leg Curl", Sets: 3, Reps: "10-12", RestSeconds: 90},
			{Name: "Calf Raise", Sets: 3, Reps: "12-15", RestSeconds: 60},
			{Name: "Plank", Sets: 3, Reps: "45s", RestSeconds: 60},
		},
	}
}

func TestMessages_Neutral(t *testing.T) {
	msgs := recovery.Messages(recovery.Score(neutral()))
	assert.Equal(t, []string{"No adaptation needed"}, msgs)
}

func TestMessages_Express(t *testing.T) {
	a := neutral()
	a.AvailableTimeMinutes = 20
	a.HasInjury = true
	a.InjuryDetails = "knee"

	msgs := recovery.Messages(recovery.Score(a))
	assert.Equal(t, "Express mode: main lifts only", msgs[0])
	assert.Contains(t, msgs, "Rest periods at 60%")
	assert.Contains(t, msgs, "Skipping: Squat, Leg Press, Lunge, Jump Squat")
}

func TestAdjustDay_DropsSkippedAndScales(t *testing.T) {
	a := neutral()
	a.HasInjury = true
	a.InjuryDetails = "ginocchio"
	res := recovery.Score(a)

	day := legDay()
	got := recovery.AdjustDay(day, res)

	require.Len(t, got.Exercises, 4)
	assert.Equal(t, "Romanian Deadlift", got.Exercises[0].Name)
	// 3 sets * 0.85 rounds to 3, 80 kg * 0.85 = 68 kg
	assert.Equal(t, 3, got.Exercises[0].Sets)
	assert.InDelta(t, 68.0, got.Exercises[0].WeightKg, 1e-9)
	// The original day is untouched.
	assert.Equal(t, "Squat", day.Exercises[0].Name)
	assert.Equal(t, 4, day.Exercises[0].Sets)
}

func TestAdjustDay_ExpressCapsExercises(t *testing.T) {
	a := neutral()
	a.AvailableTimeMinutes = 20
	res := recovery.Score(a)

	got := recovery.AdjustDay(legDay(), res)
	require.Len(t, got.Exercises, 3)
	// 4 sets * 0.5 = 2, 180s * 0.6 = 108s
	assert.Equal(t, 2, got.Exercises[0].Sets)
	assert.Equal(t, 108, got.Exercises[0].RestSeconds)
	assert.InDelta(t, 80.0, got.Exercises[0].IntensityPct, 1e-9)
}

func TestAdjustExercise_MinimumOneSet(t *testing.T) {
	res := models.AdjustmentResult{VolumeMultiplier: 0.5, IntensityMultiplier: 0.7, RestMultiplier: 1}
	got := recovery.AdjustExercise(models.ProgramExercise{Name: "Plank", Sets: 1, WeightKg: 21}, res)

	assert.Equal(t, 1, got.Sets)
	// 21 * 0.7 = 14.7, rounded to the nearest half kilo.
	assert.InDelta(t, 14.5, got.WeightKg, 1e-9)
}
