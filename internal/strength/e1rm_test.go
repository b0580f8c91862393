package strength

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate1RM(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{"1 rep is same as weight", 100, 1, 100},
		{"100kg x 10", 100, 10, 133.333},
		{"100kg x 5", 100, 5, 116.667},
		{"80kg x 12", 80, 12, 112},
		{"zero reps", 100, 0, 0},
		{"zero weight", 0, 5, 0},
		{"negative weight", -20, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate1RM(tt.weight, tt.reps)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Estimate1RM(%v, %v) = %v, want %v", tt.weight, tt.reps, got, tt.want)
			}
		})
	}
}

func TestEstimate1RM_RepsCapped(t *testing.T) {
	at12 := Estimate1RM(100, 12)
	for _, reps := range []int{13, 15, 20, 50} {
		assert.Equal(t, at12, Estimate1RM(100, reps), "reps=%d", reps)
	}
}

func TestWorkingWeight(t *testing.T) {
	assert.InDelta(t, 80.0, WorkingWeight(100, 80, 2.5), 1e-9)
	// 123 * 0.75 = 92.25 -> 92.5
	assert.InDelta(t, 92.5, WorkingWeight(123, 75, 2.5), 1e-9)
	assert.Zero(t, WorkingWeight(0, 75, 2.5))
	assert.Zero(t, WorkingWeight(100, 75, 0))
}

func TestProgression(t *testing.T) {
	d1 := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 3)
	logs := []models.WorkoutLog{
		{
			ID: uuid.New(), Status: models.WorkoutCompleted, CompletedAt: d2,
			Exercises: []models.ExerciseLog{
				{ExerciseName: "Squat", SetNumber: 1, WeightKg: 105, Reps: 5},
				{ExerciseName: "Bench Press", SetNumber: 1, WeightKg: 80, Reps: 5},
			},
		},
		{
			ID: uuid.New(), Status: models.WorkoutCompleted, CompletedAt: d1,
			Exercises: []models.ExerciseLog{
				{ExerciseName: "Squat", SetNumber: 1, WeightKg: 100, Reps: 5},
				{ExerciseName: "Squat", SetNumber: 2, WeightKg: 100, Reps: 6},
			},
		},
		{ID: uuid.New(), Status: models.WorkoutSkipped, CompletedAt: d1.AddDate(0, 0, 1)},
	}

	points := Progression(logs, "Squat")
	require.Len(t, points, 2)
	assert.Equal(t, "2026-03-02", points[0].Date)
	assert.Equal(t, 2, points[0].TotalSets)
	assert.Equal(t, 6, points[0].Reps)
	assert.InDelta(t, 120.0, points[0].E1RM, 1e-9)
	assert.Equal(t, "2026-03-05", points[1].Date)
	assert.InDelta(t, 122.5, points[1].E1RM, 1e-9)

	assert.Empty(t, Progression(logs, "Deadlift"))
	assert.Equal(t, []string{"Bench Press", "Squat"}, ExerciseNames(logs))

	best := BestEstimates(logs)
	assert.InDelta(t, 122.5, best["Squat"], 1e-9)
}

func TestInferMissingBaselines(t *testing.T) {
	known := map[string]float64{LiftSquat: 140}

	got := InferMissingBaselines(known, models.LevelIntermediate, models.SexMale, 80)

	assert.Equal(t, 140.0, got[LiftSquat], "reported baseline must be kept")
	assert.Equal(t, 80.0, got[LiftBenchPress])
	assert.Equal(t, 120.0, got[LiftDeadlift])
	assert.Equal(t, 52.5, got[LiftOverheadPress])
	assert.Len(t, known, 1, "input map must not be modified")
}

func TestInferMissingBaselines_Defaults(t *testing.T) {
	got := InferMissingBaselines(nil, "", models.SexFemale, 0)

	// beginner ratios, 70 kg default bodyweight, female scale 0.7
	// squat: 70 * 0.75 * 0.7 = 36.75 -> 37.5
	assert.Equal(t, 37.5, got[LiftSquat])
	assert.Len(t, got, 5)
}
