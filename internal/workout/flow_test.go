package workout_test

import (
	"testing"
	"time"

	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/workout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var morning = time.Date(2026, 5, 11, 7, 30, 0, 0, time.UTC)

func at(state models.FlowState) models.WorkoutSession {
	return models.WorkoutSession{UserID: 1, State: state, DayIndex: 2, Date: time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC)}
}

func TestTransition_Table(t *testing.T) {
	adj := &models.AdjustmentResult{VolumeMultiplier: 0.8, IntensityMultiplier: 0.9, RestMultiplier: 1, ExerciseMode: models.ModeStandard}

	tests := []struct {
		name  string
		from  models.FlowState
		event workout.Event
		want  models.FlowState
	}{
		{"select strength day", models.StateIdle, workout.Event{Type: workout.EventSelectDay, DayIndex: 1}, models.StateRecoveryScreening},
		{"select running day", models.StateIdle, workout.Event{Type: workout.EventSelectDay, DayIndex: 3, Running: true}, models.StateRunningSession},
		{"select from empty state", "", workout.Event{Type: workout.EventSelectDay}, models.StateRecoveryScreening},
		{"complete screening", models.StateRecoveryScreening, workout.Event{Type: workout.EventCompleteScreening, Adjustment: adj}, models.StateLiveWorkout},
		{"skip screening", models.StateRecoveryScreening, workout.Event{Type: workout.EventSkipScreening}, models.StateLiveWorkout},
		{"finish workout", models.StateLiveWorkout, workout.Event{Type: workout.EventFinishWorkout}, models.StateWorkoutLogger},
		{"log saved", models.StateWorkoutLogger, workout.Event{Type: workout.EventLogSaved}, models.StateIdle},
		{"finish run", models.StateRunningSession, workout.Event{Type: workout.EventFinishRun}, models.StateIdle},
		{"cancel screening", models.StateRecoveryScreening, workout.Event{Type: workout.EventCancel}, models.StateIdle},
		{"cancel live", models.StateLiveWorkout, workout.Event{Type: workout.EventCancel}, models.StateIdle},
		{"cancel logger", models.StateWorkoutLogger, workout.Event{Type: workout.EventCancel}, models.StateIdle},
		{"cancel run", models.StateRunningSession, workout.Event{Type: workout.EventCancel}, models.StateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.event.At = morning
			got, err := workout.Transition(at(tt.from), tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.State)
			assert.Equal(t, 1, got.UserID)
			assert.Equal(t, morning, got.UpdatedAt)
		})
	}
}

func TestTransition_Invalid(t *testing.T) {
	tests := []struct {
		from models.FlowState
		ev   workout.EventType
	}{
		{models.StateIdle, workout.EventCancel},
		{models.StateIdle, workout.EventFinishWorkout},
		{models.StateIdle, workout.EventLogSaved},
		{models.StateRecoveryScreening, workout.EventSelectDay},
		{models.StateRecoveryScreening, workout.EventFinishRun},
		{models.StateLiveWorkout, workout.EventSkipScreening},
		{models.StateLiveWorkout, workout.EventLogSaved},
		{models.StateWorkoutLogger, workout.EventFinishWorkout},
		{models.StateRunningSession, workout.EventFinishWorkout},
		{models.StateRunningSession, workout.EventSelectDay},
	}

	for _, tt := range tests {
		s := at(tt.from)
		got, err := workout.Transition(s, workout.Event{Type: tt.ev, At: morning})
		assert.ErrorIs(t, err, workout.ErrInvalidTransition, "%s from %s", tt.ev, tt.from)
		assert.Equal(t, s, got, "session must be unchanged on error")
	}
}

func TestTransition_InvalidEvent(t *testing.T) {
	_, err := workout.Transition(at(models.StateIdle), workout.Event{Type: "jump"})
	assert.ErrorIs(t, err, workout.ErrInvalidEvent)

	_, err = workout.Transition(at(models.StateRecoveryScreening), workout.Event{Type: workout.EventCompleteScreening})
	assert.ErrorIs(t, err, workout.ErrInvalidEvent)

	_, err = workout.Transition(at(models.StateIdle), workout.Event{Type: workout.EventSelectDay, DayIndex: -1})
	assert.ErrorIs(t, err, workout.ErrInvalidEvent)
}

func TestTransition_SelectDayStampsSession(t *testing.T) {
	got, err := workout.Transition(models.WorkoutSession{UserID: 9}, workout.Event{Type: workout.EventSelectDay, DayIndex: 4, At: morning})
	require.NoError(t, err)

	assert.Equal(t, 4, got.DayIndex)
	assert.Equal(t, time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC), got.Date)
	assert.Equal(t, morning, got.StartedAt)
	assert.Nil(t, got.Adjustment)
}

func TestTransition_FullWorkout(t *testing.T) {
	adj := models.AdjustmentResult{VolumeMultiplier: 0.7, IntensityMultiplier: 0.9, RestMultiplier: 1}
	events := []workout.Event{
		{Type: workout.EventSelectDay, DayIndex: 0},
		{Type: workout.EventCompleteScreening, Adjustment: &adj},
		{Type: workout.EventFinishWorkout},
	}

	s := models.WorkoutSession{UserID: 1, State: models.StateIdle}
	var err error
	for _, e := range events {
		e.At = morning
		s, err = workout.Transition(s, e)
		require.NoError(t, err)
	}
	assert.Equal(t, models.StateWorkoutLogger, s.State)
	require.NotNil(t, s.Adjustment)
	assert.InDelta(t, 0.7, s.Adjustment.VolumeMultiplier, 1e-9)

	adj.VolumeMultiplier = 1
	assert.InDelta(t, 0.7, s.Adjustment.VolumeMultiplier, 1e-9, "session keeps its own copy of the adjustment")

	s, err = workout.Transition(s, workout.Event{Type: workout.EventLogSaved, At: morning})
	require.NoError(t, err)
	assert.Equal(t, models.WorkoutSession{UserID: 1, State: models.StateIdle, UpdatedAt: morning}, s)
}
