package workout_test

import (
	"testing"
	"time"

	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/workout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInterrupted(t *testing.T) {
	today := time.Date(2026, 5, 11, 18, 0, 0, 0, time.UTC)

	assert.Nil(t, workout.ResolveInterrupted(nil, today))
	assert.Nil(t, workout.ResolveInterrupted(&models.WorkoutSession{State: models.StateIdle}, today))

	same := at(models.StateLiveWorkout)
	assert.Equal(t, []workout.Resolution{workout.ResolutionResume}, workout.ResolveInterrupted(&same, today))

	old := at(models.StateLiveWorkout)
	old.Date = old.Date.AddDate(0, 0, -2)
	assert.Equal(t, []workout.Resolution{workout.ResolutionMerge, workout.ResolutionSkip}, workout.ResolveInterrupted(&old, today))
}

func TestResolveInterrupted_ComparesInSessionZone(t *testing.T) {
	rome := time.FixedZone("CET", 3600)
	s := models.WorkoutSession{State: models.StateLiveWorkout, Date: time.Date(2026, 5, 12, 0, 0, 0, 0, rome)}

	// 23:30 UTC on the 11th is already the 12th in Rome.
	now := time.Date(2026, 5, 11, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, []workout.Resolution{workout.ResolutionResume}, workout.ResolveInterrupted(&s, now))
}

func TestApplyResolution_Skip(t *testing.T) {
	s := at(models.StateLiveWorkout)
	s.Date = s.Date.AddDate(0, 0, -1)
	s.StartedAt = s.Date.Add(19 * time.Hour)
	now := time.Date(2026, 5, 11, 8, 0, 0, 0, time.UTC)

	next, skipped, err := workout.ApplyResolution(s, workout.ResolutionSkip, now)
	require.NoError(t, err)
	assert.Equal(t, models.StateIdle, next.State)
	require.NotNil(t, skipped)
	assert.Equal(t, models.WorkoutSkipped, skipped.Status)
	assert.Equal(t, 2, skipped.DayIndex)
	assert.Equal(t, s.StartedAt, skipped.StartedAt)
	assert.Equal(t, now, skipped.CompletedAt)
	assert.Contains(t, skipped.Notes, "2026-05-10")
}

func TestApplyResolution_Merge(t *testing.T) {
	s := at(models.StateWorkoutLogger)
	s.Date = s.Date.AddDate(0, 0, -1)
	now := time.Date(2026, 5, 11, 8, 0, 0, 0, time.UTC)

	next, skipped, err := workout.ApplyResolution(s, workout.ResolutionMerge, now)
	require.NoError(t, err)
	assert.Nil(t, skipped)
	assert.Equal(t, models.StateWorkoutLogger, next.State)
	assert.Equal(t, time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC), next.Date)
}

func TestApplyResolution_NotOffered(t *testing.T) {
	now := time.Date(2026, 5, 11, 8, 0, 0, 0, time.UTC)

	_, _, err := workout.ApplyResolution(at(models.StateLiveWorkout), workout.ResolutionSkip, now)
	assert.ErrorIs(t, err, workout.ErrInvalidTransition, "same-day sessions can only be resumed")

	_, _, err = workout.ApplyResolution(at(models.StateIdle), workout.ResolutionResume, now)
	assert.ErrorIs(t, err, workout.ErrInvalidTransition)

	next, skipped, err := workout.ApplyResolution(at(models.StateLiveWorkout), workout.ResolutionResume, now)
	require.NoError(t, err)
	assert.Nil(t, skipped)
	assert.Equal(t, models.StateLiveWorkout, next.State)
}
