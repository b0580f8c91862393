package sqlitestore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/sqlitestore"
	"github.com/meltforce/fitcoach/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) *sqlitestore.DB {
	t.Helper()
	db, err := sqlitestore.Open(filepath.Join(t.TempDir(), "data", "fitcoach.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUsers(t *testing.T) {
	db := open(t)
	ctx := context.Background()

	id, err := db.GetOrCreateUser(ctx, "ana@example.com", "Ana")
	require.NoError(t, err)
	again, err := db.GetOrCreateUser(ctx, "ana@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	require.NoError(t, db.SetUserEmail(ctx, id, "ana@mail.test"))
	u, err := db.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.DisplayName)
	assert.Equal(t, "ana@mail.test", u.Email)

	_, err = db.GetUser(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, db.SetUserEmail(ctx, 999, "x"), store.ErrNotFound)
}

func TestProfileAndOverrides(t *testing.T) {
	db := open(t)
	ctx := context.Background()
	id, err := db.GetOrCreateUser(ctx, "bo", "Bo")
	require.NoError(t, err)

	_, err = db.GetProfile(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, db.SaveProfile(ctx, &models.Profile{
		UserID: id, Goal: models.GoalHypertrophy, Frequency: 3,
		PainAreas: []models.BodyArea{models.BodyAreaShoulder},
	}))
	p, err := db.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.GoalHypertrophy, p.Goal)
	assert.Equal(t, []models.BodyArea{models.BodyAreaShoulder}, p.PainAreas)
	assert.False(t, p.UpdatedAt.IsZero())

	o, err := db.GetOverrides(ctx, id)
	require.NoError(t, err)
	assert.True(t, o.IsZero())

	lvl := models.LevelAdvanced
	require.NoError(t, db.SaveOverrides(ctx, id, models.BetaOverrides{FitnessLevel: &lvl}))
	o, err = db.GetOverrides(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, o.FitnessLevel)
	assert.Equal(t, models.LevelAdvanced, *o.FitnessLevel)

	require.NoError(t, db.DeleteOverrides(ctx, id))
	o, err = db.GetOverrides(ctx, id)
	require.NoError(t, err)
	assert.True(t, o.IsZero())
}

func TestPrograms_ReplaceActive(t *testing.T) {
	db := open(t)
	ctx := context.Background()
	id, err := db.GetOrCreateUser(ctx, "di", "Di")
	require.NoError(t, err)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	first := &models.TrainingProgram{ID: uuid.New(), UserID: id, Name: "first", IsActive: true, CreatedAt: base}
	require.NoError(t, db.ReplaceActiveProgram(ctx, first))
	second := &models.TrainingProgram{ID: uuid.New(), UserID: id, Name: "second", IsActive: true, CreatedAt: base.Add(time.Hour)}
	require.NoError(t, db.ReplaceActiveProgram(ctx, second))

	// A failing insert rolls the deactivation back.
	dup := *second
	dup.Name = "duplicate id"
	require.Error(t, db.ReplaceActiveProgram(ctx, &dup))

	active, err := db.GetActiveProgram(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "second", active.Name)

	list, err := db.ListPrograms(ctx, id)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestPrograms_OneActivePerUser(t *testing.T) {
	db := open(t)
	ctx := context.Background()
	id, err := db.GetOrCreateUser(ctx, "cy", "Cy")
	require.NoError(t, err)

	_, err = db.GetActiveProgram(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	first := &models.TrainingProgram{ID: uuid.New(), UserID: id, Name: "first", IsActive: true, CreatedAt: base}
	require.NoError(t, db.SaveProgram(ctx, first))

	second := &models.TrainingProgram{ID: uuid.New(), UserID: id, Name: "second", IsActive: true, CreatedAt: base.Add(time.Hour)}
	assert.Error(t, db.SaveProgram(ctx, second), "two active programs must be rejected")

	require.NoError(t, db.DeactivatePrograms(ctx, id))
	require.NoError(t, db.SaveProgram(ctx, second))

	active, err := db.GetActiveProgram(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "second", active.Name)

	list, err := db.ListPrograms(ctx, id)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Name)
	assert.False(t, list[1].IsActive)

	got, err := db.GetProgram(ctx, id, first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = db.GetProgram(ctx, id+1, first.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLogs(t *testing.T) {
	db := open(t)
	ctx := context.Background()
	id, err := db.GetOrCreateUser(ctx, "di", "Di")
	require.NoError(t, err)

	day := time.Date(2026, 4, 6, 18, 0, 0, 0, time.UTC)
	for i, at := range []time.Time{day.Add(48 * time.Hour), day} {
		require.NoError(t, db.SaveWorkoutLog(ctx, &models.WorkoutLog{
			ID: uuid.New(), UserID: id, DayIndex: i, CompletedAt: at, Status: models.WorkoutCompleted,
		}))
	}
	logs, err := db.ListWorkoutLogs(ctx, id, day.Add(-time.Hour), day.Add(72*time.Hour))
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 1, logs[0].DayIndex, "oldest first")
	assert.NotNil(t, logs[0].Exercises)

	logs, err = db.ListWorkoutLogs(ctx, id, day.Add(time.Hour), day.Add(72*time.Hour))
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	pain := &models.PainLog{UserID: id, BodyArea: models.BodyAreaKnee, Level: 6, LoggedAt: day}
	require.NoError(t, db.SavePainLog(ctx, pain))
	assert.NotZero(t, pain.ID)
	assert.Error(t, db.SavePainLog(ctx, &models.PainLog{UserID: id, BodyArea: models.BodyAreaKnee, Level: 11, LoggedAt: day}))

	pains, err := db.ListPainLogs(ctx, id, day.Add(-time.Hour), day.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, pains, 1)
	assert.Equal(t, 6, pains[0].Level)
	assert.True(t, pains[0].LoggedAt.Equal(day))

	require.NoError(t, db.SaveRecoveryRecord(ctx, &models.RecoveryRecord{ID: uuid.New(), UserID: id, CreatedAt: day}))
}

func TestSessions(t *testing.T) {
	db := open(t)
	ctx := context.Background()
	id, err := db.GetOrCreateUser(ctx, "ed", "Ed")
	require.NoError(t, err)

	_, err = db.GetSession(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, db.SaveSession(ctx, &models.WorkoutSession{
		UserID: id, State: models.StateRecoveryScreening, DayIndex: 1,
	}))
	require.NoError(t, db.SaveSession(ctx, &models.WorkoutSession{
		UserID: id, State: models.StateLiveWorkout, DayIndex: 1,
		Adjustment: &models.AdjustmentResult{VolumeMultiplier: 0.7},
	}))

	s, err := db.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateLiveWorkout, s.State)
	require.NotNil(t, s.Adjustment)
	assert.InDelta(t, 0.7, s.Adjustment.VolumeMultiplier, 1e-9)

	require.NoError(t, db.DeleteSession(ctx, id))
	_, err = db.GetSession(ctx, id)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
