package alpha

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/store/mocks"
	"github.com/meltforce/fitcoach/internal/strength"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseSample(t *testing.T) []Session {
	t.Helper()
	sessions, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	return sessions
}

func TestToWorkoutLog(t *testing.T) {
	push := parseSample(t)[0]
	l := ToWorkoutLog(4, push)

	assert.Equal(t, 4, l.UserID)
	assert.Equal(t, models.WorkoutCompleted, l.Status)
	assert.Equal(t, push.Date.Add(72*time.Minute), l.CompletedAt)
	require.Len(t, l.Exercises, 5, "warmups are dropped")

	assert.Equal(t, "Bench Press", l.Exercises[0].ExerciseName)
	assert.Equal(t, 102.5, l.Exercises[0].WeightKg)
	assert.Equal(t, 10.0, l.Exercises[0].RPE)
	assert.Equal(t, 9.0, l.Exercises[1].RPE)
	assert.Equal(t, 9.5, l.Exercises[2].RPE)

	best := strength.BestEstimates([]models.WorkoutLog{l})
	assert.InDelta(t, strength.Estimate1RM(102.5, 6), best["Bench Press"], 1e-9)
}

func TestWorkoutLogIDStable(t *testing.T) {
	sessions := parseSample(t)
	assert.Equal(t, WorkoutLogID(1, sessions[0]), WorkoutLogID(1, sessions[0]))
	assert.NotEqual(t, WorkoutLogID(1, sessions[0]), WorkoutLogID(2, sessions[0]))
	assert.NotEqual(t, WorkoutLogID(1, sessions[0]), WorkoutLogID(1, sessions[1]))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 72*time.Minute, parseDuration("1:12 hr"))
	assert.Equal(t, 58*time.Minute, parseDuration("0:58 hr"))
	assert.Zero(t, parseDuration("about an hour"))
}

func TestImportSkipsKnownSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := mocks.NewMockLogStore(ctrl)
	sessions := parseSample(t)

	logs.EXPECT().
		ListWorkoutLogs(gomock.Any(), 3, sessions[0].Date, sessions[1].Date.Add(24*time.Hour)).
		Return([]models.WorkoutLog{{ID: WorkoutLogID(3, sessions[0])}}, nil)
	logs.EXPECT().
		SaveWorkoutLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *models.WorkoutLog) error {
			assert.Equal(t, WorkoutLogID(3, sessions[1]), l.ID)
			assert.Equal(t, 3, l.UserID)
			return nil
		})

	res, err := NewImporter(logs, quietLogger()).Import(context.Background(), strings.NewReader(sampleCSV), 3)
	require.NoError(t, err)
	assert.Equal(t, &Result{SessionsReceived: 2, WorkoutsInserted: 1, WorkoutsSkipped: 1, SetsInserted: 2}, res)
}

func TestImportEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := mocks.NewMockLogStore(ctrl)

	res, err := NewImporter(logs, quietLogger()).Import(context.Background(), strings.NewReader(""), 3)
	require.NoError(t, err)
	assert.Zero(t, res.SessionsReceived)
}

func TestImportSaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := mocks.NewMockLogStore(ctrl)
	logs.EXPECT().ListWorkoutLogs(gomock.Any(), 3, gomock.Any(), gomock.Any()).Return(nil, nil)
	logs.EXPECT().SaveWorkoutLog(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := NewImporter(logs, quietLogger()).Import(context.Background(), strings.NewReader(sampleCSV), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestImportRejectsMalformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := mocks.NewMockLogStore(ctrl)

	_, err := NewImporter(logs, quietLogger()).Import(context.Background(), strings.NewReader("1;100;5;1"), 3)
	assert.Error(t, err)
}
