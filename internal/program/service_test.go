package program_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/program"
	"github.com/meltforce/fitcoach/internal/sqlitestore"
	"github.com/meltforce/fitcoach/internal/store"
	"github.com/meltforce/fitcoach/internal/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubGenerator struct {
	res *program.GenerateResult
	err error
	got program.GenerateRequest
}

func (g *stubGenerator) Generate(_ context.Context, req program.GenerateRequest) (*program.GenerateResult, error) {
	g.got = req
	return g.res, g.err
}

func newService(t *testing.T, gen program.Generator) (*program.Service, *mocks.MockUserStore, *mocks.MockProgramStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserStore(ctrl)
	programs := mocks.NewMockProgramStore(ctrl)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return program.NewService(users, programs, gen, log), users, programs
}

func TestService_MissingProfile(t *testing.T) {
	svc, users, _ := newService(t, program.TemplateGenerator{})
	users.EXPECT().GetProfile(gomock.Any(), 4).Return(nil, store.ErrNotFound)

	p, err := svc.Generate(context.Background(), 4)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, program.ErrMissingProfile)
}

func TestService_ProfileError(t *testing.T) {
	svc, users, _ := newService(t, program.TemplateGenerator{})
	users.EXPECT().GetProfile(gomock.Any(), 4).Return(nil, errors.New("connection reset"))

	_, err := svc.Generate(context.Background(), 4)
	require.Error(t, err)
	assert.NotErrorIs(t, err, program.ErrMissingProfile)
	assert.ErrorContains(t, err, "loading profile")
}

func TestService_BlockedIsNotPersisted(t *testing.T) {
	gen := &stubGenerator{res: &program.GenerateResult{
		Blocked: &program.Blocked{Errors: []string{"frequency must be between 1 and 6, got 9", "unknown goal \"bulk\""}},
	}}
	svc, users, _ := newService(t, gen)
	users.EXPECT().GetProfile(gomock.Any(), 2).Return(&models.Profile{UserID: 2, Frequency: 9}, nil)
	users.EXPECT().GetOverrides(gomock.Any(), 2).Return(models.BetaOverrides{}, nil)

	p, err := svc.Generate(context.Background(), 2)
	assert.Nil(t, p)

	var blocked *program.BlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Len(t, blocked.Messages, 2)
	assert.Equal(t, `program generation blocked: frequency must be between 1 and 6, got 9; unknown goal "bulk"`, err.Error())
}

func TestService_GenerateStoresActiveProgram(t *testing.T) {
	svc, users, programs := newService(t, program.TemplateGenerator{})
	users.EXPECT().GetProfile(gomock.Any(), 3).Return(&models.Profile{
		UserID:    3,
		Goal:      models.GoalStrength,
		Location:  models.LocationGym,
		Frequency: 4,
	}, nil)
	level := models.LevelAdvanced
	users.EXPECT().GetOverrides(gomock.Any(), 3).Return(models.BetaOverrides{FitnessLevel: &level}, nil)

	var saved *models.TrainingProgram
	programs.EXPECT().ReplaceActiveProgram(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.TrainingProgram) error {
			saved = p
			return nil
		})

	p, err := svc.Generate(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Same(t, p, saved)
	assert.True(t, p.IsActive)
	assert.Equal(t, 3, p.UserID)
	assert.Equal(t, models.LevelAdvanced, p.Level)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", p.ID.String())
	assert.False(t, p.CreatedAt.IsZero())
	assert.Len(t, p.WeeklySplit.Days, 4)
}

func TestService_SaveError(t *testing.T) {
	svc, users, programs := newService(t, program.TemplateGenerator{})
	users.EXPECT().GetProfile(gomock.Any(), 3).Return(&models.Profile{UserID: 3}, nil)
	users.EXPECT().GetOverrides(gomock.Any(), 3).Return(models.BetaOverrides{}, nil)
	programs.EXPECT().ReplaceActiveProgram(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Generate(context.Background(), 3)
	assert.ErrorContains(t, err, "saving program: disk full")
}

// fixedIDGenerator returns a fresh program with the same id on every call,
// so the second save collides with the first.
type fixedIDGenerator struct {
	id   uuid.UUID
	name string
}

func (g *fixedIDGenerator) Generate(_ context.Context, req program.GenerateRequest) (*program.GenerateResult, error) {
	return &program.GenerateResult{Program: &models.TrainingProgram{ID: g.id, Name: g.name, Frequency: req.Frequency}}, nil
}

func TestService_FailedSaveKeepsPreviousActive(t *testing.T) {
	db, err := sqlitestore.Open(filepath.Join(t.TempDir(), "fitcoach.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	ctx := context.Background()

	uid, err := db.GetOrCreateUser(ctx, "eve", "Eve")
	require.NoError(t, err)
	require.NoError(t, db.SaveProfile(ctx, &models.Profile{UserID: uid, Frequency: 3}))

	gen := &fixedIDGenerator{id: uuid.New(), name: "first"}
	svc := program.NewService(db, db, gen, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err = svc.Generate(ctx, uid)
	require.NoError(t, err)

	gen.name = "second"
	_, err = svc.Generate(ctx, uid)
	require.ErrorContains(t, err, "saving program")

	active, err := db.GetActiveProgram(ctx, uid)
	require.NoError(t, err, "the previous program must stay active")
	assert.Equal(t, "first", active.Name)
	assert.Equal(t, gen.id, active.ID)
}

func TestService_RequestUsesOverrides(t *testing.T) {
	gen := &stubGenerator{err: errors.New("stop")}
	svc, users, _ := newService(t, gen)
	users.EXPECT().GetProfile(gomock.Any(), 5).Return(&models.Profile{UserID: 5, Location: models.LocationGym}, nil)
	loc := models.LocationHome
	users.EXPECT().GetOverrides(gomock.Any(), 5).Return(models.BetaOverrides{Location: &loc}, nil)

	_, err := svc.Generate(context.Background(), 5)
	assert.ErrorContains(t, err, "generating program: stop")
	assert.Equal(t, models.LocationHome, gen.got.Location)
	assert.Equal(t, 5, gen.got.UserID)
}
