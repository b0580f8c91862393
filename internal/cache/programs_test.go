package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/meltforce/fitcoach/internal/cache"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/store"
	"github.com/meltforce/fitcoach/internal/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type lookups struct{ hits, misses int }

func (l *lookups) CacheLookup(_ string, hit bool) {
	if hit {
		l.hits++
	} else {
		l.misses++
	}
}

func newCachedStore(t *testing.T) (*cache.ProgramStore, *mocks.MockProgramStore, *lookups) {
	t.Helper()
	next := mocks.NewMockProgramStore(gomock.NewController(t))
	obs := &lookups{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := cache.NewProgramStore(next, cache.NewLocal(1024*1024), 0, log).WithObserver(obs)
	return s, next, obs
}

func TestProgramStore_CachesActive(t *testing.T) {
	s, next, obs := newCachedStore(t)
	ctx := context.Background()
	p := &models.TrainingProgram{ID: uuid.New(), UserID: 1, Name: "Full Body (strength)", IsActive: true}

	next.EXPECT().GetActiveProgram(gomock.Any(), 1).Return(p, nil).Times(1)

	first, err := s.GetActiveProgram(ctx, 1)
	require.NoError(t, err)
	second, err := s.GetActiveProgram(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, p.ID, first.ID)
	assert.Equal(t, p.ID, second.ID)
	assert.Equal(t, 1, obs.hits)
	assert.Equal(t, 1, obs.misses)
}

func TestProgramStore_NotFoundIsNotCached(t *testing.T) {
	s, next, _ := newCachedStore(t)
	next.EXPECT().GetActiveProgram(gomock.Any(), 2).Return(nil, store.ErrNotFound).Times(2)

	for range 2 {
		_, err := s.GetActiveProgram(context.Background(), 2)
		assert.ErrorIs(t, err, store.ErrNotFound)
	}
}

func TestProgramStore_WriteInvalidatesUser(t *testing.T) {
	s, next, _ := newCachedStore(t)
	ctx := context.Background()
	old := []models.TrainingProgram{{ID: uuid.New(), UserID: 1}}
	fresh := []models.TrainingProgram{{ID: uuid.New(), UserID: 1}, old[0]}
	other := []models.TrainingProgram{{ID: uuid.New(), UserID: 2}}

	gomock.InOrder(
		next.EXPECT().ListPrograms(gomock.Any(), 1).Return(old, nil),
		next.EXPECT().ListPrograms(gomock.Any(), 2).Return(other, nil),
		next.EXPECT().DeactivatePrograms(gomock.Any(), 1).Return(nil),
		next.EXPECT().SaveProgram(gomock.Any(), gomock.Any()).Return(nil),
		next.EXPECT().ListPrograms(gomock.Any(), 1).Return(fresh, nil),
		next.EXPECT().ReplaceActiveProgram(gomock.Any(), gomock.Any()).Return(nil),
		next.EXPECT().ListPrograms(gomock.Any(), 1).Return(old, nil),
	)

	got, err := s.ListPrograms(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	_, err = s.ListPrograms(ctx, 2)
	require.NoError(t, err)

	require.NoError(t, s.DeactivatePrograms(ctx, 1))
	require.NoError(t, s.SaveProgram(ctx, &fresh[0]))

	got, err = s.ListPrograms(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// user 2 is still served from the cache
	got, err = s.ListPrograms(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, other[0].ID, got[0].ID)

	require.NoError(t, s.ReplaceActiveProgram(ctx, &old[0]))
	got, err = s.ListPrograms(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
