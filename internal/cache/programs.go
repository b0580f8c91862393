package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/store"
)

// DefaultTTL is the staleness window of cached program queries.
const DefaultTTL = 5 * time.Minute

const keyPrefix = "fitcoach:programs"

// Observer is told about every cache lookup.
type Observer interface {
	CacheLookup(kind string, hit bool)
}

// ProgramStore caches the program list and the active program per user. Any
// write drops every cached program query of that user.
type ProgramStore struct {
	next  store.ProgramStore
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
	obs   Observer
}

var _ store.ProgramStore = (*ProgramStore)(nil)

// NewProgramStore wraps next with c. A zero ttl uses DefaultTTL.
func NewProgramStore(next store.ProgramStore, c Cache, ttl time.Duration, log *slog.Logger) *ProgramStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ProgramStore{next: next, cache: c, ttl: ttl, log: log}
}

// WithObserver sets the lookup observer and returns s.
func (s *ProgramStore) WithObserver(o Observer) *ProgramStore {
	s.obs = o
	return s
}

func listKey(userID int) string   { return fmt.Sprintf("%s:%d:list", keyPrefix, userID) }
func activeKey(userID int) string { return fmt.Sprintf("%s:%d:active", keyPrefix, userID) }

// UserKeys returns every cache key holding program queries of a user.
func UserKeys(userID int) []string {
	return []string{listKey(userID), activeKey(userID)}
}

func (s *ProgramStore) ListPrograms(ctx context.Context, userID int) ([]models.TrainingProgram, error) {
	var out []models.TrainingProgram
	if s.lookup(ctx, "list", listKey(userID), &out) {
		return out, nil
	}
	out, err := s.next.ListPrograms(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.store(ctx, listKey(userID), out)
	return out, nil
}

func (s *ProgramStore) GetProgram(ctx context.Context, userID int, id uuid.UUID) (*models.TrainingProgram, error) {
	return s.next.GetProgram(ctx, userID, id)
}

func (s *ProgramStore) GetActiveProgram(ctx context.Context, userID int) (*models.TrainingProgram, error) {
	var p models.TrainingProgram
	if s.lookup(ctx, "active", activeKey(userID), &p) {
		return &p, nil
	}
	got, err := s.next.GetActiveProgram(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.store(ctx, activeKey(userID), got)
	return got, nil
}

func (s *ProgramStore) DeactivatePrograms(ctx context.Context, userID int) error {
	defer s.Invalidate(ctx, userID)
	return s.next.DeactivatePrograms(ctx, userID)
}

func (s *ProgramStore) SaveProgram(ctx context.Context, p *models.TrainingProgram) error {
	defer s.Invalidate(ctx, p.UserID)
	return s.next.SaveProgram(ctx, p)
}

func (s *ProgramStore) ReplaceActiveProgram(ctx context.Context, p *models.TrainingProgram) error {
	defer s.Invalidate(ctx, p.UserID)
	return s.next.ReplaceActiveProgram(ctx, p)
}

// Invalidate drops all cached program queries of a user.
func (s *ProgramStore) Invalidate(ctx context.Context, userID int) {
	if err := s.cache.Delete(ctx, UserKeys(userID)...); err != nil {
		s.log.Warn("invalidating program cache", "user_id", userID, "error", err)
	}
}

func (s *ProgramStore) lookup(ctx context.Context, kind, key string, dst any) bool {
	b, err := s.cache.Get(ctx, key)
	hit := err == nil
	if err != nil && !errors.Is(err, ErrMiss) {
		s.log.Warn("reading program cache", "key", key, "error", err)
	}
	if hit {
		if err := json.Unmarshal(b, dst); err != nil {
			s.log.Warn("decoding cached programs", "key", key, "error", err)
			hit = false
		}
	}
	if s.obs != nil {
		s.obs.CacheLookup(kind, hit)
	}
	return hit
}

func (s *ProgramStore) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("encoding programs for cache", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, b, s.ttl); err != nil {
		s.log.Warn("writing program cache", "key", key, "error", err)
	}
}
