package program

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/store"
)

// Service generates and persists programs for users.
type Service struct {
	users    store.UserStore
	programs store.ProgramStore
	gen      Generator
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a Service. programs is expected to invalidate any cached
// program queries of a user when written to.
func NewService(users store.UserStore, programs store.ProgramStore, gen Generator, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		programs: programs,
		gen:      gen,
		log:      log,
		now:      time.Now,
	}
}

// Request loads the user's profile and overrides and merges them.
func (s *Service) Request(ctx context.Context, userID int) (GenerateRequest, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return GenerateRequest{}, ErrMissingProfile
	}
	if err != nil {
		return GenerateRequest{}, fmt.Errorf("loading profile: %w", err)
	}
	overrides, err := s.users.GetOverrides(ctx, userID)
	if err != nil {
		return GenerateRequest{}, fmt.Errorf("loading overrides: %w", err)
	}
	req := BuildRequest(profile, overrides)
	req.UserID = userID
	return req, nil
}

// Generate builds a program for the user and stores it as the only active
// one. A blocked result is returned as *BlockedError and nothing is stored.
func (s *Service) Generate(ctx context.Context, userID int) (*models.TrainingProgram, error) {
	req, err := s.Request(ctx, userID)
	if err != nil {
		return nil, err
	}

	res, err := s.gen.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generating program: %w", err)
	}
	if res == nil || (res.Program == nil && res.Blocked == nil) {
		return nil, errors.New("generator returned an empty result")
	}
	if res.Blocked != nil {
		s.log.Info("program generation blocked", "user_id", userID, "errors", len(res.Blocked.Errors))
		return nil, &BlockedError{Messages: res.Blocked.Errors}
	}

	p := res.Program
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.UserID = userID
	p.IsActive = true
	p.CreatedAt = s.now().UTC()

	if err := s.programs.ReplaceActiveProgram(ctx, p); err != nil {
		return nil, fmt.Errorf("saving program: %w", err)
	}

	s.log.Info("program generated", "user_id", userID, "program_id", p.ID, "split", p.WeeklySplit.Name, "days", len(p.WeeklySplit.Days))
	return p, nil
}
