// Package store defines the repository interfaces the domain services depend
// on. internal/storage implements them on Postgres and internal/sqlitestore on
// SQLite.
package store

//go:generate mockgen -source=$GOFILE -destination=mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/fitcoach/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// UserStore persists users, onboarding profiles and beta overrides.
type UserStore interface {
	GetOrCreateUser(ctx context.Context, login, displayName string) (int, error)
	GetUser(ctx context.Context, userID int) (*models.User, error)
	SetUserEmail(ctx context.Context, userID int, email string) error

	// GetProfile returns ErrNotFound when the user has not onboarded.
	GetProfile(ctx context.Context, userID int) (*models.Profile, error)
	SaveProfile(ctx context.Context, p *models.Profile) error

	// GetOverrides returns zero overrides when none are stored.
	GetOverrides(ctx context.Context, userID int) (models.BetaOverrides, error)
	SaveOverrides(ctx context.Context, userID int, o models.BetaOverrides) error
	DeleteOverrides(ctx context.Context, userID int) error
}

// ProgramStore persists generated training programs.
type ProgramStore interface {
	ListPrograms(ctx context.Context, userID int) ([]models.TrainingProgram, error)
	GetProgram(ctx context.Context, userID int, id uuid.UUID) (*models.TrainingProgram, error)
	// GetActiveProgram returns ErrNotFound when no program is active.
	GetActiveProgram(ctx context.Context, userID int) (*models.TrainingProgram, error)
	DeactivatePrograms(ctx context.Context, userID int) error
	SaveProgram(ctx context.Context, p *models.TrainingProgram) error
	// ReplaceActiveProgram deactivates the user's programs and saves p as
	// the active one atomically.
	ReplaceActiveProgram(ctx context.Context, p *models.TrainingProgram) error
}

// LogStore persists workout, pain and recovery records.
type LogStore interface {
	SaveWorkoutLog(ctx context.Context, l *models.WorkoutLog) error
	ListWorkoutLogs(ctx context.Context, userID int, start, end time.Time) ([]models.WorkoutLog, error)
	SavePainLog(ctx context.Context, p *models.PainLog) error
	ListPainLogs(ctx context.Context, userID int, start, end time.Time) ([]models.PainLog, error)
	SaveRecoveryRecord(ctx context.Context, r *models.RecoveryRecord) error
}

// SessionStore persists the single in-flight workout session per user.
type SessionStore interface {
	// GetSession returns ErrNotFound when the user has no stored session.
	GetSession(ctx context.Context, userID int) (*models.WorkoutSession, error)
	SaveSession(ctx context.Context, s *models.WorkoutSession) error
	DeleteSession(ctx context.Context, userID int) error
}

// Store is the full repository surface of a backend.
type Store interface {
	UserStore
	ProgramStore
	LogStore
	SessionStore
	Close() error
}
