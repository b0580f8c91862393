package mcp

import (
	"context"
	"time"

	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/store"
)

// DataSource abstracts the data layer for MCP tools. Any store.Store (local)
// and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	// GetActiveProgram returns store.ErrNotFound when no program is active.
	GetActiveProgram(ctx context.Context, userID int) (*models.TrainingProgram, error)
	ListWorkoutLogs(ctx context.Context, userID int, start, end time.Time) ([]models.WorkoutLog, error)
	ListPainLogs(ctx context.Context, userID int, start, end time.Time) ([]models.PainLog, error)
}

var _ DataSource = (store.Store)(nil)
