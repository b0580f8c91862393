package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/store"
)

func (h *handlers) activeProgram(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	p, err := h.ds.GetActiveProgram(ctx, UserIDFromContext(ctx))
	if errors.Is(err, store.ErrNotFound) {
		return jsonContents(req.Params.URI, map[string]any{"active_program": nil})
	}
	if err != nil {
		return nil, err
	}
	return jsonContents(req.Params.URI, p)
}

func (h *handlers) recentWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -14)

	logs, err := h.ds.ListWorkoutLogs(ctx, UserIDFromContext(ctx), start, end)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []models.WorkoutLog{}
	}
	return jsonContents(req.Params.URI, logs)
}

func (h *handlers) injuryExclusions(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	table := make(map[models.BodyArea][]string, len(models.BodyAreas))
	for _, area := range models.BodyAreas {
		table[area] = models.ExcludedExercises(area)
	}
	return jsonContents(req.Params.URI, table)
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
