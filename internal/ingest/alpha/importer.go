package alpha

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/store"
)

// namespace seeds the deterministic IDs of imported workouts.
var namespace = uuid.MustParse("5b0c8a52-3f7e-4c61-9d2e-7a4f1e6b9c03")

// Result is the outcome of an import.
type Result struct {
	SessionsReceived int `json:"sessions_received"`
	WorkoutsInserted int `json:"workouts_inserted"`
	WorkoutsSkipped  int `json:"workouts_skipped"`
	SetsInserted     int `json:"sets_inserted"`
}

// WorkoutLogID returns the stable ID of an imported session, so the same
// export can be uploaded twice without duplicating workouts.
func WorkoutLogID(userID int, s Session) uuid.UUID {
	key := strconv.Itoa(userID) + "|" + s.Date.Format(time.RFC3339) + "|" + s.Name
	return uuid.NewSHA1(namespace, []byte(key))
}

// ToWorkoutLog converts a session into a completed workout log. Warmups are
// dropped and RIR becomes RPE (10 - RIR).
func ToWorkoutLog(userID int, s Session) models.WorkoutLog {
	l := models.WorkoutLog{
		ID:          WorkoutLogID(userID, s),
		UserID:      userID,
		StartedAt:   s.Date,
		CompletedAt: s.Date.Add(parseDuration(s.Duration)),
		Status:      models.WorkoutCompleted,
		Notes:       s.Name,
		Exercises:   []models.ExerciseLog{},
	}
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			if set.IsWarmup || set.Reps < 1 {
				continue
			}
			e := models.ExerciseLog{
				ExerciseName: ex.Name,
				SetNumber:    set.Number,
				WeightKg:     set.WeightKg,
				Reps:         set.Reps,
			}
			if set.RIR >= 0 && set.RIR <= 10 {
				e.RPE = 10 - set.RIR
			}
			l.Exercises = append(l.Exercises, e)
		}
	}
	return l
}

// parseDuration reads "1:02 hr" as hours and minutes. Unknown formats count
// as zero.
func parseDuration(s string) time.Duration {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
}

// Importer stores parsed exports as workout logs.
type Importer struct {
	logs store.LogStore
	log  *slog.Logger
}

// NewImporter creates an importer writing to logs.
func NewImporter(logs store.LogStore, log *slog.Logger) *Importer {
	return &Importer{logs: logs, log: log}
}

// Import parses r and saves every session not imported before.
func (i *Importer) Import(ctx context.Context, r io.Reader, userID int) (*Result, error) {
	sessions, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	res := &Result{SessionsReceived: len(sessions)}
	if len(sessions) == 0 {
		return res, nil
	}

	existing, err := i.existingIDs(ctx, userID, sessions)
	if err != nil {
		return nil, err
	}
	for _, s := range sessions {
		l := ToWorkoutLog(userID, s)
		if existing[l.ID] {
			res.WorkoutsSkipped++
			continue
		}
		if err := i.logs.SaveWorkoutLog(ctx, &l); err != nil {
			return nil, fmt.Errorf("saving session %s: %w", s.Date.Format(time.DateOnly), err)
		}
		existing[l.ID] = true
		res.WorkoutsInserted++
		res.SetsInserted += len(l.Exercises)
	}
	i.log.Info("alpha import",
		"user_id", userID,
		"sessions", res.SessionsReceived,
		"inserted", res.WorkoutsInserted,
		"skipped", res.WorkoutsSkipped)
	return res, nil
}

// existingIDs lists the workouts already stored over the export's date span.
func (i *Importer) existingIDs(ctx context.Context, userID int, sessions []Session) (map[uuid.UUID]bool, error) {
	start, end := sessions[0].Date, sessions[0].Date
	for _, s := range sessions[1:] {
		if s.Date.Before(start) {
			start = s.Date
		}
		if s.Date.After(end) {
			end = s.Date
		}
	}
	// Completed times run up to the session length past the start.
	logs, err := i.logs.ListWorkoutLogs(ctx, userID, start, end.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("listing existing workouts: %w", err)
	}
	ids := make(map[uuid.UUID]bool, len(logs))
	for _, l := range logs {
		ids[l.ID] = true
	}
	return ids, nil
}
