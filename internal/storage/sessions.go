package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/meltforce/fitcoach/internal/models"
)

// GetSession returns the stored workout session of a user.
func (db *DB) GetSession(ctx context.Context, userID int) (*models.WorkoutSession, error) {
	s := models.WorkoutSession{UserID: userID}
	var date, started *time.Time
	err := db.Pool.QueryRow(ctx,
		`SELECT state, day_index, running, session_date, started_at, adjustment, updated_at
		 FROM workout_sessions WHERE user_id = $1`, userID).Scan(
		&s.State, &s.DayIndex, &s.Running, &date, &started, &s.Adjustment, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", notFound(err))
	}
	s.Date = fromNullTime(date)
	s.StartedAt = fromNullTime(started)
	return &s, nil
}

// SaveSession upserts the single session row of a user.
func (db *DB) SaveSession(ctx context.Context, s *models.WorkoutSession) error {
	updated := s.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO workout_sessions (user_id, state, day_index, running, session_date, started_at, adjustment, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (user_id) DO UPDATE SET
			state = EXCLUDED.state, day_index = EXCLUDED.day_index, running = EXCLUDED.running,
			session_date = EXCLUDED.session_date, started_at = EXCLUDED.started_at,
			adjustment = EXCLUDED.adjustment, updated_at = EXCLUDED.updated_at
	`, s.UserID, string(s.State), s.DayIndex, s.Running, nullTime(s.Date), nullTime(s.StartedAt),
		s.Adjustment, updated)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// DeleteSession removes the session row of a user.
func (db *DB) DeleteSession(ctx context.Context, userID int) error {
	if _, err := db.Pool.Exec(ctx, `DELETE FROM workout_sessions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
