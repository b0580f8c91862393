package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/fitcoach/internal/models"
)

// SaveWorkoutLog inserts a workout log and its sets in one transaction.
func (db *DB) SaveWorkoutLog(ctx context.Context, l *models.WorkoutLog) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO workout_logs (id, user_id, program_id, day_index, started_at, completed_at, status, notes)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		l.ID, l.UserID, l.ProgramID, l.DayIndex, l.StartedAt, l.CompletedAt, l.Status, l.Notes)
	if err != nil {
		return fmt.Errorf("inserting workout log: %w", err)
	}

	if len(l.Exercises) > 0 {
		query := `INSERT INTO exercise_logs (workout_log_id, exercise_name, set_number, weight_kg, reps, rpe) VALUES `
		args := make([]any, 0, len(l.Exercises)*6)
		valueStrings := make([]string, 0, len(l.Exercises))
		for i, e := range l.Exercises {
			base := i * 6
			valueStrings = append(valueStrings, fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6))
			args = append(args, l.ID, e.ExerciseName, e.SetNumber, e.WeightKg, e.Reps, e.RPE)
		}
		if _, err := tx.Exec(ctx, query+strings.Join(valueStrings, ","), args...); err != nil {
			return fmt.Errorf("inserting exercise logs: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing workout log: %w", err)
	}
	return nil
}

// ListWorkoutLogs returns a user's workout logs completed in [start, end),
// oldest first, with their sets.
func (db *DB) ListWorkoutLogs(ctx context.Context, userID int, start, end time.Time) ([]models.WorkoutLog, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT w.id, w.user_id, w.program_id, w.day_index, w.started_at, w.completed_at, w.status, w.notes,
		        e.exercise_name, e.set_number, e.weight_kg, e.reps, e.rpe
		 FROM workout_logs w
		 LEFT JOIN exercise_logs e ON e.workout_log_id = w.id
		 WHERE w.user_id = $1 AND w.completed_at >= $2 AND w.completed_at < $3
		 ORDER BY w.completed_at ASC, w.id, e.exercise_name, e.set_number`,
		userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying workout logs: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutLog
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var w models.WorkoutLog
		var name *string
		var setNumber, reps *int
		var weight, rpe *float64
		if err := rows.Scan(&w.ID, &w.UserID, &w.ProgramID, &w.DayIndex, &w.StartedAt, &w.CompletedAt,
			&w.Status, &w.Notes, &name, &setNumber, &weight, &reps, &rpe); err != nil {
			return nil, fmt.Errorf("scanning workout log: %w", err)
		}
		i, ok := index[w.ID]
		if !ok {
			w.Exercises = []models.ExerciseLog{}
			result = append(result, w)
			i = len(result) - 1
			index[w.ID] = i
		}
		if name != nil {
			result[i].Exercises = append(result[i].Exercises, models.ExerciseLog{
				ExerciseName: *name,
				SetNumber:    *setNumber,
				WeightKg:     *weight,
				Reps:         *reps,
				RPE:          *rpe,
			})
		}
	}
	return result, rows.Err()
}

// SavePainLog inserts a pain entry and sets its ID.
func (db *DB) SavePainLog(ctx context.Context, p *models.PainLog) error {
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO pain_logs (user_id, body_area, level, notes, logged_at)
		 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		p.UserID, string(p.BodyArea), p.Level, p.Notes, p.LoggedAt).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("inserting pain log: %w", err)
	}
	return nil
}

// ListPainLogs returns a user's pain entries logged in [start, end), newest first.
func (db *DB) ListPainLogs(ctx context.Context, userID int, start, end time.Time) ([]models.PainLog, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, body_area, level, notes, logged_at FROM pain_logs
		 WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3
		 ORDER BY logged_at DESC`, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying pain logs: %w", err)
	}
	defer rows.Close()

	var result []models.PainLog
	for rows.Next() {
		var p models.PainLog
		if err := rows.Scan(&p.ID, &p.UserID, &p.BodyArea, &p.Level, &p.Notes, &p.LoggedAt); err != nil {
			return nil, fmt.Errorf("scanning pain log: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// SaveRecoveryRecord stores a scored assessment for auditing.
func (db *DB) SaveRecoveryRecord(ctx context.Context, r *models.RecoveryRecord) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO recovery_assessments (id, user_id, assessment, result, exercise_mode,
		 volume_multiplier, intensity_multiplier, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		r.ID, r.UserID, r.Assessment, r.Result, string(r.Result.ExerciseMode),
		r.Result.VolumeMultiplier, r.Result.IntensityMultiplier, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting recovery assessment: %w", err)
	}
	return nil
}
