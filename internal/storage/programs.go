package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/meltforce/fitcoach/internal/models"
)

const programColumns = `id, user_id, name, level, goal, location, frequency, session_duration,
	weekly_split, is_active, created_at`

func scanProgram(row pgx.Row) (*models.TrainingProgram, error) {
	var p models.TrainingProgram
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Level, &p.Goal, &p.Location, &p.Frequency,
		&p.SessionDuration, &p.WeeklySplit, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPrograms returns all programs of a user, newest first.
func (db *DB) ListPrograms(ctx context.Context, userID int) ([]models.TrainingProgram, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+programColumns+` FROM training_programs
		 WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var result []models.TrainingProgram
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning program: %w", err)
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

// GetProgram returns one program of a user.
func (db *DB) GetProgram(ctx context.Context, userID int, id uuid.UUID) (*models.TrainingProgram, error) {
	p, err := scanProgram(db.Pool.QueryRow(ctx,
		`SELECT `+programColumns+` FROM training_programs WHERE user_id = $1 AND id = $2`,
		userID, id))
	if err != nil {
		return nil, fmt.Errorf("querying program %s: %w", id, notFound(err))
	}
	return p, nil
}

// GetActiveProgram returns the active program of a user.
func (db *DB) GetActiveProgram(ctx context.Context, userID int) (*models.TrainingProgram, error) {
	p, err := scanProgram(db.Pool.QueryRow(ctx,
		`SELECT `+programColumns+` FROM training_programs WHERE user_id = $1 AND is_active`,
		userID))
	if err != nil {
		return nil, fmt.Errorf("querying active program: %w", notFound(err))
	}
	return p, nil
}

const (
	deactivateProgramsSQL = `UPDATE training_programs SET is_active = FALSE WHERE user_id = $1 AND is_active`
	insertProgramSQL      = `INSERT INTO training_programs (` + programColumns + `)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
)

func programArgs(p *models.TrainingProgram) []any {
	return []any{p.ID, p.UserID, p.Name, string(p.Level), string(p.Goal), string(p.Location), p.Frequency,
		p.SessionDuration, p.WeeklySplit, p.IsActive, p.CreatedAt}
}

// DeactivatePrograms marks every program of a user inactive.
func (db *DB) DeactivatePrograms(ctx context.Context, userID int) error {
	if _, err := db.Pool.Exec(ctx, deactivateProgramsSQL, userID); err != nil {
		return fmt.Errorf("deactivating programs: %w", err)
	}
	return nil
}

// SaveProgram inserts a program. The weekly split is stored as JSONB.
func (db *DB) SaveProgram(ctx context.Context, p *models.TrainingProgram) error {
	if _, err := db.Pool.Exec(ctx, insertProgramSQL, programArgs(p)...); err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}
	return nil
}

// ReplaceActiveProgram deactivates the user's programs and inserts p in one
// transaction. On error the previous active program is left untouched.
func (db *DB) ReplaceActiveProgram(ctx context.Context, p *models.TrainingProgram) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, deactivateProgramsSQL, p.UserID); err != nil {
		return fmt.Errorf("deactivating programs: %w", err)
	}
	if _, err := tx.Exec(ctx, insertProgramSQL, programArgs(p)...); err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing program: %w", err)
	}
	return nil
}
