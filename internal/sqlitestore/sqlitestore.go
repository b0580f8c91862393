// Package sqlitestore is a single-file store for local and single-user
// deployments. Nested values are kept as JSON text.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/store"

	_ "modernc.org/sqlite"
)

var _ store.Store = (*DB)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	login        TEXT NOT NULL UNIQUE,
	display_name TEXT NOT NULL DEFAULT '',
	email        TEXT NOT NULL DEFAULT '',
	tier         TEXT NOT NULL DEFAULT '',
	created_at   TEXT NOT NULL,
	last_seen    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS profiles (
	user_id    INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	profile    TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS beta_overrides (
	user_id   INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	overrides TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS training_programs (
	id         TEXT PRIMARY KEY,
	user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	program    TEXT NOT NULL,
	is_active  INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS training_programs_one_active
	ON training_programs (user_id) WHERE is_active = 1;
CREATE TABLE IF NOT EXISTS workout_logs (
	id           TEXT PRIMARY KEY,
	user_id      INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	workout      TEXT NOT NULL,
	completed_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS workout_logs_user_completed ON workout_logs (user_id, completed_at);
CREATE TABLE IF NOT EXISTS pain_logs (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id   INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	body_area TEXT NOT NULL,
	level     INTEGER NOT NULL CHECK (level BETWEEN 0 AND 10),
	notes     TEXT NOT NULL DEFAULT '',
	logged_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS recovery_assessments (
	id         TEXT PRIMARY KEY,
	user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	assessment TEXT NOT NULL,
	result     TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS workout_sessions (
	user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	session TEXT NOT NULL
);`

// DB implements store.Store on a SQLite file.
type DB struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &DB{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *DB) Close() error {
	return s.db.Close()
}

// timeLayout has a fixed width so stored times compare as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func fmtTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(v string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, v)
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// scanJSON reads one JSON text column into v.
func scanJSON(row *sql.Row, v any) error {
	var raw string
	if err := row.Scan(&raw); err != nil {
		return notFound(err)
	}
	return json.Unmarshal([]byte(raw), v)
}

// GetOrCreateUser finds or creates a user by login and returns its ID.
func (s *DB) GetOrCreateUser(ctx context.Context, login, displayName string) (int, error) {
	now := fmtTime(s.now())
	var id int
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (login, display_name, created_at, last_seen) VALUES (?, ?, ?, ?)
		ON CONFLICT (login) DO UPDATE
			SET last_seen = excluded.last_seen,
			    display_name = COALESCE(NULLIF(excluded.display_name, ''), users.display_name)
		RETURNING id`, login, displayName, now, now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upserting user: %w", err)
	}
	return id, nil
}

func (s *DB) GetUser(ctx context.Context, userID int) (*models.User, error) {
	u := models.User{ID: userID}
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT login, display_name, email, tier, created_at FROM users WHERE id = ?`, userID).
		Scan(&u.Login, &u.DisplayName, &u.Email, &u.Tier, &created)
	if err != nil {
		return nil, fmt.Errorf("querying user %d: %w", userID, notFound(err))
	}
	if u.CreatedAt, err = parseTime(created); err != nil {
		return nil, fmt.Errorf("parsing user created_at: %w", err)
	}
	return &u, nil
}

func (s *DB) SetUserEmail(ctx context.Context, userID int, email string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET email = ? WHERE id = ?`, email, userID)
	if err != nil {
		return fmt.Errorf("updating user email: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("updating user email: %w", store.ErrNotFound)
	}
	return nil
}

func (s *DB) GetProfile(ctx context.Context, userID int) (*models.Profile, error) {
	var p models.Profile
	row := s.db.QueryRowContext(ctx, `SELECT profile FROM profiles WHERE user_id = ?`, userID)
	if err := scanJSON(row, &p); err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}
	p.UserID = userID
	return &p, nil
}

func (s *DB) SaveProfile(ctx context.Context, p *models.Profile) error {
	p.UpdatedAt = s.now().UTC()
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, profile, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET profile = excluded.profile, updated_at = excluded.updated_at`,
		p.UserID, string(raw), fmtTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

func (s *DB) GetOverrides(ctx context.Context, userID int) (models.BetaOverrides, error) {
	var o models.BetaOverrides
	row := s.db.QueryRowContext(ctx, `SELECT overrides FROM beta_overrides WHERE user_id = ?`, userID)
	err := scanJSON(row, &o)
	if errors.Is(err, store.ErrNotFound) {
		return models.BetaOverrides{}, nil
	}
	if err != nil {
		return models.BetaOverrides{}, fmt.Errorf("querying overrides: %w", err)
	}
	return o, nil
}

func (s *DB) SaveOverrides(ctx context.Context, userID int, o models.BetaOverrides) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encoding overrides: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO beta_overrides (user_id, overrides) VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE SET overrides = excluded.overrides`, userID, string(raw))
	if err != nil {
		return fmt.Errorf("saving overrides: %w", err)
	}
	return nil
}

func (s *DB) DeleteOverrides(ctx context.Context, userID int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM beta_overrides WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("deleting overrides: %w", err)
	}
	return nil
}

// ListPrograms returns all programs of a user, newest first.
func (s *DB) ListPrograms(ctx context.Context, userID int) ([]models.TrainingProgram, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT program, is_active FROM training_programs WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var result []models.TrainingProgram
	for rows.Next() {
		var raw string
		var p models.TrainingProgram
		if err := rows.Scan(&raw, &p.IsActive); err != nil {
			return nil, fmt.Errorf("scanning program: %w", err)
		}
		active := p.IsActive
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("decoding program: %w", err)
		}
		p.IsActive = active
		result = append(result, p)
	}
	return result, rows.Err()
}

func (s *DB) getProgram(ctx context.Context, query string, args ...any) (*models.TrainingProgram, error) {
	var raw string
	var active bool
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&raw, &active); err != nil {
		return nil, notFound(err)
	}
	var p models.TrainingProgram
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decoding program: %w", err)
	}
	p.IsActive = active
	return &p, nil
}

func (s *DB) GetProgram(ctx context.Context, userID int, id uuid.UUID) (*models.TrainingProgram, error) {
	p, err := s.getProgram(ctx,
		`SELECT program, is_active FROM training_programs WHERE user_id = ? AND id = ?`, userID, id.String())
	if err != nil {
		return nil, fmt.Errorf("querying program %s: %w", id, err)
	}
	return p, nil
}

func (s *DB) GetActiveProgram(ctx context.Context, userID int) (*models.TrainingProgram, error) {
	p, err := s.getProgram(ctx,
		`SELECT program, is_active FROM training_programs WHERE user_id = ? AND is_active = 1`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying active program: %w", err)
	}
	return p, nil
}

const (
	deactivateProgramsSQL = `UPDATE training_programs SET is_active = 0 WHERE user_id = ? AND is_active = 1`
	insertProgramSQL      = `INSERT INTO training_programs (id, user_id, program, is_active, created_at) VALUES (?, ?, ?, ?, ?)`
)

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *DB) DeactivatePrograms(ctx context.Context, userID int) error {
	if _, err := s.db.ExecContext(ctx, deactivateProgramsSQL, userID); err != nil {
		return fmt.Errorf("deactivating programs: %w", err)
	}
	return nil
}

func (s *DB) SaveProgram(ctx context.Context, p *models.TrainingProgram) error {
	return insertProgram(ctx, s.db, p)
}

// ReplaceActiveProgram deactivates the user's programs and inserts p in one
// transaction.
func (s *DB) ReplaceActiveProgram(ctx context.Context, p *models.TrainingProgram) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deactivateProgramsSQL, p.UserID); err != nil {
		return fmt.Errorf("deactivating programs: %w", err)
	}
	if err := insertProgram(ctx, tx, p); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing program: %w", err)
	}
	return nil
}

func insertProgram(ctx context.Context, db execer, p *models.TrainingProgram) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding program: %w", err)
	}
	_, err = db.ExecContext(ctx, insertProgramSQL,
		p.ID.String(), p.UserID, string(raw), p.IsActive, fmtTime(p.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}
	return nil
}

func (s *DB) SaveWorkoutLog(ctx context.Context, l *models.WorkoutLog) error {
	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encoding workout log: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO workout_logs (id, user_id, workout, completed_at) VALUES (?, ?, ?, ?)`,
		l.ID.String(), l.UserID, string(raw), fmtTime(l.CompletedAt))
	if err != nil {
		return fmt.Errorf("inserting workout log: %w", err)
	}
	return nil
}

// ListWorkoutLogs returns a user's workout logs completed in [start, end),
// oldest first.
func (s *DB) ListWorkoutLogs(ctx context.Context, userID int, start, end time.Time) ([]models.WorkoutLog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT workout FROM workout_logs
		 WHERE user_id = ? AND completed_at >= ? AND completed_at < ?
		 ORDER BY completed_at ASC`, userID, fmtTime(start), fmtTime(end))
	if err != nil {
		return nil, fmt.Errorf("querying workout logs: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutLog
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning workout log: %w", err)
		}
		var l models.WorkoutLog
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			return nil, fmt.Errorf("decoding workout log: %w", err)
		}
		if l.Exercises == nil {
			l.Exercises = []models.ExerciseLog{}
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (s *DB) SavePainLog(ctx context.Context, p *models.PainLog) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO pain_logs (user_id, body_area, level, notes, logged_at) VALUES (?, ?, ?, ?, ?)`,
		p.UserID, string(p.BodyArea), p.Level, p.Notes, fmtTime(p.LoggedAt))
	if err != nil {
		return fmt.Errorf("inserting pain log: %w", err)
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading pain log id: %w", err)
	}
	return nil
}

// ListPainLogs returns a user's pain entries logged in [start, end), newest first.
func (s *DB) ListPainLogs(ctx context.Context, userID int, start, end time.Time) ([]models.PainLog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, body_area, level, notes, logged_at FROM pain_logs
		 WHERE user_id = ? AND logged_at >= ? AND logged_at < ?
		 ORDER BY logged_at DESC`, userID, fmtTime(start), fmtTime(end))
	if err != nil {
		return nil, fmt.Errorf("querying pain logs: %w", err)
	}
	defer rows.Close()

	var result []models.PainLog
	for rows.Next() {
		p := models.PainLog{UserID: userID}
		var logged string
		if err := rows.Scan(&p.ID, &p.BodyArea, &p.Level, &p.Notes, &logged); err != nil {
			return nil, fmt.Errorf("scanning pain log: %w", err)
		}
		if p.LoggedAt, err = parseTime(logged); err != nil {
			return nil, fmt.Errorf("parsing pain log time: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (s *DB) SaveRecoveryRecord(ctx context.Context, r *models.RecoveryRecord) error {
	assessment, err := json.Marshal(r.Assessment)
	if err != nil {
		return fmt.Errorf("encoding assessment: %w", err)
	}
	result, err := json.Marshal(r.Result)
	if err != nil {
		return fmt.Errorf("encoding adjustment: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO recovery_assessments (id, user_id, assessment, result, created_at) VALUES (?, ?, ?, ?, ?)`,
		r.ID.String(), r.UserID, string(assessment), string(result), fmtTime(r.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting recovery assessment: %w", err)
	}
	return nil
}

func (s *DB) GetSession(ctx context.Context, userID int) (*models.WorkoutSession, error) {
	var ws models.WorkoutSession
	row := s.db.QueryRowContext(ctx, `SELECT session FROM workout_sessions WHERE user_id = ?`, userID)
	if err := scanJSON(row, &ws); err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}
	ws.UserID = userID
	return &ws, nil
}

func (s *DB) SaveSession(ctx context.Context, ws *models.WorkoutSession) error {
	if ws.UpdatedAt.IsZero() {
		ws.UpdatedAt = s.now()
	}
	raw, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO workout_sessions (user_id, session) VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE SET session = excluded.session`, ws.UserID, string(raw))
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (s *DB) DeleteSession(ctx context.Context, userID int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM workout_sessions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
