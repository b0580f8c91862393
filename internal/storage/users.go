package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/store"
)

// GetOrCreateUser finds or creates a user by Tailscale login name.
// Returns the user ID. Updates last_seen and display_name on each call.
func (db *DB) GetOrCreateUser(ctx context.Context, login, displayName string) (int, error) {
	var id int
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO users (login, display_name)
		VALUES ($1, $2)
		ON CONFLICT (login) DO UPDATE
			SET last_seen = NOW(), display_name = COALESCE(NULLIF($2, ''), users.display_name)
		RETURNING id
	`, login, displayName).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upserting user: %w", err)
	}
	return id, nil
}

// GetUser returns a user by ID.
func (db *DB) GetUser(ctx context.Context, userID int) (*models.User, error) {
	var u models.User
	err := db.Pool.QueryRow(ctx,
		`SELECT id, login, display_name, email, tier, created_at FROM users WHERE id = $1`,
		userID).Scan(&u.ID, &u.Login, &u.DisplayName, &u.Email, &u.Tier, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying user %d: %w", userID, notFound(err))
	}
	return &u, nil
}

// SetUserEmail stores the email used to prefill checkout.
func (db *DB) SetUserEmail(ctx context.Context, userID int, email string) error {
	tag, err := db.Pool.Exec(ctx, `UPDATE users SET email = $2 WHERE id = $1`, userID, email)
	if err != nil {
		return fmt.Errorf("updating user email: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("updating user email: %w", store.ErrNotFound)
	}
	return nil
}

// GetProfile returns the onboarding profile of a user.
func (db *DB) GetProfile(ctx context.Context, userID int) (*models.Profile, error) {
	p := models.Profile{UserID: userID}
	var pain []string
	err := db.Pool.QueryRow(ctx,
		`SELECT goal, location, frequency, session_duration, pain_areas, screening_level,
		 quiz_level, sex, bodyweight_kg, baselines, running, updated_at
		 FROM profiles WHERE user_id = $1`, userID).Scan(
		&p.Goal, &p.Location, &p.Frequency, &p.SessionDuration, &pain, &p.ScreeningLevel,
		&p.QuizLevel, &p.Sex, &p.BodyweightKg, &p.Baselines, &p.Running, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", notFound(err))
	}
	p.PainAreas = toBodyAreas(pain)
	return &p, nil
}

// SaveProfile inserts or replaces the onboarding profile of a user.
func (db *DB) SaveProfile(ctx context.Context, p *models.Profile) error {
	baselines := p.Baselines
	if baselines == nil {
		baselines = map[string]float64{}
	}
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO profiles (user_id, goal, location, frequency, session_duration, pain_areas,
			screening_level, quiz_level, sex, bodyweight_kg, baselines, running, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			goal = EXCLUDED.goal, location = EXCLUDED.location, frequency = EXCLUDED.frequency,
			session_duration = EXCLUDED.session_duration, pain_areas = EXCLUDED.pain_areas,
			screening_level = EXCLUDED.screening_level, quiz_level = EXCLUDED.quiz_level,
			sex = EXCLUDED.sex, bodyweight_kg = EXCLUDED.bodyweight_kg,
			baselines = EXCLUDED.baselines, running = EXCLUDED.running, updated_at = NOW()
		RETURNING updated_at
	`, p.UserID, string(p.Goal), string(p.Location), p.Frequency, p.SessionDuration,
		fromBodyAreas(p.PainAreas), string(p.ScreeningLevel), string(p.QuizLevel), string(p.Sex),
		p.BodyweightKg, baselines, p.Running).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// GetOverrides returns the beta overrides of a user, zero when none are set.
func (db *DB) GetOverrides(ctx context.Context, userID int) (models.BetaOverrides, error) {
	var o models.BetaOverrides
	err := db.Pool.QueryRow(ctx,
		`SELECT overrides FROM beta_overrides WHERE user_id = $1`, userID).Scan(&o)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.BetaOverrides{}, nil
	}
	if err != nil {
		return models.BetaOverrides{}, fmt.Errorf("querying overrides: %w", err)
	}
	return o, nil
}

// SaveOverrides replaces the beta overrides of a user.
func (db *DB) SaveOverrides(ctx context.Context, userID int, o models.BetaOverrides) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO beta_overrides (user_id, overrides, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET overrides = EXCLUDED.overrides, updated_at = NOW()
	`, userID, o)
	if err != nil {
		return fmt.Errorf("saving overrides: %w", err)
	}
	return nil
}

// DeleteOverrides clears the beta overrides of a user.
func (db *DB) DeleteOverrides(ctx context.Context, userID int) error {
	if _, err := db.Pool.Exec(ctx, `DELETE FROM beta_overrides WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("deleting overrides: %w", err)
	}
	return nil
}

func toBodyAreas(raw []string) []models.BodyArea {
	if len(raw) == 0 {
		return nil
	}
	out := make([]models.BodyArea, len(raw))
	for i, s := range raw {
		out[i] = models.BodyArea(s)
	}
	return out
}

func fromBodyAreas(areas []models.BodyArea) []string {
	out := make([]string, len(areas))
	for i, a := range areas {
		out[i] = string(a)
	}
	return out
}
