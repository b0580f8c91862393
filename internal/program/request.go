// Package program builds generation requests from a user's onboarding state and
// turns generator output into stored training programs.
package program

import (
	"slices"

	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/strength"
)

// Defaults used when neither an override nor an onboarding answer is present.
const (
	DefaultGoal            = models.GoalGeneral
	DefaultLocation        = models.LocationGym
	DefaultLevel           = models.LevelBeginner
	DefaultFrequency       = 3
	DefaultSessionDuration = 45
)

// GenerateRequest is the merged parameter object passed to a Generator.
type GenerateRequest struct {
	UserID          int                 `json:"user_id"`
	Level           models.Level        `json:"level"`
	Goal            models.Goal         `json:"goal"`
	Location        models.Location     `json:"location"`
	Frequency       int                 `json:"frequency"`
	SessionDuration int                 `json:"session_duration"`
	PainAreas       []models.BodyArea   `json:"pain_areas"`
	Sex             models.Sex          `json:"sex,omitempty"`
	BodyweightKg    float64             `json:"bodyweight_kg,omitempty"`
	Baselines       map[string]float64  `json:"baselines"`
	Running         models.RunningPrefs `json:"running"`
}

// BuildRequest merges a profile with beta overrides. A set override wins over
// the onboarding answer, which wins over the default. The level falls back
// from override to screening level to quiz level to beginner.
func BuildRequest(p *models.Profile, o models.BetaOverrides) GenerateRequest {
	if p == nil {
		p = &models.Profile{}
	}

	req := GenerateRequest{
		UserID:          p.UserID,
		Level:           pick(o.FitnessLevel, p.ScreeningLevel, p.QuizLevel, DefaultLevel),
		Goal:            pick(o.Goal, p.Goal, DefaultGoal),
		Location:        pick(o.Location, p.Location, DefaultLocation),
		Frequency:       pick(o.Frequency, p.Frequency, DefaultFrequency),
		SessionDuration: pick(o.SessionDuration, p.SessionDuration, DefaultSessionDuration),
		Sex:             p.Sex,
		BodyweightKg:    p.BodyweightKg,
		Running:         p.Running,
	}

	switch {
	case o.PainAreas != nil:
		req.PainAreas = slices.Clone(o.PainAreas)
	default:
		req.PainAreas = slices.Clone(p.PainAreas)
	}
	if req.PainAreas == nil {
		req.PainAreas = []models.BodyArea{}
	}

	req.Baselines = strength.InferMissingBaselines(p.Baselines, req.Level, p.Sex, p.BodyweightKg)
	return req
}

// pick returns the override when set, otherwise the first non-zero fallback.
func pick[T comparable](override *T, fallbacks ...T) T {
	if override != nil {
		return *override
	}
	var zero T
	for _, v := range fallbacks {
		if v != zero {
			return v
		}
	}
	return zero
}
