package workout

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/fitcoach/internal/models"
)

// Resolution is a way to deal with a session left in progress.
type Resolution string

const (
	// ResolutionResume continues a session interrupted earlier today.
	ResolutionResume Resolution = "resume"
	// ResolutionMerge moves a session from an earlier day to today.
	ResolutionMerge Resolution = "merge"
	// ResolutionSkip abandons the session and records the day as skipped.
	ResolutionSkip Resolution = "skip"
)

// ResolveInterrupted returns the options for a stored session. An idle or
// missing session has none; a session from today can be resumed; one from an
// earlier day can be merged into today or skipped.
func ResolveInterrupted(s *models.WorkoutSession, today time.Time) []Resolution {
	if s == nil || !s.Active() {
		return nil
	}
	if sameDay(s.Date, today) {
		return []Resolution{ResolutionResume}
	}
	return []Resolution{ResolutionMerge, ResolutionSkip}
}

// ApplyResolution applies the chosen option. Merge moves the session to today
// and keeps its state. A skip returns the skipped workout log to record
// alongside the reset session.
func ApplyResolution(s models.WorkoutSession, r Resolution, now time.Time) (models.WorkoutSession, *models.WorkoutLog, error) {
	if !slices.Contains(ResolveInterrupted(&s, now), r) {
		return s, nil, fmt.Errorf("%w: cannot %s session in state %s from %s",
			ErrInvalidTransition, r, s.State, s.Date.Format(time.DateOnly))
	}

	switch r {
	case ResolutionMerge:
		s.Date = dayOf(now)
		s.UpdatedAt = now
		return s, nil, nil
	case ResolutionSkip:
		skipped := &models.WorkoutLog{
			ID:          uuid.New(),
			UserID:      s.UserID,
			DayIndex:    s.DayIndex,
			StartedAt:   s.StartedAt,
			CompletedAt: now,
			Status:      models.WorkoutSkipped,
			Notes:       fmt.Sprintf("skipped interrupted session from %s", s.Date.Format(time.DateOnly)),
			Exercises:   []models.ExerciseLog{},
		}
		return idle(s, now), skipped, nil
	default:
		s.UpdatedAt = now
		return s, nil, nil
	}
}
