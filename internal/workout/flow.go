// Package workout sequences a workout session: day selection, recovery
// screening, the live workout, logging, and the running branch.
package workout

import (
	"errors"
	"fmt"
	"time"

	"github.com/meltforce/fitcoach/internal/models"
)

var (
	// ErrInvalidTransition is returned when an event does not apply to the
	// session's current state.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrInvalidEvent is returned for unknown or incomplete events.
	ErrInvalidEvent = errors.New("invalid event")
)

// EventType names a user action in the flow.
type EventType string

const (
	EventSelectDay         EventType = "select_day"
	EventCompleteScreening EventType = "complete_screening"
	EventSkipScreening     EventType = "skip_screening"
	EventFinishWorkout     EventType = "finish_workout"
	EventLogSaved          EventType = "log_saved"
	EventFinishRun         EventType = "finish_run"
	EventCancel            EventType = "cancel"
)

// Event is a user action. DayIndex and Running apply to select_day and
// Adjustment to complete_screening. At is the time the action happened.
type Event struct {
	Type       EventType                `json:"type"`
	DayIndex   int                      `json:"day_index,omitempty"`
	Running    bool                     `json:"running,omitempty"`
	Adjustment *models.AdjustmentResult `json:"adjustment,omitempty"`
	At         time.Time                `json:"at,omitzero"`
}

// Transition applies e to s and returns the next session.
func Transition(s models.WorkoutSession, e Event) (models.WorkoutSession, error) {
	state := s.State
	if state == "" {
		state = models.StateIdle
	}

	if e.Type == EventCancel {
		if state == models.StateIdle {
			return s, invalid(state, e.Type)
		}
		return idle(s, e.At), nil
	}

	next := s
	next.UpdatedAt = e.At
	switch e.Type {
	case EventSelectDay:
		if state != models.StateIdle {
			return s, invalid(state, e.Type)
		}
		if e.DayIndex < 0 {
			return s, fmt.Errorf("%w: negative day index %d", ErrInvalidEvent, e.DayIndex)
		}
		next.State = models.StateRecoveryScreening
		if e.Running {
			next.State = models.StateRunningSession
		}
		next.DayIndex = e.DayIndex
		next.Running = e.Running
		next.Date = dayOf(e.At)
		next.StartedAt = e.At
		next.Adjustment = nil
	case EventCompleteScreening:
		if state != models.StateRecoveryScreening {
			return s, invalid(state, e.Type)
		}
		if e.Adjustment == nil {
			return s, fmt.Errorf("%w: %s requires an adjustment", ErrInvalidEvent, e.Type)
		}
		adj := *e.Adjustment
		next.State = models.StateLiveWorkout
		next.Adjustment = &adj
	case EventSkipScreening:
		if state != models.StateRecoveryScreening {
			return s, invalid(state, e.Type)
		}
		next.State = models.StateLiveWorkout
		next.Adjustment = nil
	case EventFinishWorkout:
		if state != models.StateLiveWorkout {
			return s, invalid(state, e.Type)
		}
		next.State = models.StateWorkoutLogger
	case EventLogSaved:
		if state != models.StateWorkoutLogger {
			return s, invalid(state, e.Type)
		}
		return idle(s, e.At), nil
	case EventFinishRun:
		if state != models.StateRunningSession {
			return s, invalid(state, e.Type)
		}
		return idle(s, e.At), nil
	default:
		return s, fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
	return next, nil
}

func invalid(state models.FlowState, ev EventType) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, ev, state)
}

func idle(s models.WorkoutSession, at time.Time) models.WorkoutSession {
	return models.WorkoutSession{UserID: s.UserID, State: models.StateIdle, UpdatedAt: at}
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
