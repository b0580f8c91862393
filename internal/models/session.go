package models

import "time"

// FlowState is a state of the workout flow.
type FlowState string

const (
	StateIdle              FlowState = "idle"
	StateRecoveryScreening FlowState = "recovery_screening"
	StateLiveWorkout       FlowState = "live_workout"
	StateWorkoutLogger     FlowState = "workout_logger"
	StateRunningSession    FlowState = "running_session"
)

// WorkoutSession is the persisted in-flight session of a user. There is at
// most one per user.
type WorkoutSession struct {
	UserID     int               `json:"user_id" toml:"user_id"`
	State      FlowState         `json:"state" toml:"state"`
	DayIndex   int               `json:"day_index" toml:"day_index"`
	Running    bool              `json:"running" toml:"running"`
	Date       time.Time         `json:"date" toml:"date"`
	StartedAt  time.Time         `json:"started_at" toml:"started_at"`
	Adjustment *AdjustmentResult `json:"adjustment,omitempty" toml:"adjustment,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at" toml:"updated_at"`
}

// Active reports whether the session is past day selection.
func (s WorkoutSession) Active() bool {
	return s.State != "" && s.State != StateIdle
}
