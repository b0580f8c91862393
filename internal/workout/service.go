package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/store"
)

// Status is a user's current session together with the options for resolving
// it when it was interrupted.
type Status struct {
	Session models.WorkoutSession `json:"session"`
	Options []Resolution          `json:"options,omitempty"`
	Day     *models.ProgramDay    `json:"day,omitempty"`
}

// Service applies flow events against the session store.
type Service struct {
	sessions store.SessionStore
	logs     store.LogStore
	programs store.ProgramStore
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a Service.
func NewService(sessions store.SessionStore, logs store.LogStore, programs store.ProgramStore, log *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		logs:     logs,
		programs: programs,
		log:      log,
		now:      time.Now,
	}
}

// Status returns the stored session, or an idle one when none is stored.
func (s *Service) Status(ctx context.Context, userID int) (*Status, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	st := &Status{Session: *sess, Options: ResolveInterrupted(sess, s.now())}
	if sess.Active() {
		if day, ok := s.programDay(ctx, userID, sess.DayIndex); ok {
			st.Day = &day
		}
	}
	return st, nil
}

// Apply runs an event against the user's session and stores the result. For
// select_day the running flag follows the active program's day type.
func (s *Service) Apply(ctx context.Context, userID int, e Event) (*models.WorkoutSession, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if e.At.IsZero() {
		e.At = s.now()
	}
	if e.Type == EventSelectDay {
		if day, ok := s.programDay(ctx, userID, e.DayIndex); ok {
			e.Running = day.Type == models.DayRunning
		}
	}

	next, err := Transition(*sess, e)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SaveSession(ctx, &next); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	s.log.Debug("session transition", "user_id", userID, "event", e.Type, "from", sess.State, "to", next.State)
	return &next, nil
}

// Resolve applies a resolution to an interrupted session. Skipping records a
// skipped workout log for the abandoned day.
func (s *Service) Resolve(ctx context.Context, userID int, r Resolution) (*models.WorkoutSession, error) {
	sess, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	next, skipped, err := ApplyResolution(*sess, r, s.now())
	if err != nil {
		return nil, err
	}
	if skipped != nil {
		if p, err := s.programs.GetActiveProgram(ctx, userID); err == nil {
			skipped.ProgramID = &p.ID
		}
		if err := s.logs.SaveWorkoutLog(ctx, skipped); err != nil {
			return nil, fmt.Errorf("saving skipped workout: %w", err)
		}
	}
	if err := s.sessions.SaveSession(ctx, &next); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	s.log.Info("interrupted session resolved", "user_id", userID, "resolution", r)
	return &next, nil
}

// LogWorkout stores a completed workout. When the user's session is waiting
// in the logger, it moves back to idle.
func (s *Service) LogWorkout(ctx context.Context, l *models.WorkoutLog) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = models.WorkoutCompleted
	}
	if l.CompletedAt.IsZero() {
		l.CompletedAt = s.now()
	}
	if l.StartedAt.IsZero() {
		l.StartedAt = l.CompletedAt
	}
	if l.ProgramID == nil {
		if p, err := s.programs.GetActiveProgram(ctx, l.UserID); err == nil {
			l.ProgramID = &p.ID
		}
	}
	if err := s.logs.SaveWorkoutLog(ctx, l); err != nil {
		return fmt.Errorf("saving workout log: %w", err)
	}

	sess, err := s.load(ctx, l.UserID)
	if err != nil {
		return err
	}
	if sess.State == models.StateWorkoutLogger {
		next, err := Transition(*sess, Event{Type: EventLogSaved, At: s.now()})
		if err != nil {
			return err
		}
		if err := s.sessions.SaveSession(ctx, &next); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
	}
	return nil
}

func (s *Service) load(ctx context.Context, userID int) (*models.WorkoutSession, error) {
	sess, err := s.sessions.GetSession(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return &models.WorkoutSession{UserID: userID, State: models.StateIdle}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return sess, nil
}

func (s *Service) programDay(ctx context.Context, userID, index int) (models.ProgramDay, bool) {
	p, err := s.programs.GetActiveProgram(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn("loading active program", "user_id", userID, "error", err)
		}
		return models.ProgramDay{}, false
	}
	return p.Day(index)
}
