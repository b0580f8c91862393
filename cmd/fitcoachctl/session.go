package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/workout"
	"github.com/spf13/cobra"
)

// stateFile is the on-disk session of the offline flow.
type stateFile struct {
	Session models.WorkoutSession `toml:"session"`
	History []historyEntry        `toml:"history"`
}

// historyEntry records how a session ended.
type historyEntry struct {
	DayIndex int       `toml:"day_index"`
	Date     time.Time `toml:"date"`
	Status   string    `toml:"status"`
	Running  bool      `toml:"running,omitempty"`
}

func loadState(path string) (*stateFile, error) {
	var st stateFile
	if _, err := toml.DecodeFile(path, &st); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &stateFile{Session: models.WorkoutSession{State: models.StateIdle}}, nil
		}
		return nil, fmt.Errorf("reading state %s: %w", path, err)
	}
	if st.Session.State == "" {
		st.Session.State = models.StateIdle
	}
	return &st, nil
}

func saveState(path string, st *stateFile) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating state dir: %w", err)
		}
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating state: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(st); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing state: %w", err)
	}
	return os.Rename(tmp, path)
}

// apply runs an event and records finished sessions in the history.
func (st *stateFile) apply(e workout.Event) error {
	prev := st.Session
	next, err := workout.Transition(prev, e)
	if err != nil {
		return err
	}
	if next.State == models.StateIdle && prev.Active() && e.Type != workout.EventCancel {
		st.History = append(st.History, historyEntry{
			DayIndex: prev.DayIndex,
			Date:     prev.Date,
			Status:   models.WorkoutCompleted,
			Running:  prev.Running,
		})
	}
	st.Session = next
	return nil
}

func newSessionCmd(asJSON *bool) *cobra.Command {
	var statePath string
	session := &cobra.Command{
		Use:   "session",
		Short: "Walk a workout session kept in a local state file",
	}
	session.PersistentFlags().StringVar(&statePath, "state", "fitcoach-session.toml", "session state file")

	// run loads the state, applies fn, saves and prints the session.
	run := func(cmd *cobra.Command, fn func(st *stateFile) error) error {
		st, err := loadState(statePath)
		if err != nil {
			return err
		}
		if err := fn(st); err != nil {
			return err
		}
		if err := saveState(statePath, st); err != nil {
			return err
		}
		return printStatus(cmd, st, *asJSON)
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the session and the options for an interrupted one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := loadState(statePath)
			if err != nil {
				return err
			}
			return printStatus(cmd, st, *asJSON)
		},
	}

	var day int
	var running bool
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Select a program day and start the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(st *stateFile) error {
				if opts := workout.ResolveInterrupted(&st.Session, now()); len(opts) > 0 {
					return fmt.Errorf("%w: a session from %s is still open, resolve it with one of %v",
						workout.ErrInvalidTransition, st.Session.Date.Format(time.DateOnly), opts)
				}
				return st.apply(workout.Event{Type: workout.EventSelectDay, DayIndex: day, Running: running, At: now()})
			})
		},
	}
	startCmd.Flags().IntVar(&day, "day", 0, "program day index")
	startCmd.Flags().BoolVar(&running, "running", false, "the day is a running session")

	var screening assessmentFlags
	eventCmd := &cobra.Command{
		Use:   "event <type>",
		Short: "Apply a flow event: complete_screening|skip_screening|finish_workout|log_saved|finish_run|cancel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := workout.Event{Type: workout.EventType(args[0]), At: now()}
			if e.Type == workout.EventSelectDay {
				return fmt.Errorf("use \"session start\" to select a day")
			}
			if e.Type == workout.EventCompleteScreening {
				res, err := screening.score()
				if err != nil {
					return err
				}
				e.Adjustment = &res
			}
			return run(cmd, func(st *stateFile) error { return st.apply(e) })
		},
	}
	screening.bind(eventCmd)

	resolveCmd := &cobra.Command{
		Use:   "resolve <resume|merge|skip>",
		Short: "Resolve a session left open on an earlier visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(st *stateFile) error {
				prev := st.Session
				next, skipped, err := workout.ApplyResolution(prev, workout.Resolution(args[0]), now())
				if err != nil {
					return err
				}
				if skipped != nil {
					st.History = append(st.History, historyEntry{
						DayIndex: skipped.DayIndex,
						Date:     prev.Date,
						Status:   skipped.Status,
						Running:  prev.Running,
					})
				}
				st.Session = next
				return nil
			})
		},
	}

	session.AddCommand(statusCmd, startCmd, eventCmd, resolveCmd)
	return session
}

func printStatus(cmd *cobra.Command, st *stateFile, asJSON bool) error {
	opts := workout.ResolveInterrupted(&st.Session, now())
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"session": st.Session,
			"options": opts,
			"history": st.History,
		})
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSession(st.Session, opts, st.History))
	return nil
}
