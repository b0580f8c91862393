// Command fitcoachctl runs the coaching engine offline: score a recovery
// check-in, estimate one-rep maxes, generate a program from a profile file and
// walk a workout session kept in a local state file. It can also serve the MCP
// tools over stdio against a remote FitCoach server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/fitcoach/internal/ingest/alpha"
	fitmcp "github.com/meltforce/fitcoach/internal/mcp"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/program"
	"github.com/meltforce/fitcoach/internal/recovery"
	"github.com/meltforce/fitcoach/internal/strength"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var now = time.Now

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var asJSON bool

	root := &cobra.Command{
		Use:           "fitcoachctl",
		Short:         "Offline tools for the FitCoach training engine",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON instead of tables")

	root.AddCommand(newScoreCmd(&asJSON))
	root.AddCommand(newE1RMCmd(&asJSON))
	root.AddCommand(newGenerateCmd(&asJSON))
	root.AddCommand(newSessionCmd(&asJSON))
	root.AddCommand(newImportCmd(&asJSON))
	root.AddCommand(newMCPCmd())
	return root
}

// assessmentFlags binds the screening questions to command flags.
type assessmentFlags struct {
	sleep   float64
	stress  int
	minutes int
	injury  bool
	areas   []string
	details string
	female  bool
	phase   string
}

func (f *assessmentFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.sleep, "sleep", 8, "hours slept (0-12)")
	cmd.Flags().IntVar(&f.stress, "stress", 5, "stress level (1-10)")
	cmd.Flags().IntVar(&f.minutes, "minutes", 45, "available minutes")
	cmd.Flags().BoolVar(&f.injury, "injury", false, "report an injury")
	cmd.Flags().StringSliceVar(&f.areas, "areas", nil, "injured body areas (shoulder, back, knee, ...)")
	cmd.Flags().StringVar(&f.details, "details", "", "free-text injury notes")
	cmd.Flags().BoolVar(&f.female, "female", false, "apply cycle-phase adaptation")
	cmd.Flags().StringVar(&f.phase, "phase", "", "cycle phase: follicular|ovulation|luteal|menstruation|menopause|prefer_not_say")
}

// score validates and scores the flags.
func (f *assessmentFlags) score() (models.AdjustmentResult, error) {
	a := models.RecoveryAssessment{
		SleepHours:           f.sleep,
		StressLevel:          f.stress,
		AvailableTimeMinutes: f.minutes,
		HasInjury:            f.injury || len(f.areas) > 0,
		InjuryDetails:        f.details,
		IsFemale:             f.female,
		MenstrualCyclePhase:  models.CyclePhase(f.phase),
	}
	for _, area := range f.areas {
		a.InjuryAreas = append(a.InjuryAreas, models.BodyArea(area))
	}
	a = recovery.Normalize(a)
	if err := recovery.Validate(a); err != nil {
		return models.AdjustmentResult{}, fmt.Errorf("invalid assessment: %w", err)
	}
	return recovery.Score(a), nil
}

func newScoreCmd(asJSON *bool) *cobra.Command {
	var f assessmentFlags
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a pre-workout recovery check-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := f.score()
			if err != nil {
				return err
			}
			if *asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderAdjustment(res, recovery.Messages(res)))
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newE1RMCmd(asJSON *bool) *cobra.Command {
	var pcts []float64
	var increment float64
	cmd := &cobra.Command{
		Use:   "e1rm <weight-kg> <reps>",
		Short: "Estimate a one-rep max and working weights",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := strconv.ParseFloat(args[0], 64)
			if err != nil || weight <= 0 {
				return fmt.Errorf("weight must be a positive number, got %q", args[0])
			}
			reps, err := strconv.Atoi(args[1])
			if err != nil || reps < 1 {
				return fmt.Errorf("reps must be a positive integer, got %q", args[1])
			}

			oneRM := strength.Estimate1RM(weight, reps)
			working := make(map[string]float64, len(pcts))
			for _, p := range pcts {
				working[strconv.FormatFloat(p, 'f', -1, 64)] = strength.WorkingWeight(oneRM, p, increment)
			}
			if *asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"e1rm_kg": oneRM, "working_kg": working})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderE1RM(oneRM, pcts, working))
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&pcts, "pct", []float64{70, 75, 80, 85}, "percentages to compute working weights for")
	cmd.Flags().Float64Var(&increment, "increment", 2.5, "plate increment in kg")
	return cmd
}

func newGenerateCmd(asJSON *bool) *cobra.Command {
	var profilePath, overridesPath string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a program from a profile file with the built-in generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var p models.Profile
			if err := readYAML(profilePath, &p); err != nil {
				return err
			}
			var o models.BetaOverrides
			if overridesPath != "" {
				if err := readYAML(overridesPath, &o); err != nil {
					return err
				}
			}

			req := program.BuildRequest(&p, o)
			res, err := program.TemplateGenerator{}.Generate(context.Background(), req)
			if err != nil {
				return fmt.Errorf("generating program: %w", err)
			}
			if res.Blocked != nil {
				return &program.BlockedError{Messages: res.Blocked.Errors}
			}
			if *asJSON {
				return writeJSON(cmd.OutOrStdout(), res.Program)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderProgram(res.Program))
			return nil
		},
	}
	cmd.Flags().StringVar(&profilePath, "profile", "", "onboarding profile YAML file")
	cmd.Flags().StringVar(&overridesPath, "overrides", "", "beta overrides YAML file")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func newImportCmd(asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "import <alpha-export.csv>",
		Short: "Read an Alpha Progression export and show the best e1RM per exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening export: %w", err)
			}
			defer f.Close()

			sessions, err := alpha.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			logs := make([]models.WorkoutLog, 0, len(sessions))
			for _, s := range sessions {
				logs = append(logs, alpha.ToWorkoutLog(0, s))
			}
			best := strength.BestEstimates(logs)
			if *asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"sessions": len(sessions), "best_e1rm_kg": best})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderBest(len(sessions), strength.ExerciseNames(logs), best))
			return nil
		},
	}
}

func newMCPCmd() *cobra.Command {
	var remote string
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the MCP tools over stdio against a remote FitCoach server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// stdout carries the protocol; logs go to stderr.
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			s := fitmcp.New(fitmcp.NewHTTPClient(remote), Version, log)
			log.Info("serving MCP over stdio", "remote", remote)
			return server.ServeStdio(s)
		},
	}
	cmd.Flags().StringVar(&remote, "remote", "", "base URL of the FitCoach server (e.g. http://fitcoach)")
	_ = cmd.MarkFlagRequired("remote")
	return cmd
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
