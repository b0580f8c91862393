package mcp

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/recovery"
	"github.com/meltforce/fitcoach/internal/store"
	"github.com/meltforce/fitcoach/internal/strength"
	"go.uber.org/multierr"
)

// defaultTimeRange returns start/end, defaulting to the given number of days
// before end.
func defaultTimeRange(startStr, endStr string, days int) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -days)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolScoreRecovery = mcp.NewTool("score_recovery",
	mcp.WithDescription("Score a pre-workout recovery check-in. Returns volume/intensity/rest multipliers, the session mode for the available time, exercises to skip for injuries, warnings and a recommendation."),
	mcp.WithNumber("sleep_hours", mcp.Required(), mcp.Description("Hours slept last night (0-12)")),
	mcp.WithNumber("stress_level", mcp.Required(), mcp.Description("Perceived stress from 1 (calm) to 10 (very stressed)")),
	mcp.WithNumber("available_time_minutes", mcp.Required(), mcp.Description("Minutes available for the session (e.g. 20, 30, 45, 60, 90)")),
	mcp.WithBoolean("has_injury", mcp.Description("Whether the user reports an injury or pain today")),
	mcp.WithString("injury_areas", mcp.Description("Comma-separated body areas (shoulder, back, knee, wrist, hip, ankle, elbow, neck; Italian names accepted)")),
	mcp.WithString("injury_details", mcp.Description("Free-text injury notes")),
	mcp.WithBoolean("is_female", mcp.Description("Whether cycle-phase adaptation applies")),
	mcp.WithString("menstrual_cycle_phase", mcp.Description("Cycle phase"),
		mcp.Enum("follicular", "ovulation", "luteal", "menstruation", "menopause", "prefer_not_say")),
)

var toolEstimate1RM = mcp.NewTool("estimate_1rm",
	mcp.WithDescription("Estimate a one-rep max from a set with the Epley formula. Sets above 12 reps are capped at 12. Optionally returns the working weight for a percentage of the estimate."),
	mcp.WithNumber("weight_kg", mcp.Required(), mcp.Description("Weight lifted in kg")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Repetitions performed")),
	mcp.WithNumber("intensity_pct", mcp.Description("Percentage of the estimate to compute a working weight for (e.g. 75)")),
)

var toolGetActiveProgram = mcp.NewTool("get_active_program",
	mcp.WithDescription("Get the user's active training program: goal, level, frequency and every day's prescribed exercises."),
)

var toolGetWorkoutLogs = mcp.NewTool("get_workout_logs",
	mcp.WithDescription("Query completed and skipped workouts with their logged sets (weight, reps, RPE)."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
	mcp.WithString("exercise", mcp.Description("Only keep sets of exercises matching this name (partial match, e.g. 'squat')")),
)

var toolGetPainLogs = mcp.NewTool("get_pain_logs",
	mcp.WithDescription("Query self-reported pain entries (body area, level 0-10, notes)."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
	mcp.WithString("body_area", mcp.Description("Filter by body area")),
)

var toolGetE1RMProgression = mcp.NewTool("get_e1rm_progression",
	mcp.WithDescription("Estimated one-rep-max progression. With an exercise, returns the best estimate per day; without, returns the best estimate of every exercise."),
	mcp.WithString("exercise", mcp.Description("Exact exercise name (e.g. 'Squat')")),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 90 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

// --- Tool handlers ---

type scoreResult struct {
	Result   models.AdjustmentResult `json:"result"`
	Messages []string                `json:"messages"`
}

func (h *handlers) scoreRecovery(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sleep, err := req.RequireFloat("sleep_hours")
	if err != nil {
		return mcp.NewToolResultError("sleep_hours parameter is required"), nil
	}
	stress, err := req.RequireFloat("stress_level")
	if err != nil {
		return mcp.NewToolResultError("stress_level parameter is required"), nil
	}
	minutes, err := req.RequireFloat("available_time_minutes")
	if err != nil {
		return mcp.NewToolResultError("available_time_minutes parameter is required"), nil
	}

	a := models.RecoveryAssessment{
		SleepHours:           sleep,
		StressLevel:          int(stress),
		AvailableTimeMinutes: int(minutes),
		HasInjury:            req.GetBool("has_injury", false),
		InjuryDetails:        req.GetString("injury_details", ""),
		IsFemale:             req.GetBool("is_female", false),
		MenstrualCyclePhase:  models.CyclePhase(req.GetString("menstrual_cycle_phase", "")),
	}
	for _, area := range strings.Split(req.GetString("injury_areas", ""), ",") {
		if area = strings.TrimSpace(area); area != "" {
			a.InjuryAreas = append(a.InjuryAreas, models.BodyArea(area))
		}
	}

	a = recovery.Normalize(a)
	if err := recovery.Validate(a); err != nil {
		msgs := make([]string, 0)
		for _, e := range multierr.Errors(err) {
			msgs = append(msgs, e.Error())
		}
		return mcp.NewToolResultError("invalid assessment: " + strings.Join(msgs, "; ")), nil
	}

	res := recovery.Score(a)
	result, err := mcp.NewToolResultJSON(scoreResult{Result: res, Messages: recovery.Messages(res)})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

type estimateResult struct {
	E1RM          float64 `json:"e1rm_kg"`
	RepsUsed      int     `json:"reps_used"`
	WorkingWeight float64 `json:"working_weight_kg,omitempty"`
}

func (h *handlers) estimate1RM(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight_kg")
	if err != nil {
		return mcp.NewToolResultError("weight_kg parameter is required"), nil
	}
	reps, err := req.RequireFloat("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}
	if weight <= 0 || reps < 1 {
		return mcp.NewToolResultError("weight_kg and reps must be positive"), nil
	}

	out := estimateResult{
		E1RM:     strength.Estimate1RM(weight, int(reps)),
		RepsUsed: min(int(reps), strength.MaxEstimationReps),
	}
	if pct := req.GetFloat("intensity_pct", 0); pct > 0 {
		out.WorkingWeight = strength.WorkingWeight(out.E1RM, pct, 2.5)
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getActiveProgram(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := h.ds.GetActiveProgram(ctx, UserIDFromContext(ctx))
	if errors.Is(err, store.ErrNotFound) {
		return mcp.NewToolResultText("No active program. The user has to complete onboarding and generate one first."), nil
	}
	if err != nil {
		h.log.Error("mcp get_active_program", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(p)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutLogs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""), 7)
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	logs, err := h.ds.ListWorkoutLogs(ctx, UserIDFromContext(ctx), start, end)
	if err != nil {
		h.log.Error("mcp get_workout_logs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if ex := req.GetString("exercise", ""); ex != "" {
		logs = filterExercises(logs, ex)
	}
	if logs == nil {
		logs = []models.WorkoutLog{}
	}

	result, err := mcp.NewToolResultJSON(logs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// filterExercises keeps the sets whose exercise name contains name, case
// insensitive, and drops logs left without sets.
func filterExercises(logs []models.WorkoutLog, name string) []models.WorkoutLog {
	name = strings.ToLower(name)
	var out []models.WorkoutLog
	for _, l := range logs {
		var sets []models.ExerciseLog
		for _, e := range l.Exercises {
			if strings.Contains(strings.ToLower(e.ExerciseName), name) {
				sets = append(sets, e)
			}
		}
		if len(sets) > 0 {
			l.Exercises = sets
			out = append(out, l)
		}
	}
	return out
}

func (h *handlers) getPainLogs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""), 30)
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	pains, err := h.ds.ListPainLogs(ctx, UserIDFromContext(ctx), start, end)
	if err != nil {
		h.log.Error("mcp get_pain_logs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	out := []models.PainLog{}
	if raw := req.GetString("body_area", ""); raw != "" {
		area, ok := models.NormalizeBodyArea(raw)
		if !ok {
			return mcp.NewToolResultError("unknown body area: " + raw), nil
		}
		for _, p := range pains {
			if p.BodyArea == area {
				out = append(out, p)
			}
		}
	} else if pains != nil {
		out = pains
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

type progressionResult struct {
	Exercise  string                   `json:"exercise,omitempty"`
	Points    []strength.ProgressPoint `json:"points,omitempty"`
	Best      map[string]float64       `json:"best,omitempty"`
	Exercises []string                 `json:"exercises"`
}

func (h *handlers) getE1RMProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""), 90)
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	logs, err := h.ds.ListWorkoutLogs(ctx, UserIDFromContext(ctx), start, end)
	if err != nil {
		h.log.Error("mcp get_e1rm_progression", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	out := progressionResult{Exercises: strength.ExerciseNames(logs)}
	if out.Exercises == nil {
		out.Exercises = []string{}
	}
	if ex := req.GetString("exercise", ""); ex != "" {
		out.Exercise = ex
		out.Points = strength.Progression(logs, ex)
	} else {
		out.Best = strength.BestEstimates(logs)
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
