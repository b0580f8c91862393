package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
// Stdio sessions have no transport identity and act as user 1.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("FitCoach", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithInstructions("FitCoach training server. Score pre-workout recovery, estimate one-rep maxes, and read the active program, workout logs, pain logs and strength progression. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolScoreRecovery, Handler: h.scoreRecovery},
		server.ServerTool{Tool: toolEstimate1RM, Handler: h.estimate1RM},
		server.ServerTool{Tool: toolGetActiveProgram, Handler: h.getActiveProgram},
		server.ServerTool{Tool: toolGetWorkoutLogs, Handler: h.getWorkoutLogs},
		server.ServerTool{Tool: toolGetPainLogs, Handler: h.getPainLogs},
		server.ServerTool{Tool: toolGetE1RMProgression, Handler: h.getE1RMProgression},
	)

	s.AddResources(
		server.ServerResource{Resource: resActiveProgram, Handler: h.activeProgram},
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkouts},
		server.ServerResource{Resource: resInjuryExclusions, Handler: h.injuryExclusions},
	)

	return s
}

type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resActiveProgram = mcp.NewResource(
	"fitcoach://active_program",
	"Active Program",
	mcp.WithResourceDescription("The user's active training program with all days and prescribed exercises"),
	mcp.WithMIMEType("application/json"),
)

var resRecentWorkouts = mcp.NewResource(
	"fitcoach://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("Workout logs from the last 14 days"),
	mcp.WithMIMEType("application/json"),
)

var resInjuryExclusions = mcp.NewResource(
	"fitcoach://injury_exclusions",
	"Injury Exclusions",
	mcp.WithResourceDescription("Exercises skipped for each injured body area"),
	mcp.WithMIMEType("application/json"),
)
