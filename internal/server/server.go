package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/fitcoach/internal/checkout"
	"github.com/meltforce/fitcoach/internal/ingest/alpha"
	fitmcp "github.com/meltforce/fitcoach/internal/mcp"
	"github.com/meltforce/fitcoach/internal/metrics"
	"github.com/meltforce/fitcoach/internal/program"
	"github.com/meltforce/fitcoach/internal/store"
	"github.com/meltforce/fitcoach/internal/workout"
)

// onboardingPath is where clients send users without a profile.
const onboardingPath = "/onboarding"

// Deps are the collaborators of a Server. Programs may be a caching
// decorator around Store. Metrics, Limiter, Checkout, MCP and
// MetricsHandler are optional.
type Deps struct {
	Store          store.Store
	Programs       store.ProgramStore
	Generator      program.Generator
	Checkout       *checkout.Builder
	Metrics        *metrics.Manager
	Limiter        RequestRateLimiter
	WritesPerMin   int
	DevUser        UserInfo
	AllowedOrigins []string
	MCP            *mcpserver.MCPServer
	MetricsHandler http.Handler
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	users     store.UserStore
	logs      store.LogStore
	programs  store.ProgramStore
	generator *program.Service
	workouts  *workout.Service
	alpha     *alpha.Importer
	checkout  *checkout.Builder
	metrics   *metrics.Manager
	limiter   RequestRateLimiter
	perMin    int
	dev       UserInfo
	origins   []string
	whois     WhoIser
	mcp       *mcpserver.MCPServer
	promh     http.Handler
	log       *slog.Logger
	router    chi.Router
}

// New creates a new Server with all routes configured.
func New(d Deps, log *slog.Logger) *Server {
	programs := d.Programs
	if programs == nil {
		programs = d.Store
	}
	gen := d.Generator
	if gen == nil {
		gen = program.TemplateGenerator{}
	}
	dev := d.DevUser
	if dev.Login == "" {
		dev = devUser
	}

	s := &Server{
		users:     d.Store,
		logs:      d.Store,
		programs:  programs,
		generator: program.NewService(d.Store, programs, gen, log),
		workouts:  workout.NewService(d.Store, d.Store, programs, log),
		alpha:     alpha.NewImporter(d.Store, log),
		checkout:  d.Checkout,
		metrics:   d.Metrics,
		limiter:   d.Limiter,
		perMin:    d.WritesPerMin,
		dev:       dev,
		origins:   d.AllowedOrigins,
		mcp:       d.MCP,
		promh:     d.MetricsHandler,
		log:       log,
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

// SetTailscale switches caller identity to tailnet WhoIs lookups.
// Call before serving.
func (s *Server) SetTailscale(whois WhoIser) {
	s.whois = whois
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) resolveIdentity(r *http.Request) (UserInfo, error) {
	if s.whois != nil {
		return TailscaleUser(s.whois)(r)
	}
	return DevUser(s.dev)(r)
}

func (s *Server) routes() {
	s.router.Use(PanicRecovery(s.log))
	s.router.Use(RequestLogging(s.log))
	if s.metrics != nil {
		s.router.Use(RequestMetrics(s.metrics))
	}
	s.router.Use(CORS(s.origins))

	s.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.promh != nil {
		s.router.Handle("/metrics", s.promh)
	}

	identity := Identity(s.users, s.log, s.resolveIdentity)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(identity)

		r.Get("/me", s.handleMe)
		r.Get("/profile", s.handleGetProfile)
		r.Get("/beta-overrides", s.handleGetOverrides)
		r.Get("/programs", s.handleListPrograms)
		r.Get("/programs/active", s.handleActiveProgram)
		r.Get("/workouts", s.handleListWorkouts)
		r.Get("/progress/e1rm", s.handleE1RMProgress)
		r.Get("/pain", s.handleListPain)
		r.Get("/session", s.handleGetSession)

		// Writes are rate limited per user when a limiter is configured.
		r.Group(func(r chi.Router) {
			if s.limiter != nil && s.perMin > 0 {
				r.Use(RateLimit(s.limiter, "fitcoach:writes", s.perMin, s.metrics))
			}
			r.Put("/profile", s.handlePutProfile)
			r.Put("/beta-overrides", s.handlePutOverrides)
			r.Delete("/beta-overrides", s.handleDeleteOverrides)
			r.Post("/recovery/assess", s.handleAssess)
			r.Post("/programs/generate", s.handleGenerate)
			r.Post("/workouts", s.handleLogWorkout)
			r.Post("/workouts/import/alpha", s.handleAlphaImport)
			r.Post("/pain", s.handleLogPain)
			r.Post("/session/events", s.handleSessionEvent)
			r.Post("/session/resolve", s.handleSessionResolve)
			r.Post("/checkout", s.handleCheckout)
		})
	})

	if s.mcp != nil {
		h := mcpserver.NewStreamableHTTPServer(s.mcp, mcpserver.WithHTTPContextFunc(mcpContext))
		s.router.With(identity).Handle("/mcp", h)
	}
}

// mcpContext hands the caller resolved by Identity to the MCP tools.
func mcpContext(ctx context.Context, r *http.Request) context.Context {
	if uid, ok := userIDFromContext(r); ok {
		return fitmcp.WithUserID(ctx, uid)
	}
	return ctx
}
