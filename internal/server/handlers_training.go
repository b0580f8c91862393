package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/program"
	"github.com/meltforce/fitcoach/internal/recovery"
	"github.com/meltforce/fitcoach/internal/strength"
	"github.com/meltforce/fitcoach/internal/workout"
)

// Default query windows.
const (
	logWindow      = 30 * 24 * time.Hour
	progressWindow = 180 * 24 * time.Hour
)

type assessResponse struct {
	Result   models.AdjustmentResult `json:"result"`
	Messages []string                `json:"messages"`
	// Day is today's session day with the adjustment applied, when a
	// session is in progress.
	Day *models.ProgramDay `json:"day,omitempty"`
}

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var a models.RecoveryAssessment
	if !decodeJSON(w, r, &a) {
		return
	}
	a = recovery.Normalize(a)
	if err := recovery.Validate(a); err != nil {
		writeValidation(w, err)
		return
	}

	res := recovery.Score(a)
	if s.metrics != nil {
		s.metrics.CounterAssessments.WithLabelValues(string(res.ExerciseMode), recovery.Level(res)).Inc()
	}

	rec := &models.RecoveryRecord{ID: uuid.New(), UserID: uid, Assessment: a, Result: res, CreatedAt: time.Now()}
	if err := s.logs.SaveRecoveryRecord(r.Context(), rec); err != nil {
		s.log.Warn("recovery audit failed", "user_id", uid, "error", err)
	}

	resp := assessResponse{Result: res, Messages: recovery.Messages(res)}
	if st, err := s.workouts.Status(r.Context(), uid); err == nil && st.Day != nil {
		day := recovery.AdjustDay(*st.Day, res)
		resp.Day = &day
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	programs, err := s.programs.ListPrograms(r.Context(), uid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if programs == nil {
		programs = []models.TrainingProgram{}
	}
	writeJSON(w, http.StatusOK, programs)
}

func (s *Server) handleActiveProgram(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	p, err := s.programs.GetActiveProgram(r.Context(), uid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	p, err := s.generator.Generate(r.Context(), uid)
	s.countGeneration(err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) countGeneration(err error) {
	if s.metrics == nil {
		return
	}
	var blocked *program.BlockedError
	outcome := "generated"
	switch {
	case errors.As(err, &blocked):
		outcome = "blocked"
	case errors.Is(err, program.ErrMissingProfile):
		outcome = "missing_profile"
	case err != nil:
		outcome = "error"
	}
	s.metrics.CounterPrograms.WithLabelValues(outcome).Inc()
}

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	start, end, err := parseTimeRange(r, logWindow)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	logs, err := s.logs.ListWorkoutLogs(r.Context(), uid, start, end)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if logs == nil {
		logs = []models.WorkoutLog{}
	}
	writeJSON(w, http.StatusOK, logs)
}

func (s *Server) handleLogWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var l models.WorkoutLog
	if !decodeJSON(w, r, &l) {
		return
	}
	if err := validateWorkoutLog(l); err != nil {
		writeValidation(w, err)
		return
	}
	l.UserID = uid
	if l.Exercises == nil {
		l.Exercises = []models.ExerciseLog{}
	}
	if err := s.workouts.LogWorkout(r.Context(), &l); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

// maxImportBytes bounds uploaded workout exports.
const maxImportBytes = 16 << 20

// handleAlphaImport stores an Alpha Progression CSV export sent as the raw
// request body.
func (s *Server) handleAlphaImport(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	res, err := s.alpha.Import(r.Context(), http.MaxBytesReader(w, r.Body, maxImportBytes), uid)
	if err != nil {
		s.log.Warn("alpha import failed", "user_id", uid, "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type progressResponse struct {
	Exercise string                   `json:"exercise,omitempty"`
	Points   []strength.ProgressPoint `json:"points,omitempty"`
	Best     map[string]float64       `json:"best,omitempty"`
	Names    []string                 `json:"exercises"`
}

// handleE1RMProgress returns the e1RM series of one exercise, or the best
// estimate of every exercise when none is named.
func (s *Server) handleE1RMProgress(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	start, end, err := parseTimeRange(r, progressWindow)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	logs, err := s.logs.ListWorkoutLogs(r.Context(), uid, start, end)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := progressResponse{Names: strength.ExerciseNames(logs)}
	if ex := r.URL.Query().Get("exercise"); ex != "" {
		resp.Exercise = ex
		resp.Points = strength.Progression(logs, ex)
		if resp.Points == nil {
			resp.Points = []strength.ProgressPoint{}
		}
	} else {
		resp.Best = strength.BestEstimates(logs)
	}
	if resp.Names == nil {
		resp.Names = []string{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPain(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	start, end, err := parseTimeRange(r, logWindow)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	pains, err := s.logs.ListPainLogs(r.Context(), uid, start, end)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if pains == nil {
		pains = []models.PainLog{}
	}
	writeJSON(w, http.StatusOK, pains)
}

func (s *Server) handleLogPain(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var p models.PainLog
	if !decodeJSON(w, r, &p) {
		return
	}
	p.BodyArea, _ = models.NormalizeBodyArea(string(p.BodyArea))
	if err := validatePainLog(p); err != nil {
		writeValidation(w, err)
		return
	}
	p.UserID = uid
	if p.LoggedAt.IsZero() {
		p.LoggedAt = time.Now()
	}
	if err := s.logs.SavePainLog(r.Context(), &p); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	st, err := s.workouts.Status(r.Context(), uid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleSessionEvent(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var e workout.Event
	if !decodeJSON(w, r, &e) {
		return
	}
	sess, err := s.workouts.Apply(r.Context(), uid, e)
	if s.metrics != nil {
		s.metrics.SessionEvent(string(e.Type), err == nil)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleSessionResolve(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var body struct {
		Resolution workout.Resolution `json:"resolution"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	sess, err := s.workouts.Resolve(r.Context(), uid, body.Resolution)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}
