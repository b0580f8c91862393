package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/meltforce/fitcoach/internal/checkout"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/program"
	"github.com/meltforce/fitcoach/internal/store"
	"github.com/meltforce/fitcoach/internal/workout"
	"go.uber.org/multierr"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	p, err := s.users.GetProfile(r.Context(), uid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var p models.Profile
	if !decodeJSON(w, r, &p) {
		return
	}
	p.UserID = uid
	p.PainAreas = normalizeAreas(p.PainAreas)
	if err := validateProfile(p); err != nil {
		writeValidation(w, err)
		return
	}
	if err := s.users.SaveProfile(r.Context(), &p); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleGetOverrides(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	o, err := s.users.GetOverrides(r.Context(), uid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handlePutOverrides(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var o models.BetaOverrides
	if !decodeJSON(w, r, &o) {
		return
	}
	if o.PainAreas != nil {
		o.PainAreas = normalizeAreas(o.PainAreas)
	}
	if err := validateOverrides(o); err != nil {
		writeValidation(w, err)
		return
	}
	if err := s.users.SaveOverrides(r.Context(), uid, o); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleDeleteOverrides(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	if err := s.users.DeleteOverrides(r.Context(), uid); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	if s.checkout == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "checkout not configured"})
		return
	}
	var body struct {
		Tier  string `json:"tier"`
		Email string `json:"email"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	email := body.Email
	if email == "" {
		if u, err := s.users.GetUser(r.Context(), uid); err == nil {
			email = u.Email
		} else {
			s.log.Warn("checkout: loading user", "user_id", uid, "error", err)
		}
	}

	link, err := s.checkout.URL(body.Tier, uid, email)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	// The email is stored only once the tier is known to be valid.
	if body.Email != "" {
		if err := s.users.SetUserEmail(r.Context(), uid, body.Email); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": link})
}

// writeError maps domain errors to HTTP statuses. Anything unrecognized is
// logged and reported as 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var blocked *program.BlockedError
	switch {
	case errors.As(err, &blocked):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "program generation blocked",
			"errors": blocked.Messages,
		})
	case errors.Is(err, program.ErrMissingProfile):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error":    err.Error(),
			"redirect": onboardingPath,
		})
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, workout.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, workout.ErrInvalidEvent), errors.Is(err, checkout.ErrUnknownTier):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// writeValidation reports every violation aggregated in err.
func writeValidation(w http.ResponseWriter, err error) {
	errs := multierr.Errors(err)
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "invalid request",
		"errors": msgs,
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseTimeRange reads start/end query parameters as RFC 3339 or YYYY-MM-DD.
// A missing start defaults to window before end; a date-only end covers that
// whole day.
func parseTimeRange(r *http.Request, window time.Duration) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	end = time.Now()
	if endStr != "" {
		var dateOnly bool
		end, dateOnly, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end: %w", err)
		}
		if dateOnly {
			end = end.Add(24 * time.Hour)
		}
	}

	if startStr == "" {
		return end.Add(-window), end, nil
	}
	start, _, err = parseFlexTime(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start: %w", err)
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, errors.New("start must be before end")
	}
	return start, end, nil
}

func parseFlexTime(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
