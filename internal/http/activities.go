package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mergington/school-api/internal/store"
)

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	activities := s.store.ListActivities(q.Get("day"), q.Get("start_time"), q.Get("end_time"))
	writeJSON(w, http.StatusOK, activities)
}

func (s *Server) handleAvailableDays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.AvailableDays())
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "activityName")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := s.store.Signup(name, email); err != nil {
		switch {
		case errors.Is(err, store.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, store.ErrAlreadySignedUp):
			writeError(w, http.StatusBadRequest, "Already signed up for this activity")
		default:
			writeError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	writeMessage(w, fmt.Sprintf("Signed up %s for %s", email, name))
}

func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "activityName")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := s.store.Unregister(name, email); err != nil {
		switch {
		case errors.Is(err, store.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, store.ErrNotSignedUp):
			writeError(w, http.StatusBadRequest, "Not registered for this activity")
		default:
			writeError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	writeMessage(w, fmt.Sprintf("Unregistered %s from %s", email, name))
}
