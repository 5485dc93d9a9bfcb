package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mergington/school-api/internal/model"
	"mergington/school-api/internal/store"
)

type createAnnouncementRequest struct {
	Message   string  `json:"message"`
	StartDate *string `json:"start_date"`
	EndDate   string  `json:"end_date"`
}

func (s *Server) handleActiveAnnouncements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ActiveAnnouncements())
}

func (s *Server) handleAllAnnouncements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.AllAnnouncements())
}

func (s *Server) handleCreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req createAnnouncementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	teacher := teacherFromContext(r.Context())
	created, err := s.store.CreateAnnouncement(req.Message, req.StartDate, req.EndDate, teacher.Username)
	if err != nil {
		writeAnnouncementError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (s *Server) handleUpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var upd model.AnnouncementUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.store.UpdateAnnouncement(chi.URLParam(r, "announcementID"), upd)
	if err != nil {
		writeAnnouncementError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteAnnouncement(chi.URLParam(r, "announcementID")); err != nil {
		writeAnnouncementError(w, err)
		return
	}
	writeMessage(w, "Announcement deleted successfully")
}

func writeAnnouncementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrAnnouncementNotFound):
		writeError(w, http.StatusNotFound, "Announcement not found")
	case errors.Is(err, store.ErrEndDateRequired):
		writeError(w, http.StatusBadRequest, "Expiration date is required")
	case errors.Is(err, store.ErrEndDatePast):
		writeError(w, http.StatusBadRequest, "Expiration date must be in the future")
	case errors.Is(err, store.ErrDateOrder):
		writeError(w, http.StatusBadRequest, "Start date must be before expiration date")
	case errors.Is(err, store.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	default:
		writeError(w, http.StatusInternalServerError, "server error")
	}
}
