package http

import (
	"net/http"

	"mergington/school-api/internal/model"
)

type teacherProfile struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func profileOf(t model.Teacher) teacherProfile {
	return teacherProfile{
		Username:    t.Username,
		DisplayName: t.Display(),
		Role:        t.EffectiveRole(),
	}
}

// Credentials arrive as query parameters, matching the surface the web
// client already speaks.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	username, password := q.Get("username"), q.Get("password")
	if username == "" || password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	teacher, err := s.auth.Login(username, password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	writeJSON(w, http.StatusOK, profileOf(teacher))
}

// handleCheckSession only proves the username exists; no secret is checked.
// See the auth package note before "strengthening" this.
func (s *Server) handleCheckSession(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}

	teacher, err := s.auth.Authenticate(username)
	if err != nil {
		writeError(w, http.StatusNotFound, "Teacher not found")
		return
	}
	writeJSON(w, http.StatusOK, profileOf(teacher))
}
