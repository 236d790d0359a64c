package rest

import (
	"encoding/json"
	"net/http"

	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// getCurrentUser resolves the account by uid. The uid comes from the query
// string; a verified bearer token takes precedence when one was sent.
func (s *Server) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	if tokenUID := authUID(r.Context()); tokenUID != "" {
		uid = tokenUID
	}
	if uid == "" {
		badRequest(w, "UID is required")
		return
	}

	user, err := s.users.GetCurrent(r.Context(), uid)
	if err != nil {
		writeError(w, err, "Failed to get user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var payload models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	user, err := s.users.Create(r.Context(), &payload)
	if err != nil {
		writeError(w, err, "Failed to create user")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}
