package rest

import (
	"encoding/json"
	"net/http"

	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// listTags returns either the owner's tags (?userId=) or the tags of one
// note (?noteId=). At least one of the two is required.
func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	userID, okUser := queryID(r, "userId")
	noteID, okNote := queryID(r, "noteId")
	if !okUser || !okNote {
		badRequest(w, "Invalid data")
		return
	}
	if userID == nil && noteID == nil {
		badRequest(w, "Either User ID or Note ID is required")
		return
	}

	var owner int64
	if userID != nil {
		owner = *userID
	}

	tags, err := s.tags.List(r.Context(), owner, noteID)
	if err != nil {
		writeError(w, err, "Failed to get tags")
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

func (s *Server) getTag(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		badRequest(w, "Invalid tag ID")
		return
	}

	tag, err := s.tags.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get tag")
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

func (s *Server) createTag(w http.ResponseWriter, r *http.Request) {
	var payload models.NewTag
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	tag, err := s.tags.Create(r.Context(), &payload)
	if err != nil {
		writeError(w, err, "Failed to create tag")
		return
	}
	writeJSON(w, http.StatusCreated, tag)
}

func (s *Server) updateTag(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		badRequest(w, "Invalid tag ID")
		return
	}

	var patch models.TagPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	tag, err := s.tags.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err, "Failed to update tag")
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

func (s *Server) deleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		badRequest(w, "Invalid tag ID")
		return
	}

	if err := s.tags.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete tag")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
