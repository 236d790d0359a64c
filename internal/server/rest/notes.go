package rest

import (
	"encoding/json"
	"net/http"

	"github.com/rohithmohanan1/Notes/internal/server/models"
	"github.com/rohithmohanan1/Notes/internal/server/services"
)

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(r, "userId")
	if !ok || userID == nil {
		badRequest(w, "User ID is required")
		return
	}

	folderID, ok := queryID(r, "folderId")
	if !ok {
		badRequest(w, "Invalid folder ID")
		return
	}
	categoryID, ok := queryID(r, "categoryId")
	if !ok {
		badRequest(w, "Invalid category ID")
		return
	}
	tagID, ok := queryID(r, "tagId")
	if !ok {
		badRequest(w, "Invalid tag ID")
		return
	}

	notes, err := s.notes.List(r.Context(), services.NoteFilter{
		UserID:     *userID,
		Query:      r.URL.Query().Get("q"),
		FolderID:   folderID,
		CategoryID: categoryID,
		TagID:      tagID,
	})
	if err != nil {
		writeError(w, err, "Failed to get notes")
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (s *Server) getNote(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		badRequest(w, "Invalid note ID")
		return
	}

	note, err := s.notes.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get note")
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	var payload models.NewNote
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	note, err := s.notes.Create(r.Context(), &payload)
	if err != nil {
		writeError(w, err, "Failed to create note")
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		badRequest(w, "Invalid note ID")
		return
	}

	var patch models.NotePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	note, err := s.notes.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err, "Failed to update note")
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		badRequest(w, "Invalid note ID")
		return
	}

	if err := s.notes.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listNoteTags(w http.ResponseWriter, r *http.Request) {
	noteID, ok := urlID(r, "id")
	if !ok {
		badRequest(w, "Invalid note ID")
		return
	}

	tags, err := s.notes.ListTags(r.Context(), noteID)
	if err != nil {
		writeError(w, err, "Failed to get tags")
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

func (s *Server) addTagToNote(w http.ResponseWriter, r *http.Request) {
	noteID, okNote := urlID(r, "id")
	tagID, okTag := urlID(r, "tagId")
	if !okNote || !okTag {
		badRequest(w, "Invalid data")
		return
	}

	jt, err := s.notes.AddTag(r.Context(), noteID, tagID)
	if err != nil {
		writeError(w, err, "Failed to add tag to note")
		return
	}
	writeJSON(w, http.StatusCreated, jt)
}

func (s *Server) removeTagFromNote(w http.ResponseWriter, r *http.Request) {
	noteID, okNote := urlID(r, "id")
	tagID, okTag := urlID(r, "tagId")
	if !okNote || !okTag {
		badRequest(w, "Invalid data")
		return
	}

	if err := s.notes.RemoveTag(r.Context(), noteID, tagID); err != nil {
		writeError(w, err, "Failed to remove tag from note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) syncAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(r, "userId")
	if !ok || userID == nil {
		badRequest(w, "User ID is required")
		return
	}

	synced, err := s.notes.SyncAll(r.Context(), *userID)
	if err != nil {
		writeError(w, err, "Failed to sync notes")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"synced": synced})
}
