package rest

import (
	"encoding/json"
	"net/http"

	"github.com/rohithmohanan1/Notes/internal/server/models"
)

func (s *Server) listFolders(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(r, "userId")
	if !ok || userID == nil {
		badRequest(w, "User ID is required")
		return
	}

	folders, err := s.folders.List(r.Context(), *userID)
	if err != nil {
		writeError(w, err, "Failed to get folders")
		return
	}
	writeJSON(w, http.StatusOK, folders)
}

func (s *Server) getFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		badRequest(w, "Invalid folder ID")
		return
	}

	folder, err := s.folders.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get folder")
		return
	}
	writeJSON(w, http.StatusOK, folder)
}

func (s *Server) createFolder(w http.ResponseWriter, r *http.Request) {
	var payload models.NewFolder
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	folder, err := s.folders.Create(r.Context(), &payload)
	if err != nil {
		writeError(w, err, "Failed to create folder")
		return
	}
	writeJSON(w, http.StatusCreated, folder)
}

func (s *Server) updateFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		badRequest(w, "Invalid folder ID")
		return
	}

	var patch models.FolderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	folder, err := s.folders.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err, "Failed to update folder")
		return
	}
	writeJSON(w, http.StatusOK, folder)
}

func (s *Server) deleteFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		badRequest(w, "Invalid folder ID")
		return
	}

	if err := s.folders.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete folder")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
