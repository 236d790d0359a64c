package rest

import (
	"encoding/json"
	"net/http"

	"github.com/rohithmohanan1/Notes/internal/server/models"
)

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(r, "userId")
	if !ok || userID == nil {
		badRequest(w, "User ID is required")
		return
	}

	categories, err := s.categories.List(r.Context(), *userID)
	if err != nil {
		writeError(w, err, "Failed to get categories")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		badRequest(w, "Invalid category ID")
		return
	}

	category, err := s.categories.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get category")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var payload models.NewCategory
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	category, err := s.categories.Create(r.Context(), &payload)
	if err != nil {
		writeError(w, err, "Failed to create category")
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		badRequest(w, "Invalid category ID")
		return
	}

	var patch models.CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "Invalid JSON")
		return
	}

	category, err := s.categories.Update(r.Context(), id, &patch)
	if err != nil {
		writeError(w, err, "Failed to update category")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		badRequest(w, "Invalid category ID")
		return
	}

	if err := s.categories.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
