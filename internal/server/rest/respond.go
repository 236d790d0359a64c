package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rohithmohanan1/Notes/internal/common"
)

type errorBody struct {
	Message string              `json:"message"`
	Errors  []common.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the service error taxonomy onto HTTP statuses. Validation
// problems and uniqueness conflicts are client errors; a missing entity is
// 404; anything else is a 500 with a generic message.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{
			Message: "Invalid data",
			Errors:  verr.Fields,
		})
	case errors.Is(err, common.ErrorConflict):
		writeJSON(w, http.StatusBadRequest, errorBody{Message: err.Error()})
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Message: "Not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: fallback})
	}
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Message: message})
}
