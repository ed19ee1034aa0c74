package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rohanvs/tasklink/internal/apperr"
	"github.com/rohanvs/tasklink/internal/models"
)

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError renders any failure as {"message": ...} with the status the
// error carries. Unknown errors collapse to a generic 500.
func respondError(w http.ResponseWriter, err error) {
	appErr := apperr.From(err)
	respondJSON(w, appErr.Status, models.ErrorResponse{Message: appErr.Message})
}
