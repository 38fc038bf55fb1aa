package http

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError renders the {"error": ...} shape used for lookup failures.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// JSONMessage renders the {"message": ...} shape used for auth outcomes
// and deletions.
func JSONMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"message": message})
}

func JSONValidationError(w http.ResponseWriter, details []ValidationError) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":   "Invalid input",
		"details": details,
	})
}
