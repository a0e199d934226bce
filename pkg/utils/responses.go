package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error body: a single human-readable string,
// no structured error codes.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictResponse is the 409 body for a taken slot.
type ConflictResponse struct {
	Error     string `json:"error"`
	Available bool   `json:"available"`
}

// ResponseJSON writes v as JSON with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// ResponseError writes {"error": message} with the given status code.
func ResponseError(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, ErrorResponse{Error: message})
}

// ResponseConflict writes a 409 with available:false for slot conflicts.
func ResponseConflict(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusConflict, ConflictResponse{Error: message, Available: false})
}
