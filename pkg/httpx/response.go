package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON shape of every error the console writes. It mirrors
// the backend's `{"message": ...}` envelope so a UI handles both alike.
// RequestID, when set, matches the X-Request-ID header and the server logs.
type ErrorBody struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes msg as an ErrorBody with the given status code.
func WriteError(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, ErrorBody{Message: msg})
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
