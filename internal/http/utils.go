package http

import (
	"encoding/json"
	"net/http"
)

// WriteJSONError writes {"error": message} with the given status code.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// writeJSON serializes v as the JSON response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeEnvelope wraps v under key, producing bodies like {"form": {...}}.
func writeEnvelope(w http.ResponseWriter, status int, key string, v interface{}) {
	writeJSON(w, status, map[string]interface{}{
		key: v,
	})
}

// writeSuccess acknowledges a mutation with {"success": true}.
func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"success": true,
	})
}
