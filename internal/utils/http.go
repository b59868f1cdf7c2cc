package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
//	WriteJSON(w, map[string]string{"error": "Verse not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteJSONError writes a JSON error body of the form {"error": message}
// with the given status code.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, map[string]string{"error": message}, statusCode) //nolint:errcheck
}
