package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the given status code. It is the single response helper used by the
// handlers: stock listings, created records, and form descriptions all go
// through it, so the "Content-Type: application/json" header is set in one
// place.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error; the number of body bytes written is returned
// otherwise.
//
// Example usage:
//
//	WriteJSON(w, stocks, http.StatusOK)
//	WriteJSON(w, createdStock, http.StatusCreated)
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
