package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and
// "Content-Type: application/json".
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
//
//	WriteJSON(w, map[string]bool{"ok": true}, http.StatusOK)
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

// WriteBody writes data the way its type suggests: strings as text/plain,
// byte slices as application/octet-stream and everything else as JSON.
func WriteBody(w http.ResponseWriter, data any, statusCode int) (int, error) {
	switch v := data.(type) {
	case string:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(statusCode)
		return w.Write([]byte(v))
	case []byte:
		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(statusCode)
		return w.Write(v)
	case json.RawMessage:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		return w.Write(v)
	default:
		return WriteJSON(w, data, statusCode)
	}
}
