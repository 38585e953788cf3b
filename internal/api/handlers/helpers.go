package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/eargollo/plotify/internal/db"
)

// ErrorBody is the standard error envelope.
type ErrorBody struct {
	Error APIError `json:"error"`
}

// APIError holds a machine-readable code and a human message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serialises v as JSON with status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("writeJSON encode", "error", err)
	}
}

// writeError writes a standard error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorBody{
		Error: APIError{Code: code, Message: message},
	})
}

// store returns the request's read-only store handle, opening it on first
// use. On failure it writes a 500 response and returns nil.
func store(w http.ResponseWriter, r *http.Request) *sql.DB {
	h, err := openStore(r)
	if err != nil {
		slog.Error("store: open", "error", err)
		writeError(w, http.StatusInternalServerError, "STORE_ERROR", "Store unavailable")
		return nil
	}
	return h
}

func openStore(r *http.Request) (*sql.DB, error) {
	s, err := db.FromContext(r.Context())
	if err != nil {
		return nil, err
	}
	return s.DB()
}
