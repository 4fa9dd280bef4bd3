package http

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/belajar-arab/backend/internal/config"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondDBError maps a store failure to the 500 body the frontend
// expects. The trace field is attached only outside production.
func respondDBError(w http.ResponseWriter, mode config.Mode, dbName string, err error) {
	log.Printf("database error: %v", err)
	body := map[string]any{
		"error":    "Database error",
		"message":  err.Error(),
		"database": dbName,
	}
	if mode != config.ModeProduction {
		body["trace"] = string(debug.Stack())
	}
	respondJSON(w, http.StatusInternalServerError, body)
}
