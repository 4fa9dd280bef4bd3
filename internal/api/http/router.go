// Package http wires the data-resource routes. The serverless original
// dispatched on path segments by hand; here the same table is declared
// route by route on a chi router.
package http

import (
	"errors"
	"net/http"

	"github.com/belajar-arab/backend/internal/config"
	"github.com/belajar-arab/backend/internal/learning"

	"github.com/go-chi/chi/v5"
)

type Deps struct {
	Store  learning.Store
	Mode   config.Mode
	DBName string // reported in database-error bodies, e.g. "PostgreSQL"

	// WriteGuard, when set, wraps the mutating routes (bearer-token
	// check behind REQUIRE_AUTH). Reads stay open either way.
	WriteGuard func(http.Handler) http.Handler
}

// Mount attaches the resource routes. Callers mount this under the
// /api/database prefix.
func Mount(r chi.Router, d Deps) {
	w := r
	if d.WriteGuard != nil {
		w = r.With(d.WriteGuard)
	}

	r.Get("/", SnapshotHandler(d))
	r.Get("/data", SnapshotHandler(d))

	r.Get("/students", ListStudentsHandler(d))
	w.Post("/students", CreateStudentHandler(d))

	r.Get("/contents", ListContentsHandler(d))
	w.Post("/contents", CreateContentHandler(d))
	w.Delete("/contents/{contentID}", DeleteContentHandler(d))

	r.Get("/quiz-results", ListQuizResultsHandler(d))
	w.Post("/quiz-results", CreateQuizResultHandler(d))

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(notFoundHandler)
}

// MountUnavailable answers every data route with a 500 naming the
// missing configuration instead of letting the process crash. Used
// when required environment variables are absent.
func MountUnavailable(r chi.Router, err error) {
	if err == nil {
		err = errors.New("database not configured")
	}
	h := func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Database not configured",
			"message": err.Error(),
		})
	}
	r.HandleFunc("/", h)
	r.HandleFunc("/*", h)
	r.NotFound(h)
	r.MethodNotAllowed(h)
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusNotFound, map[string]string{
		"error": "Endpoint not found",
		"path":  r.URL.Path,
	})
}
