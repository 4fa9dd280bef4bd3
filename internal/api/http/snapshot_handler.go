package http

import (
	"net/http"
)

// SnapshotHandler serves the combined students + contents +
// quiz-results payload the dashboard loads on startup.
func SnapshotHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := d.Store.Snapshot(r.Context())
		if err != nil {
			respondDBError(w, d.Mode, d.DBName, err)
			return
		}
		respondJSON(w, http.StatusOK, snap)
	}
}
