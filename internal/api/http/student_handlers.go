package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/belajar-arab/backend/internal/learning"
)

func ListStudentsHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		students, err := d.Store.ListStudents(r.Context())
		if err != nil {
			respondDBError(w, d.Mode, d.DBName, err)
			return
		}
		respondJSON(w, http.StatusOK, students)
	}
}

func CreateStudentHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		req.ID = strings.TrimSpace(req.ID)
		req.Name = strings.TrimSpace(req.Name)
		if req.ID == "" || req.Name == "" {
			respondError(w, http.StatusBadRequest, "id and name are required")
			return
		}

		st, err := d.Store.CreateStudent(r.Context(), req.ID, req.Name)
		if err != nil {
			if errors.Is(err, learning.ErrDuplicate) {
				respondError(w, http.StatusConflict, "Student already exists")
				return
			}
			respondDBError(w, d.Mode, d.DBName, err)
			return
		}
		respondJSON(w, http.StatusCreated, st)
	}
}
