package http

import (
	"encoding/json"
	"net/http"

	"github.com/belajar-arab/backend/internal/learning"
)

type createQuizResultReq struct {
	StudentID      string         `json:"studentId"`
	ChapterID      int            `json:"chapterId"`
	Section        string         `json:"section"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	Percentage     float64        `json:"percentage"`
	Answers        map[string]any `json:"answers"`
}

func CreateQuizResultHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createQuizResultReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.StudentID == "" {
			respondError(w, http.StatusBadRequest, "studentId is required")
			return
		}

		res, err := d.Store.CreateQuizResult(r.Context(), learning.NewQuizResult{
			StudentID:      req.StudentID,
			ChapterID:      req.ChapterID,
			Section:        req.Section,
			Score:          req.Score,
			TotalQuestions: req.TotalQuestions,
			Percentage:     req.Percentage,
			Answers:        req.Answers,
		})
		if err != nil {
			respondDBError(w, d.Mode, d.DBName, err)
			return
		}
		respondJSON(w, http.StatusCreated, res)
	}
}

func ListQuizResultsHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := d.Store.ListQuizResults(r.Context())
		if err != nil {
			respondDBError(w, d.Mode, d.DBName, err)
			return
		}
		respondJSON(w, http.StatusOK, results)
	}
}
