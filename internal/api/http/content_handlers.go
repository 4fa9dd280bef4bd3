package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/belajar-arab/backend/internal/learning"

	"github.com/go-chi/chi/v5"
)

func ListContentsHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f learning.ContentFilter
		if v := strings.TrimSpace(r.URL.Query().Get("chapter")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				respondError(w, http.StatusBadRequest, "chapter must be an integer")
				return
			}
			f.ChapterID = &n
		}
		f.Section = strings.TrimSpace(r.URL.Query().Get("section"))

		contents, err := d.Store.ListContents(r.Context(), f)
		if err != nil {
			respondDBError(w, d.Mode, d.DBName, err)
			return
		}
		respondJSON(w, http.StatusOK, contents)
	}
}

// createContentReq mirrors the frontend payload, camelCase fields and
// parallel file arrays included.
type createContentReq struct {
	Chapter      *int     `json:"chapter"`
	Section      string   `json:"section"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	FileNames    []string `json:"fileNames"`
	FileTypes    []string `json:"fileTypes"`
	FileSizes    []int64  `json:"fileSizes"`
	FileContents []string `json:"fileContents"`
	FileDatas    []string `json:"fileDatas"`
	FileCount    int      `json:"fileCount"`
}

func CreateContentHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createContentReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Section == "" || req.Title == "" {
			respondError(w, http.StatusBadRequest, "section and title are required")
			return
		}

		c, err := d.Store.CreateContent(r.Context(), learning.NewContent{
			ChapterID:    req.Chapter,
			Section:      req.Section,
			Title:        req.Title,
			Description:  req.Description,
			FileNames:    req.FileNames,
			FileTypes:    req.FileTypes,
			FileSizes:    req.FileSizes,
			FileContents: req.FileContents,
			FileDatas:    req.FileDatas,
			FileCount:    req.FileCount,
		})
		if err != nil {
			if errors.Is(err, learning.ErrFileArrayMismatch) {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			respondDBError(w, d.Mode, d.DBName, err)
			return
		}
		respondJSON(w, http.StatusCreated, c)
	}
}

func DeleteContentHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "contentID")
		if err := d.Store.DeleteContent(r.Context(), id); err != nil {
			if errors.Is(err, learning.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Content not found")
				return
			}
			respondDBError(w, d.Mode, d.DBName, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
	}
}
