package learning

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a targeted row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a student id or name already exists.
	ErrDuplicate = errors.New("duplicate student")
	// ErrFileArrayMismatch is returned when the parallel file arrays on
	// a new content disagree with each other or with file_count.
	ErrFileArrayMismatch = errors.New("file attribute arrays must all match file_count")
)

// ContentFilter narrows ListContents. Unset fields are omitted from
// the query; set fields are AND-combined.
type ContentFilter struct {
	ChapterID *int
	Section   string
}

type NewContent struct {
	ChapterID    *int
	Section      string
	Title        string
	Description  string
	FileNames    []string
	FileTypes    []string
	FileSizes    []int64
	FileContents []string
	FileDatas    []string
	FileCount    int
}

type NewQuizResult struct {
	StudentID      string
	ChapterID      int
	Section        string
	Score          int
	TotalQuestions int
	Percentage     float64
	Answers        map[string]any
}

type Store interface {
	ListStudents(ctx context.Context) ([]Student, error)
	CreateStudent(ctx context.Context, id, name string) (Student, error)

	ListContents(ctx context.Context, f ContentFilter) ([]Content, error)
	CreateContent(ctx context.Context, in NewContent) (Content, error)
	DeleteContent(ctx context.Context, id string) error

	CreateQuizResult(ctx context.Context, in NewQuizResult) (QuizResult, error)
	ListQuizResults(ctx context.Context) ([]QuizResult, error)

	Snapshot(ctx context.Context) (Snapshot, error)
}
