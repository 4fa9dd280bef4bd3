package learning

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/sync/errgroup"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) ListStudents(ctx context.Context) ([]Student, error) {
	return s.queryStudents(ctx, `SELECT id,name,created_at FROM students ORDER BY name`)
}

func (s *SQLStore) studentsByNewest(ctx context.Context) ([]Student, error) {
	return s.queryStudents(ctx, `SELECT id,name,created_at FROM students ORDER BY created_at DESC`)
}

func (s *SQLStore) queryStudents(ctx context.Context, q string) ([]Student, error) {
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Student{}
	for rows.Next() {
		var st Student
		if err := rows.Scan(&st.ID, &st.Name, &st.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *SQLStore) CreateStudent(ctx context.Context, id, name string) (Student, error) {
	var exist int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM students WHERE id=$1 OR name=$2`, id, name).Scan(&exist)
	if err == nil {
		return Student{}, ErrDuplicate
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Student{}, err
	}
	now := time.Now().Unix()
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO students (id,name,created_at) VALUES ($1,$2,$3)`, id, name, now); err != nil {
		// Backstop for the pre-check race: two concurrent creates can
		// both pass the SELECT, but the primary key and the UNIQUE
		// name constraint stop the second insert.
		if isUniqueViolation(err) {
			return Student{}, ErrDuplicate
		}
		return Student{}, err
	}
	return Student{ID: id, Name: name, CreatedAt: now}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	// modernc sqlite reports constraint failures by message
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

const contentSelect = `
SELECT c.id, c.chapter_id, c.section, c.title, c.description,
       c.file_names, c.file_types, c.file_sizes, c.file_contents, c.file_datas,
       c.file_count, c.created_at, ch.title_arabic, ch.title_indonesian
FROM contents c
LEFT JOIN chapters ch ON c.chapter_id = ch.id`

func (s *SQLStore) ListContents(ctx context.Context, f ContentFilter) ([]Content, error) {
	q := contentSelect + ` WHERE 1=1`
	args := []any{}
	if f.ChapterID != nil {
		args = append(args, *f.ChapterID)
		q += fmt.Sprintf(" AND c.chapter_id = $%d", len(args))
	}
	if f.Section != "" {
		args = append(args, f.Section)
		q += fmt.Sprintf(" AND c.section = $%d", len(args))
	}
	q += ` ORDER BY c.created_at DESC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Content{}
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(r rowScanner) (Content, error) {
	var c Content
	var names, types, sizes, contents, datas string
	err := r.Scan(&c.ID, &c.ChapterID, &c.Section, &c.Title, &c.Description,
		&names, &types, &sizes, &contents, &datas,
		&c.FileCount, &c.CreatedAt, &c.TitleArabic, &c.TitleIndonesian)
	if err != nil {
		return Content{}, err
	}
	for _, pair := range []struct {
		src string
		dst any
	}{
		{names, &c.FileNames},
		{types, &c.FileTypes},
		{sizes, &c.FileSizes},
		{contents, &c.FileContents},
		{datas, &c.FileDatas},
	} {
		if err := json.Unmarshal([]byte(pair.src), pair.dst); err != nil {
			return Content{}, err
		}
	}
	return c, nil
}

func (s *SQLStore) CreateContent(ctx context.Context, in NewContent) (Content, error) {
	n := in.FileCount
	if len(in.FileNames) != n || len(in.FileTypes) != n ||
		len(in.FileSizes) != n || len(in.FileContents) != n || len(in.FileDatas) != n {
		return Content{}, ErrFileArrayMismatch
	}

	id := uuid.NewString()
	names, _ := json.Marshal(emptyIfNilStr(in.FileNames))
	types, _ := json.Marshal(emptyIfNilStr(in.FileTypes))
	sizes, _ := json.Marshal(emptyIfNilInt(in.FileSizes))
	contents, _ := json.Marshal(emptyIfNilStr(in.FileContents))
	datas, _ := json.Marshal(emptyIfNilStr(in.FileDatas))

	_, err := s.db.ExecContext(ctx, `
INSERT INTO contents (id, chapter_id, section, title, description,
  file_names, file_types, file_sizes, file_contents, file_datas, file_count, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		id, in.ChapterID, in.Section, in.Title, in.Description,
		string(names), string(types), string(sizes), string(contents), string(datas),
		in.FileCount, time.Now().Unix())
	if err != nil {
		return Content{}, err
	}

	row := s.db.QueryRowContext(ctx, contentSelect+` WHERE c.id=$1`, id)
	return scanContent(row)
}

func (s *SQLStore) DeleteContent(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contents WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) CreateQuizResult(ctx context.Context, in NewQuizResult) (QuizResult, error) {
	answers := in.Answers
	if answers == nil {
		answers = map[string]any{}
	}
	aj, err := json.Marshal(answers)
	if err != nil {
		return QuizResult{}, err
	}
	r := QuizResult{
		ID:             uuid.NewString(),
		StudentID:      in.StudentID,
		ChapterID:      in.ChapterID,
		Section:        in.Section,
		Score:          in.Score,
		TotalQuestions: in.TotalQuestions,
		Percentage:     in.Percentage,
		Answers:        answers,
		CompletedAt:    time.Now().Unix(),
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO quiz_results (id, student_id, chapter_id, section, score, total_questions, percentage, answers, completed_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		r.ID, r.StudentID, r.ChapterID, r.Section, r.Score, r.TotalQuestions, r.Percentage, string(aj), r.CompletedAt)
	if err != nil {
		return QuizResult{}, err
	}
	return r, nil
}

func (s *SQLStore) ListQuizResults(ctx context.Context) ([]QuizResult, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, student_id, chapter_id, section, score, total_questions, percentage, answers, completed_at
FROM quiz_results ORDER BY completed_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []QuizResult{}
	for rows.Next() {
		var r QuizResult
		var aj string
		if err := rows.Scan(&r.ID, &r.StudentID, &r.ChapterID, &r.Section,
			&r.Score, &r.TotalQuestions, &r.Percentage, &aj, &r.CompletedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(aj), &r.Answers); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func emptyIfNilStr(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyIfNilInt(s []int64) []int64 {
	if s == nil {
		return []int64{}
	}
	return s
}

// Snapshot runs the three list queries concurrently. Each query sees
// its own point in time; the combined payload is not transactional.
func (s *SQLStore) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.studentsByNewest(gctx)
		snap.Students = st
		return err
	})
	g.Go(func() error {
		cs, err := s.ListContents(gctx, ContentFilter{})
		snap.Contents = cs
		return err
	})
	g.Go(func() error {
		qs, err := s.ListQuizResults(gctx)
		snap.QuizResults = qs
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
