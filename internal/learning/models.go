package learning

// Student is a pupil of the single teacher account. IDs are chosen by
// the client (short codes handed out in class), names must be unique.
type Student struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// Chapter rows are read-only reference data; contents join against
// them for the bilingual titles.
type Chapter struct {
	ID              int    `json:"id"`
	TitleArabic     string `json:"title_arabic"`
	TitleIndonesian string `json:"title_indonesian"`
}

// Content is one lesson material, optionally attached to a chapter and
// carrying zero or more uploaded files as parallel arrays. The joined
// chapter titles are null when the chapter reference is absent.
type Content struct {
	ID           string   `json:"id"`
	ChapterID    *int     `json:"chapter_id"`
	Section      string   `json:"section"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	FileNames    []string `json:"file_names"`
	FileTypes    []string `json:"file_types"`
	FileSizes    []int64  `json:"file_sizes"`
	FileContents []string `json:"file_contents"`
	FileDatas    []string `json:"file_datas"`
	FileCount    int      `json:"file_count"`
	CreatedAt    int64    `json:"created_at"`

	TitleArabic     *string `json:"title_arabic"`
	TitleIndonesian *string `json:"title_indonesian"`
}

// QuizResult records one quiz completion. Answers round-trip through
// JSON text in the database.
type QuizResult struct {
	ID             string         `json:"id"`
	StudentID      string         `json:"student_id"`
	ChapterID      int            `json:"chapter_id"`
	Section        string         `json:"section"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"total_questions"`
	Percentage     float64        `json:"percentage"`
	Answers        map[string]any `json:"answers"`
	CompletedAt    int64          `json:"completed_at"`
}

// Snapshot is the combined payload served by the all-data route. The
// three lists come from independent concurrent queries; no cross-table
// point-in-time consistency is promised.
type Snapshot struct {
	Students    []Student    `json:"students"`
	Contents    []Content    `json:"contents"`
	QuizResults []QuizResult `json:"quizResults"`
}
