package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB, verifies connectivity and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:belajararab.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			return nil, fmt.Errorf("postgres driver requires a DSN (set DATABASE_URL)")
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS students (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS chapters (
  id INTEGER PRIMARY KEY,
  title_arabic TEXT NOT NULL,
  title_indonesian TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contents (
  id TEXT PRIMARY KEY,
  chapter_id INTEGER REFERENCES chapters(id),
  section TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  file_names TEXT NOT NULL DEFAULT '[]',
  file_types TEXT NOT NULL DEFAULT '[]',
  file_sizes TEXT NOT NULL DEFAULT '[]',
  file_contents TEXT NOT NULL DEFAULT '[]',
  file_datas TEXT NOT NULL DEFAULT '[]',
  file_count INTEGER NOT NULL DEFAULT 0,
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_results (
  id TEXT PRIMARY KEY,
  student_id TEXT NOT NULL,
  chapter_id INTEGER NOT NULL,
  section TEXT NOT NULL,
  score INTEGER NOT NULL,
  total_questions INTEGER NOT NULL,
  percentage REAL NOT NULL,
  answers TEXT NOT NULL DEFAULT '{}',
  completed_at INTEGER NOT NULL
);

INSERT OR IGNORE INTO chapters (id, title_arabic, title_indonesian) VALUES
  (1, 'التعارف', 'Perkenalan'),
  (2, 'الأسرة', 'Keluarga'),
  (3, 'المدرسة', 'Sekolah');
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS students (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS chapters (
  id INTEGER PRIMARY KEY,
  title_arabic TEXT NOT NULL,
  title_indonesian TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contents (
  id TEXT PRIMARY KEY,
  chapter_id INTEGER REFERENCES chapters(id),
  section TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  file_names TEXT NOT NULL DEFAULT '[]',
  file_types TEXT NOT NULL DEFAULT '[]',
  file_sizes TEXT NOT NULL DEFAULT '[]',
  file_contents TEXT NOT NULL DEFAULT '[]',
  file_datas TEXT NOT NULL DEFAULT '[]',
  file_count INTEGER NOT NULL DEFAULT 0,
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS quiz_results (
  id TEXT PRIMARY KEY,
  student_id TEXT NOT NULL,
  chapter_id INTEGER NOT NULL,
  section TEXT NOT NULL,
  score INTEGER NOT NULL,
  total_questions INTEGER NOT NULL,
  percentage DOUBLE PRECISION NOT NULL,
  answers TEXT NOT NULL DEFAULT '{}',
  completed_at BIGINT NOT NULL
);
`
