package learning

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("pg unique_violation not recognized")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("pg foreign-key violation misclassified as unique")
	}
	if !isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: students.name (2067)")) {
		t.Fatalf("sqlite unique violation not recognized")
	}
	if isUniqueViolation(errors.New("connection refused")) {
		t.Fatalf("unrelated error misclassified as unique violation")
	}
}
