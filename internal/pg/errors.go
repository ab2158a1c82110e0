package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// CompletionTaskFK is the task reference on task_completions.
const CompletionTaskFK = "task_completions_task_id_fkey"

// ForeignKeyViolation returns the violated constraint name, or "" if err is not a foreign key violation.
func ForeignKeyViolation(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return pgErr.ConstraintName
	}
	return ""
}

// UniqueViolation returns the violated constraint name, or "" if err is not a unique violation.
func UniqueViolation(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return pgErr.ConstraintName
	}
	return ""
}
