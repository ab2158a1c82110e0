package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConstraintErrors(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "task_completions_account_id_fkey"}
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"}

	assert.Equal(t, "task_completions_account_id_fkey", ForeignKeyViolation(fk))
	assert.Equal(t, "task_completions_account_id_fkey", ForeignKeyViolation(fmt.Errorf("insert: %w", fk)))
	assert.Empty(t, ForeignKeyViolation(unique))
	assert.Empty(t, ForeignKeyViolation(errors.New("boom")))

	assert.Equal(t, "accounts_email_key", UniqueViolation(unique))
	assert.Empty(t, UniqueViolation(fk))
	assert.Empty(t, UniqueViolation(nil))
}
