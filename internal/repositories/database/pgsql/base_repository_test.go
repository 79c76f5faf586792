package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorCode(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_charge_accounts_payer_head_year"}

	assert.Equal(t, pgUniqueViolation, pgErrorCode(unique))
	assert.Equal(t, pgCheckViolation, pgErrorCode(fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgCheckViolation})))
	assert.Empty(t, pgErrorCode(errors.New("connection reset")))
	assert.Empty(t, pgErrorCode(nil))
}
