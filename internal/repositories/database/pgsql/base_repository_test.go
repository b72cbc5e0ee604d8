package pgsql

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/backoffice_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unique", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "accounts_code_key"}, apperrors.ErrDuplicate},
		{"foreign key", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrValidation},
		{"check", &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "journal_lines_one_side"}, apperrors.ErrValidation},
		{"serialization", &pgconn.PgError{Code: pgSerializationFailure}, apperrors.ErrTransient},
		{"deadlock", &pgconn.PgError{Code: pgDeadlockDetected}, apperrors.ErrTransient},
		{"lock timeout", &pgconn.PgError{Code: pgLockNotAvailable}, apperrors.ErrTransient},
		{"wrapped", fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgCheckViolation}), apperrors.ErrValidation},
		{"deadline", context.DeadlineExceeded, apperrors.ErrTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapPgError(tt.err, "insert"), tt.want)
		})
	}
}

func TestMapPgError_UnknownIsInternal(t *testing.T) {
	err := mapPgError(&pgconn.PgError{Code: "XX000"}, "insert")

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.Code)
}
