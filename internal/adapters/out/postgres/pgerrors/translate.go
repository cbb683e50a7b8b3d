// Package pgerrors maps PostgreSQL failures onto the structured errors of the core.
package pgerrors

import (
	"errors"

	"dietrack/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes handled by Translate.
const (
	UniqueViolation      = "23505"
	ForeignKeyViolation  = "23503"
	CheckViolation       = "23514"
	NumericOutOfRange    = "22003"
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
	LockNotAvailable     = "55P03"
)

// Translate converts storage errors:
//   - unique violations become errs.DuplicateIdentifierError for param/value
//   - serialization failures, deadlocks and lock timeouts become errs.PersistenceConflictError
//   - foreign key violations become errs.ValueIsInvalidError for param
//   - check violations and numeric overflow become errs.ValueIsInvalidError for the column
//
// Any other error, and nil, is returned unchanged.
func Translate(err error, operation, param string, value any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewDuplicateIdentifierErrorWithCause(param, value, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case UniqueViolation:
		return errs.NewDuplicateIdentifierErrorWithCause(param, value, err)
	case SerializationFailure, DeadlockDetected, LockNotAvailable:
		return errs.NewPersistenceConflictErrorWithCause(operation, err)
	case ForeignKeyViolation:
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	case CheckViolation, NumericOutOfRange:
		column := pgErr.ColumnName
		if column == "" {
			column = pgErr.ConstraintName
		}
		if column == "" {
			column = param
		}
		return errs.NewValueIsInvalidErrorWithCause(column, err)
	}
	return err
}

// IsForeignKeyViolation reports whether err was caused by a violated foreign key.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == ForeignKeyViolation
}
