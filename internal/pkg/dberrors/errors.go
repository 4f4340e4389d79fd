package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation         = "23505"
	foreignKeyViolation     = "23503"
	stringDataRightTruncate = "22001"
)

// DuplicateConstraint returns the violated unique constraint name, if err is one.
func DuplicateConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// IsForeignKeyError reports a foreign key violation.
func IsForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

// IsValueTooLong reports a value longer than its column allows.
func IsValueTooLong(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == stringDataRightTruncate {
		return pgErr.ColumnName, true
	}
	return "", false
}
