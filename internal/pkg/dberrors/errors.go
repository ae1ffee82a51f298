package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint violations.
const uniqueViolation = "23505"

// IsUniqueViolation checks if the error is a PostgreSQL unique violation,
// regardless of which constraint was hit. The submission path treats any
// unique violation on a waitlist insert as an "already registered" outcome.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsUniqueViolationOn checks if the error is a unique violation for a
// specific named constraint.
func IsUniqueViolationOn(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraintName
}
