package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// uniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation and returns the violated constraint name. Detecting the
// constraint after the insert (instead of pre-checking) keeps concurrent
// duplicate registrations race-free.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return pgErr.ConstraintName, true
	}
	return "", false
}
