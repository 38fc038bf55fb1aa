package store

import (
	"errors"

	"librarysvc/internal/usecase"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres error code for a broken unique constraint.
const uniqueViolation = "23505"

// translateConstraint maps unique-violation errors onto the usecase
// sentinels so handlers never see driver-level errors.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if pgErr.ConstraintName == "members_email_key" {
			return usecase.ErrDuplicateEmail
		}
		return usecase.ErrDuplicateID
	}
	return err
}
