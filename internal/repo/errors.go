package repo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/alefloresc/p2-systems-haniya-gloria/internal/domain"
)

// SQLSTATE codes that mean the caller sent data the schema rejects.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
var constraintCodes = map[string]bool{
	"23502": true, // not_null_violation
	"23503": true, // foreign_key_violation
	"23505": true, // unique_violation
	"23514": true, // check_constraint_violation
	"22P02": true, // invalid_text_representation
	"22007": true, // invalid_datetime_format
}

// classify maps driver errors onto the domain sentinels while keeping the
// original error in the chain, so errors.As(err, **pgconn.PgError) still works.
// Errors that are already classified, or that match no category, are returned
// unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConstraint) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && constraintCodes[pgErr.Code] {
		return fmt.Errorf("%w: %w", domain.ErrConstraint, err)
	}
	return err
}
