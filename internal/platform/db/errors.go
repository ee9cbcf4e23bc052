package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a write violates a uniqueness or
	// referential constraint (duplicate slot, duplicate username,
	// reference to a row deleted concurrently).
	ErrConflict = errors.New("record conflict")

	// ErrBadField is returned when a caller names a field outside the
	// table's allow-list. Identifiers are never interpolated from raw
	// caller input.
	ErrBadField = errors.New("field not allowed")
)

// wrapErr translates driver errors into the store's error taxonomy.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		}
	}
	return err
}
