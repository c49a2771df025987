package repo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/trip-booking/backend/internal/domain"
)

// Postgres SQLSTATE codes the repos translate into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Foreign keys on client_trips, under the names Postgres generates for the
// inline REFERENCES clauses in the migrations.
const (
	fkClientTripsClient = "client_trips_client_id_fkey"
	fkClientTripsTrip   = "client_trips_trip_id_fkey"
)

// translate maps driver errors onto the domain sentinels:
//
//	pgx.ErrNoRows          → domain.ErrNotFound
//	unique_violation       → domain.ErrConflict
//	foreign_key_violation  → domain.ErrPreconditionFailed
//
// Everything else is returned unchanged.
func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", domain.ErrConflict, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", domain.ErrPreconditionFailed, err)
		}
	}
	return err
}

// violatedForeignKey returns the name of the foreign key constraint err
// violates, or "" when err is not a foreign key violation.
func violatedForeignKey(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return pgErr.ConstraintName
	}
	return ""
}
