package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-booking/backend/internal/domain"
)

// AssignmentRepo defines the persistence operations for the client_trips join table.
type AssignmentRepo interface {
	// Exists reports whether the client is already booked onto the trip.
	Exists(ctx context.Context, clientID, tripID uuid.UUID) (bool, error)

	// ExistsForClient reports whether the client has any booking at all.
	ExistsForClient(ctx context.Context, clientID uuid.UUID) (bool, error)

	// Create inserts a booking. Returns domain.ErrConflict if the pair is
	// already booked, domain.ErrNotFound if the trip row no longer exists and
	// domain.ErrPreconditionFailed if the client row no longer exists.
	Create(ctx context.Context, a domain.Assignment) (domain.Assignment, error)
}

// pgAssignmentRepo is the Postgres implementation of AssignmentRepo.
type pgAssignmentRepo struct {
	db db
}

// NewAssignmentRepo constructs an AssignmentRepo backed by the provided db connection.
func NewAssignmentRepo(db db) AssignmentRepo {
	return &pgAssignmentRepo{db: db}
}

func (r *pgAssignmentRepo) Exists(ctx context.Context, clientID, tripID uuid.UUID) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM client_trips
			WHERE client_id = @client_id AND trip_id = @trip_id
		)`

	var exists bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"client_id": clientID, "trip_id": tripID}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repo.AssignmentRepo.Exists: %w", translate(err))
	}
	return exists, nil
}

func (r *pgAssignmentRepo) ExistsForClient(ctx context.Context, clientID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM client_trips WHERE client_id = @client_id)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"client_id": clientID}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.AssignmentRepo.ExistsForClient: %w", translate(err))
	}
	return exists, nil
}

func (r *pgAssignmentRepo) Create(ctx context.Context, a domain.Assignment) (domain.Assignment, error) {
	const q = `
		INSERT INTO client_trips (client_id, trip_id, registered_at, payment_date)
		VALUES (@client_id, @trip_id, @registered_at, @payment_date)
		RETURNING client_id, trip_id, registered_at, payment_date`

	args := pgx.NamedArgs{
		"client_id":     a.ClientID,
		"trip_id":       a.TripID,
		"registered_at": a.RegisteredAt,
		"payment_date":  a.PaymentDate, // nil becomes NULL
	}

	created, err := scanAssignment(r.db.QueryRow(ctx, q, args))
	if err != nil {
		switch violatedForeignKey(err) {
		case fkClientTripsTrip:
			return domain.Assignment{}, fmt.Errorf("repo.AssignmentRepo.Create: trip %s: %w", a.TripID, domain.ErrNotFound)
		case fkClientTripsClient:
			return domain.Assignment{}, fmt.Errorf("repo.AssignmentRepo.Create: client %s: %w", a.ClientID, domain.ErrPreconditionFailed)
		}
		return domain.Assignment{}, fmt.Errorf("repo.AssignmentRepo.Create: %w", translate(err))
	}
	return created, nil
}

// scanAssignment maps a single client_trips row, handling the nullable payment_date.
func scanAssignment(s scanner) (domain.Assignment, error) {
	var (
		a           domain.Assignment
		clientID    pgtype.UUID
		tripID      pgtype.UUID
		paymentDate pgtype.Timestamptz
	)
	if err := s.Scan(&clientID, &tripID, &a.RegisteredAt, &paymentDate); err != nil {
		return domain.Assignment{}, err
	}
	a.ClientID = uuid.UUID(clientID.Bytes)
	a.TripID = uuid.UUID(tripID.Bytes)
	if paymentDate.Valid {
		pd := paymentDate.Time
		a.PaymentDate = &pd
	}
	return a, nil
}
