package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-booking/backend/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a fake.
type TripRepo interface {
	// GetByID retrieves a single trip, including its country names.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// Count returns the total number of trips.
	Count(ctx context.Context) (int64, error)

	// ListSummaries returns one page of trip summaries ordered by date_from
	// descending, with country names and assigned client names aggregated
	// per trip. Ties on date_from are broken by id so paging is stable.
	ListSummaries(ctx context.Context, p domain.PaginationParams) ([]domain.TripSummary, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT t.id, t.name, t.description, t.date_from, t.date_to, t.max_people,
		       COALESCE(
		           (SELECT array_agg(c.name ORDER BY c.name)
		            FROM country_trips ct
		            JOIN countries c ON c.id = ct.country_id
		            WHERE ct.trip_id = t.id),
		           '{}'::text[]) AS countries
		FROM trips t
		WHERE t.id = @id`

	var (
		t     domain.Trip
		rowID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).
		Scan(&rowID, &t.Name, &t.Description, &t.DateFrom, &t.DateTo, &t.MaxPeople, &t.Countries)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", translate(err))
	}
	t.ID = uuid.UUID(rowID.Bytes)
	return t, nil
}

// Count returns the number of rows in trips.
func (r *pgTripRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM trips`).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.TripRepo.Count: %w", translate(err))
	}
	return n, nil
}

// ListSummaries aggregates countries and clients with LATERAL subqueries so a
// single round trip returns the whole page.
func (r *pgTripRepo) ListSummaries(ctx context.Context, p domain.PaginationParams) ([]domain.TripSummary, error) {
	const q = `
		SELECT t.name, t.description, t.date_from, t.date_to, t.max_people,
		       COALESCE(co.names, '{}'::text[])       AS countries,
		       COALESCE(cl.first_names, '{}'::text[]) AS first_names,
		       COALESCE(cl.last_names, '{}'::text[])  AS last_names
		FROM trips t
		LEFT JOIN LATERAL (
		    SELECT array_agg(c.name ORDER BY c.name) AS names
		    FROM country_trips ct
		    JOIN countries c ON c.id = ct.country_id
		    WHERE ct.trip_id = t.id
		) co ON true
		LEFT JOIN LATERAL (
		    SELECT array_agg(c.first_name ORDER BY ctr.registered_at, c.id) AS first_names,
		           array_agg(c.last_name  ORDER BY ctr.registered_at, c.id) AS last_names
		    FROM client_trips ctr
		    JOIN clients c ON c.id = ctr.client_id
		    WHERE ctr.trip_id = t.id
		) cl ON true
		ORDER BY t.date_from DESC, t.id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListSummaries: %w", translate(err))
	}
	defer rows.Close()

	summaries := []domain.TripSummary{}
	for rows.Next() {
		s, err := scanTripSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListSummaries: scan: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListSummaries: rows: %w", translate(err))
	}
	return summaries, nil
}

// scanTripSummary maps one ListSummaries row. The first and last name arrays
// are aggregated with the same ORDER BY, so index i of each belongs to the
// same client.
func scanTripSummary(s scanner) (domain.TripSummary, error) {
	var (
		ts         domain.TripSummary
		countries  []string
		firstNames []string
		lastNames  []string
	)
	err := s.Scan(&ts.Name, &ts.Description, &ts.DateFrom, &ts.DateTo, &ts.MaxPeople,
		&countries, &firstNames, &lastNames)
	if err != nil {
		return domain.TripSummary{}, err
	}
	ts.Countries = domain.CountryNames(countries)
	if len(firstNames) != len(lastNames) {
		return domain.TripSummary{}, fmt.Errorf("client name arrays differ in length: %d != %d", len(firstNames), len(lastNames))
	}
	ts.Clients = make([]domain.ClientName, len(firstNames))
	for i := range firstNames {
		ts.Clients[i] = domain.ClientName{FirstName: firstNames[i], LastName: lastNames[i]}
	}
	return ts, nil
}
