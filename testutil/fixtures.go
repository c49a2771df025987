package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-booking/backend/internal/domain"
)

// Querier is the part of pgx.Tx and *pgxpool.Pool the fixtures need.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertTrip seeds trip and links each of its countries, creating the
// countries it has not seen before. It returns the generated trip ID.
//
// The service never writes trips, so tests seed them directly with SQL.
func InsertTrip(t *testing.T, q Querier, trip domain.Trip) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	const insertTrip = `
		INSERT INTO trips (name, description, date_from, date_to, max_people)
		VALUES (@name, @description, @date_from, @date_to, @max_people)
		RETURNING id`
	// DO UPDATE makes RETURNING fire for a country that already exists.
	const upsertCountry = `
		INSERT INTO countries (name)
		VALUES (@name)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`
	const linkCountry = `
		INSERT INTO country_trips (country_id, trip_id)
		VALUES (@country_id, @trip_id)
		ON CONFLICT (country_id, trip_id) DO NOTHING`

	var id pgtype.UUID
	err := q.QueryRow(ctx, insertTrip, pgx.NamedArgs{
		"name":        trip.Name,
		"description": trip.Description,
		"date_from":   trip.DateFrom,
		"date_to":     trip.DateTo,
		"max_people":  trip.MaxPeople,
	}).Scan(&id)
	if err != nil {
		t.Fatalf("testutil.InsertTrip: insert trip: %v", err)
	}
	tripID := uuid.UUID(id.Bytes)

	for _, name := range trip.Countries {
		var countryID pgtype.UUID
		if err := q.QueryRow(ctx, upsertCountry, pgx.NamedArgs{"name": name}).Scan(&countryID); err != nil {
			t.Fatalf("testutil.InsertTrip: country %q: %v", name, err)
		}
		if _, err := q.Exec(ctx, linkCountry, pgx.NamedArgs{"country_id": countryID, "trip_id": tripID}); err != nil {
			t.Fatalf("testutil.InsertTrip: link country %q: %v", name, err)
		}
	}
	return tripID
}
