package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-booking/backend/internal/domain"
)

func TestTripRepo_GetByID(t *testing.T) {
	g := newTestGateway(t)

	input := tripFixture()
	got := mustCreateTrip(t, g, input)

	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Description, got.Description)
	assert.True(t, got.DateFrom.Equal(input.DateFrom), "DateFrom mismatch")
	assert.True(t, got.DateTo.Equal(input.DateTo), "DateTo mismatch")
	assert.Equal(t, 12, got.MaxPeople)
	// Countries come back sorted by name.
	assert.Equal(t, []string{"Austria", "Switzerland"}, got.Countries)
}

func TestTripRepo_GetByID_SharedCountry(t *testing.T) {
	g := newTestGateway(t)

	first := mustCreateTrip(t, g, tripFixture())
	second := tripFixture()
	second.Name = "Danube Ride"
	second.Countries = []string{"Austria"}
	got := mustCreateTrip(t, g, second)

	assert.NotEqual(t, first.ID, got.ID)
	assert.Equal(t, []string{"Austria"}, got.Countries)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	g := newTestGateway(t)

	_, err := g.Trips().GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Count(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	before, err := g.Trips().Count(ctx)
	require.NoError(t, err)

	mustCreateTrip(t, g, tripFixture())
	mustCreateTrip(t, g, tripFixture())

	after, err := g.Trips().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+2, after)
}

// TestTripRepo_ListSummaries_OrderAndProjection seeds trips far in the future
// so they sort ahead of anything else in the shared test database.
func TestTripRepo_ListSummaries_OrderAndProjection(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	base := time.Date(2999, 1, 1, 0, 0, 0, 0, time.UTC)
	early := tripFixture()
	early.Name = "Early"
	early.DateFrom, early.DateTo = base, base.AddDate(0, 0, 7)
	late := tripFixture()
	late.Name = "Late"
	late.Countries = nil
	late.DateFrom, late.DateTo = base.AddDate(0, 1, 0), base.AddDate(0, 1, 7)

	earlyTrip := mustCreateTrip(t, g, early)
	mustCreateTrip(t, g, late)

	anna := mustCreateClient(t, g, "80020212345")
	piotr := clientFixture("80020254321")
	piotr.FirstName = "Piotr"
	piotr.LastName = "Nowak"
	piotrRow, _, err := g.Clients().CreateIfAbsent(ctx, piotr)
	require.NoError(t, err)

	now := time.Now().UTC()
	for i, c := range []domain.Client{anna, piotrRow} {
		_, err := g.Assignments().Create(ctx, domain.Assignment{
			ClientID:     c.ID,
			TripID:       earlyTrip.ID,
			RegisteredAt: now.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	p, err := domain.NewPaginationParams(1, 2)
	require.NoError(t, err)
	got, err := g.Trips().ListSummaries(ctx, p)

	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Late", got[0].Name, "most recent start date first")
	assert.Empty(t, got[0].Countries)
	assert.Empty(t, got[0].Clients)

	assert.Equal(t, "Early", got[1].Name)
	assert.Equal(t, []domain.CountryName{{Name: "Austria"}, {Name: "Switzerland"}}, got[1].Countries)
	assert.Equal(t, []domain.ClientName{
		{FirstName: "Jan", LastName: "Kowalski"},
		{FirstName: "Piotr", LastName: "Nowak"},
	}, got[1].Clients)
}

func TestTripRepo_ListSummaries_Offset(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	base := time.Date(2998, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		trip := tripFixture()
		trip.Name = []string{"A", "B", "C"}[i]
		trip.DateFrom = base.AddDate(0, 0, i)
		trip.DateTo = trip.DateFrom.AddDate(0, 0, 1)
		mustCreateTrip(t, g, trip)
	}

	p, err := domain.NewPaginationParams(2, 1)
	require.NoError(t, err)
	got, err := g.Trips().ListSummaries(ctx, p)

	require.NoError(t, err)
	require.Len(t, got, 1)
	// Every other test rolls back, so C, B, A are the most recent trips.
	assert.Equal(t, "B", got[0].Name)
}
