package service_test

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-booking/backend/internal/domain"
	"github.com/pkordes/trip-booking/backend/internal/repo"
)

// fakeStore is an in-memory repo.Gateway. It mirrors the constraints the
// Postgres schema enforces: unique PESEL, one booking per (client, trip),
// and RESTRICT on deleting a client that still has bookings.
//
// errs injects a failure for a named call, e.g. "Clients.Delete".
// hooks run just before the named call executes, which lets tests simulate a
// concurrent writer slipping in between two steps.
type fakeStore struct {
	trips       map[uuid.UUID]domain.Trip
	clients     map[uuid.UUID]domain.Client
	assignments map[[2]uuid.UUID]domain.Assignment

	errs  map[string]error
	hooks map[string]func()
	calls []string
	txs   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		trips:       map[uuid.UUID]domain.Trip{},
		clients:     map[uuid.UUID]domain.Client{},
		assignments: map[[2]uuid.UUID]domain.Assignment{},
		errs:        map[string]error{},
		hooks:       map[string]func(){},
	}
}

// compile-time check: fakeStore must satisfy repo.Gateway.
var _ repo.Gateway = (*fakeStore)(nil)

func (f *fakeStore) Trips() repo.TripRepo             { return fakeTrips{f} }
func (f *fakeStore) Clients() repo.ClientRepo         { return fakeClients{f} }
func (f *fakeStore) Assignments() repo.AssignmentRepo { return fakeAssignments{f} }

// InTx snapshots all three tables and restores them when fn fails.
func (f *fakeStore) InTx(_ context.Context, fn func(tx repo.Gateway) error) error {
	f.txs++
	trips, clients, assignments := maps.Clone(f.trips), maps.Clone(f.clients), maps.Clone(f.assignments)
	if err := fn(f); err != nil {
		f.trips, f.clients, f.assignments = trips, clients, assignments
		return err
	}
	return nil
}

// enter records the call and returns its injected error, if any.
func (f *fakeStore) enter(name string) error {
	f.calls = append(f.calls, name)
	if hook, ok := f.hooks[name]; ok {
		delete(f.hooks, name)
		hook()
	}
	return f.errs[name]
}

func (f *fakeStore) addTrip(name string, from time.Time) domain.Trip {
	t := domain.Trip{
		ID:        uuid.New(),
		Name:      name,
		DateFrom:  from,
		DateTo:    from.Add(7 * 24 * time.Hour),
		MaxPeople: 10,
		Countries: []string{"Poland"},
	}
	f.trips[t.ID] = t
	return t
}

func (f *fakeStore) addClient(pesel string) domain.Client {
	c := domain.Client{ID: uuid.New(), FirstName: "Existing", LastName: "Client", Pesel: pesel}
	f.clients[c.ID] = c
	return c
}

func (f *fakeStore) clientByPesel(pesel string) (domain.Client, bool) {
	for _, c := range f.clients {
		if c.Pesel == pesel {
			return c, true
		}
	}
	return domain.Client{}, false
}

// ---- trips -----------------------------------------------------------------

type fakeTrips struct{ f *fakeStore }

func (r fakeTrips) GetByID(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	if err := r.f.enter("Trips.GetByID"); err != nil {
		return domain.Trip{}, err
	}
	t, ok := r.f.trips[id]
	if !ok {
		return domain.Trip{}, fmt.Errorf("fake: %w", domain.ErrNotFound)
	}
	return t, nil
}

func (r fakeTrips) Count(_ context.Context) (int64, error) {
	if err := r.f.enter("Trips.Count"); err != nil {
		return 0, err
	}
	return int64(len(r.f.trips)), nil
}

func (r fakeTrips) ListSummaries(_ context.Context, p domain.PaginationParams) ([]domain.TripSummary, error) {
	if err := r.f.enter("Trips.ListSummaries"); err != nil {
		return nil, err
	}
	trips := slices.Collect(maps.Values(r.f.trips))
	slices.SortFunc(trips, func(a, b domain.Trip) int {
		if c := b.DateFrom.Compare(a.DateFrom); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	start := min(p.Offset(), len(trips))
	end := min(start+p.Limit, len(trips))

	out := []domain.TripSummary{}
	for _, t := range trips[start:end] {
		var booked []domain.Assignment
		for _, a := range r.f.assignments {
			if a.TripID == t.ID {
				booked = append(booked, a)
			}
		}
		slices.SortFunc(booked, func(a, b domain.Assignment) int { return a.RegisteredAt.Compare(b.RegisteredAt) })

		names := []domain.ClientName{}
		for _, a := range booked {
			c := r.f.clients[a.ClientID]
			names = append(names, domain.ClientName{FirstName: c.FirstName, LastName: c.LastName})
		}
		out = append(out, domain.TripSummary{
			Name:        t.Name,
			Description: t.Description,
			DateFrom:    t.DateFrom,
			DateTo:      t.DateTo,
			MaxPeople:   t.MaxPeople,
			Countries:   domain.CountryNames(t.Countries),
			Clients:     names,
		})
	}
	return out, nil
}

// ---- clients ---------------------------------------------------------------

type fakeClients struct{ f *fakeStore }

func (r fakeClients) GetByID(_ context.Context, id uuid.UUID) (domain.Client, error) {
	if err := r.f.enter("Clients.GetByID"); err != nil {
		return domain.Client{}, err
	}
	c, ok := r.f.clients[id]
	if !ok {
		return domain.Client{}, fmt.Errorf("fake: %w", domain.ErrNotFound)
	}
	return c, nil
}

func (r fakeClients) GetByPesel(_ context.Context, pesel string) (domain.Client, error) {
	if err := r.f.enter("Clients.GetByPesel"); err != nil {
		return domain.Client{}, err
	}
	c, ok := r.f.clientByPesel(pesel)
	if !ok {
		return domain.Client{}, fmt.Errorf("fake: %w", domain.ErrNotFound)
	}
	return c, nil
}

func (r fakeClients) CreateIfAbsent(_ context.Context, c domain.Client) (domain.Client, bool, error) {
	if err := r.f.enter("Clients.CreateIfAbsent"); err != nil {
		return domain.Client{}, false, err
	}
	if _, taken := r.f.clientByPesel(c.Pesel); taken {
		return domain.Client{}, false, nil
	}
	c.ID = uuid.New()
	r.f.clients[c.ID] = c
	return c, true, nil
}

func (r fakeClients) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.f.enter("Clients.Delete"); err != nil {
		return err
	}
	if _, ok := r.f.clients[id]; !ok {
		return fmt.Errorf("fake: %w", domain.ErrNotFound)
	}
	for key := range r.f.assignments {
		if key[0] == id {
			return fmt.Errorf("fake: %w", domain.ErrPreconditionFailed)
		}
	}
	delete(r.f.clients, id)
	return nil
}

// ---- assignments -----------------------------------------------------------

type fakeAssignments struct{ f *fakeStore }

func (r fakeAssignments) Exists(_ context.Context, clientID, tripID uuid.UUID) (bool, error) {
	if err := r.f.enter("Assignments.Exists"); err != nil {
		return false, err
	}
	_, ok := r.f.assignments[[2]uuid.UUID{clientID, tripID}]
	return ok, nil
}

func (r fakeAssignments) ExistsForClient(_ context.Context, clientID uuid.UUID) (bool, error) {
	if err := r.f.enter("Assignments.ExistsForClient"); err != nil {
		return false, err
	}
	for key := range r.f.assignments {
		if key[0] == clientID {
			return true, nil
		}
	}
	return false, nil
}

func (r fakeAssignments) Create(_ context.Context, a domain.Assignment) (domain.Assignment, error) {
	if err := r.f.enter("Assignments.Create"); err != nil {
		return domain.Assignment{}, err
	}
	key := [2]uuid.UUID{a.ClientID, a.TripID}
	if _, dup := r.f.assignments[key]; dup {
		return domain.Assignment{}, fmt.Errorf("fake: %w", domain.ErrConflict)
	}
	if _, ok := r.f.trips[a.TripID]; !ok {
		return domain.Assignment{}, fmt.Errorf("fake: trip: %w", domain.ErrNotFound)
	}
	if _, ok := r.f.clients[a.ClientID]; !ok {
		return domain.Assignment{}, fmt.Errorf("fake: client: %w", domain.ErrPreconditionFailed)
	}
	r.f.assignments[key] = a
	return a, nil
}

// fakeCache is an in-memory PageCache that counts loads.
type fakeCache struct {
	pages       map[domain.PaginationParams]domain.TripPage
	loads       int
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{pages: map[domain.PaginationParams]domain.TripPage{}}
}

func (c *fakeCache) Fetch(ctx context.Context, p domain.PaginationParams, load func(context.Context) (domain.TripPage, error)) (domain.TripPage, error) {
	if page, ok := c.pages[p]; ok {
		return page, nil
	}
	c.loads++
	page, err := load(ctx)
	if err != nil {
		return domain.TripPage{}, err
	}
	c.pages[p] = page
	return page, nil
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidated++
	clear(c.pages)
	return nil
}
