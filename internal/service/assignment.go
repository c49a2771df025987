package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/trip-booking/backend/internal/domain"
	"github.com/pkordes/trip-booking/backend/internal/metrics"
	"github.com/pkordes/trip-booking/backend/internal/repo"
)

// Reasons returned to callers by AssignClientToTrip.
const (
	reasonAlreadyAssigned = "client is already assigned to this trip"
	reasonTripNotFound    = "trip not found"
	reasonTripStarted     = "cannot assign to a trip that has already started"
)

// AssignClientToTrip books the person described by reg onto the trip.
//
// The client is looked up by PESEL and created when absent. Checks run in a
// fixed order: duplicate booking (existing clients only), trip existence,
// trip start date. Unless the service was built WithAtomicAssign(true), a
// newly created client stays committed even when a later check fails.
func (s *BookingService) AssignClientToTrip(ctx context.Context, tripID uuid.UUID, reg domain.Registration) (result domain.Assignment, err error) {
	const op = "service.BookingService.AssignClientToTrip"

	ctx, span := s.tracer.Start(ctx, "BookingService.AssignClientToTrip", trace.WithAttributes(
		attribute.String("trip.id", tripID.String()),
		attribute.Bool("atomic", s.atomic),
	))
	defer func() { finish(span, "assign_client", err); span.End() }()

	var clientCreated bool
	run := func(g repo.Gateway) error {
		a, created, err := s.assign(ctx, g, tripID, reg)
		result, clientCreated = a, created
		return err
	}

	if s.atomic {
		err = s.store.InTx(ctx, run)
	} else {
		err = run(s.store)
	}

	if clientCreated && (err == nil || !s.atomic) {
		metrics.ClientsCreatedTotal.Inc()
		span.SetAttributes(attribute.Bool("client.created", true))
	}
	if err != nil {
		return domain.Assignment{}, classify(op, err)
	}

	metrics.AssignmentsCreatedTotal.Inc()
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.WarnContext(ctx, "trip page cache invalidation failed", "error", err)
		}
	}
	return result, nil
}

// assign runs the workflow against g. created reports whether a client row
// was inserted, even when a later step fails.
func (s *BookingService) assign(ctx context.Context, g repo.Gateway, tripID uuid.UUID, reg domain.Registration) (a domain.Assignment, created bool, err error) {
	client, err := g.Clients().GetByPesel(ctx, reg.Pesel)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		client, created, err = s.createClient(ctx, g, reg)
		if err != nil {
			return domain.Assignment{}, false, err
		}
	case err != nil:
		return domain.Assignment{}, false, err
	}

	// A client created just now cannot already hold a booking.
	if !created {
		exists, err := g.Assignments().Exists(ctx, client.ID, tripID)
		if err != nil {
			return domain.Assignment{}, false, err
		}
		if exists {
			return domain.Assignment{}, false, domain.Fail(domain.ErrConflict, reasonAlreadyAssigned)
		}
	}

	trip, err := g.Trips().GetByID(ctx, tripID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Assignment{}, created, domain.Fail(domain.ErrNotFound, reasonTripNotFound)
	}
	if err != nil {
		return domain.Assignment{}, created, err
	}

	now := s.now()
	if trip.StartedBy(now) {
		return domain.Assignment{}, created, domain.Fail(domain.ErrPreconditionFailed, reasonTripStarted)
	}

	a, err = g.Assignments().Create(ctx, domain.Assignment{
		ClientID:     client.ID,
		TripID:       trip.ID,
		RegisteredAt: now,
		PaymentDate:  reg.PaymentDate,
	})
	switch {
	case errors.Is(err, domain.ErrConflict):
		// A concurrent request booked the same pair after our Exists check.
		return domain.Assignment{}, created, domain.Fail(domain.ErrConflict, reasonAlreadyAssigned)
	case errors.Is(err, domain.ErrNotFound):
		// The trip row was deleted after we read it.
		return domain.Assignment{}, created, domain.Fail(domain.ErrNotFound, reasonTripNotFound)
	case errors.Is(err, domain.ErrPreconditionFailed):
		// The client row was deleted after we read it. The caller cannot
		// correct that, so it surfaces as an unclassified fault.
		return domain.Assignment{}, created, fmt.Errorf("%w: client %s removed during booking: %v", domain.ErrStorageUnavailable, client.ID, err)
	case err != nil:
		return domain.Assignment{}, created, err
	}
	return a, created, nil
}

// createClient inserts the registration's client. When another request
// inserted the same PESEL first, it re-fetches that row and reports
// created=false so the caller takes the existing-client path.
func (s *BookingService) createClient(ctx context.Context, g repo.Gateway, reg domain.Registration) (domain.Client, bool, error) {
	client, created, err := g.Clients().CreateIfAbsent(ctx, reg.Client())
	if err != nil {
		return domain.Client{}, false, err
	}
	if created {
		s.log.DebugContext(ctx, "client created", "client_id", client.ID)
		return client, true, nil
	}

	client, err = g.Clients().GetByPesel(ctx, reg.Pesel)
	if err != nil {
		return domain.Client{}, false, err
	}
	metrics.ClientRaceResolvedTotal.Inc()
	s.log.DebugContext(ctx, "client registered concurrently, reusing existing row", "client_id", client.ID)
	return client, false, nil
}
