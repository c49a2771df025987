package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/trip-booking/backend/internal/domain"
	"github.com/pkordes/trip-booking/backend/internal/metrics"
	"github.com/pkordes/trip-booking/backend/internal/repo"
)

// DeleteClient removes a client that has no bookings.
//
// Returns ErrNotFound when the client does not exist and ErrPreconditionFailed
// when any booking references it. The check and the delete share one
// transaction; the clients FK on client_trips catches a booking that slips in
// between them.
func (s *BookingService) DeleteClient(ctx context.Context, clientID uuid.UUID) (err error) {
	const op = "service.BookingService.DeleteClient"

	ctx, span := s.tracer.Start(ctx, "BookingService.DeleteClient", trace.WithAttributes(
		attribute.String("client.id", clientID.String()),
	))
	defer func() { finish(span, "delete_client", err); span.End() }()

	err = s.store.InTx(ctx, func(tx repo.Gateway) error {
		if _, err := tx.Clients().GetByID(ctx, clientID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Fail(domain.ErrNotFound, "client not found")
			}
			return err
		}

		hasTrips, err := tx.Assignments().ExistsForClient(ctx, clientID)
		if err != nil {
			return err
		}
		if hasTrips {
			return domain.Fail(domain.ErrPreconditionFailed, "client has assigned trips and cannot be deleted")
		}

		err = tx.Clients().Delete(ctx, clientID)
		switch {
		case errors.Is(err, domain.ErrPreconditionFailed):
			return domain.Fail(domain.ErrPreconditionFailed, "client has assigned trips and cannot be deleted")
		case errors.Is(err, domain.ErrNotFound):
			return domain.Fail(domain.ErrNotFound, "client not found")
		}
		return err
	})
	if err != nil {
		return classify(op, err)
	}

	metrics.ClientsDeletedTotal.Inc()
	return nil
}
