package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/trip-booking/backend/internal/domain"
)

// ListTrips returns one page of trip summaries, most recent start date first.
// page and pageSize must both be positive; otherwise ErrInvalidArgument is
// returned without touching storage.
func (s *BookingService) ListTrips(ctx context.Context, page, pageSize int) (result domain.TripPage, err error) {
	const op = "service.BookingService.ListTrips"

	ctx, span := s.tracer.Start(ctx, "BookingService.ListTrips", trace.WithAttributes(
		attribute.Int("page", page),
		attribute.Int("page_size", pageSize),
	))
	defer func() { finish(span, "list_trips", err); span.End() }()

	p, err := domain.NewPaginationParams(page, pageSize)
	if err != nil {
		return domain.TripPage{}, classify(op, err)
	}

	if s.cache != nil {
		result, err = s.cache.Fetch(ctx, p, func(ctx context.Context) (domain.TripPage, error) {
			return s.loadPage(ctx, p)
		})
	} else {
		result, err = s.loadPage(ctx, p)
	}
	if err != nil {
		return domain.TripPage{}, classify(op, err)
	}
	return result, nil
}

// loadPage reads the total and the requested page from storage.
func (s *BookingService) loadPage(ctx context.Context, p domain.PaginationParams) (domain.TripPage, error) {
	trips := s.store.Trips()

	total, err := trips.Count(ctx)
	if err != nil {
		return domain.TripPage{}, err
	}
	summaries, err := trips.ListSummaries(ctx, p)
	if err != nil {
		return domain.TripPage{}, err
	}
	if summaries == nil {
		summaries = []domain.TripSummary{}
	}

	return domain.TripPage{
		PageNum:  p.Page,
		PageSize: p.Limit,
		AllPages: p.TotalPages(total),
		Trips:    summaries,
	}, nil
}
