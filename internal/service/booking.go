// Package service contains the business logic for the trip booking API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/trip-booking/backend/internal/domain"
	"github.com/pkordes/trip-booking/backend/internal/metrics"
	"github.com/pkordes/trip-booking/backend/internal/repo"
)

const tracerName = "github.com/pkordes/trip-booking/backend/internal/service"

// PageCache is a read-through cache of trip listing pages.
// Implementations must fall back to load when the cache itself fails.
type PageCache interface {
	Fetch(ctx context.Context, p domain.PaginationParams, load func(context.Context) (domain.TripPage, error)) (domain.TripPage, error)
	// Invalidate drops every cached page.
	Invalidate(ctx context.Context) error
}

// BookingService implements the trip listing, client removal and
// client-to-trip assignment operations.
type BookingService struct {
	store  repo.Gateway
	cache  PageCache
	now    func() time.Time
	atomic bool
	log    *slog.Logger
	tracer trace.Tracer
}

// Option configures a BookingService.
type Option func(*BookingService)

// WithClock replaces time.Now as the source of registration timestamps and
// of the "trip already started" check.
func WithClock(now func() time.Time) Option {
	return func(s *BookingService) { s.now = now }
}

// WithAtomicAssign makes AssignClientToTrip run in a single transaction, so a
// client created for a booking that then fails is rolled back. Off by default:
// the client is committed on its own before the trip is checked.
func WithAtomicAssign(atomic bool) Option {
	return func(s *BookingService) { s.atomic = atomic }
}

// WithPageCache enables caching of trip listing pages.
func WithPageCache(c PageCache) Option {
	return func(s *BookingService) { s.cache = c }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *BookingService) { s.log = l }
}

// NewBookingService constructs a BookingService backed by the provided Gateway.
func NewBookingService(store repo.Gateway, opts ...Option) *BookingService {
	s := &BookingService{
		store:  store,
		now:    time.Now,
		log:    slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// classify prefixes err with op and tags anything that is not already one of
// the known domain categories as domain.ErrStorageUnavailable.
func classify(op string, err error) error {
	if domain.KindOf(err) == domain.KindStorageUnavailable && !errors.Is(err, domain.ErrStorageUnavailable) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// finish records the outcome of an operation on its span and in metrics.
func finish(span trace.Span, operation string, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	kind := domain.KindOf(err)
	metrics.OperationErrorsTotal.WithLabelValues(operation, kind.String()).Inc()
	if kind == domain.KindStorageUnavailable {
		span.RecordError(err)
	}
	span.SetStatus(codes.Error, kind.String())
}
