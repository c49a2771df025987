// Package handler implements the HTTP handlers for the trip booking API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, trip.go, client.go)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/trip-booking/backend/internal/domain"
	"github.com/pkordes/trip-booking/backend/internal/handler/gen"
	"github.com/pkordes/trip-booking/backend/openapi"
)

// BookingServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type BookingServicer interface {
	ListTrips(ctx context.Context, page, pageSize int) (domain.TripPage, error)
	DeleteClient(ctx context.Context, clientID uuid.UUID) error
	AssignClientToTrip(ctx context.Context, tripID uuid.UUID, reg domain.Registration) (domain.Assignment, error)
}

// Pinger reports whether the database is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server implements gen.StrictServerInterface for all API endpoints.
type Server struct {
	booking  BookingServicer
	db       Pinger
	log      *slog.Logger
	validate *validator.Validate
}

// NewServer constructs the Server with all its dependencies.
// db may be nil, in which case /readyz always reports ready.
func NewServer(booking BookingServicer, db Pinger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		booking:  booking,
		db:       db,
		log:      log,
		validate: newValidator(),
	}
}

// compile-time check: Server must satisfy the generated strict interface.
var _ gen.StrictServerInterface = (*Server)(nil)

// Routes registers every endpoint on r. Middleware must be added to r
// before calling Routes.
//
// The operations in openapi.yaml are mounted through the generated strict
// handler. Parameter, body and service errors all come back through
// writeParamError, writeRequestError and writeServiceError.
func (s *Server) Routes(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, gen.ErrorDetailCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, gen.ErrorDetailCodeMethodNotAllowed, "method not allowed")
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/openapi.yaml", serveOpenAPI)

	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.writeRequestError,
		ResponseErrorHandlerFunc: s.writeServiceError,
	})
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.writeParamError,
	})
}

// serveOpenAPI handles GET /openapi.yaml with the embedded API description.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openapi.Document)
}
