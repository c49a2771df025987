package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-booking/backend/internal/domain"
	"github.com/pkordes/trip-booking/backend/internal/handler"
)

// mockBookingServicer is a test double for handler.BookingServicer.
// Set only the method fields your test needs.
type mockBookingServicer struct {
	listTrips    func(ctx context.Context, page, pageSize int) (domain.TripPage, error)
	deleteClient func(ctx context.Context, clientID uuid.UUID) error
	assign       func(ctx context.Context, tripID uuid.UUID, reg domain.Registration) (domain.Assignment, error)
}

func (m *mockBookingServicer) ListTrips(ctx context.Context, page, pageSize int) (domain.TripPage, error) {
	return m.listTrips(ctx, page, pageSize)
}
func (m *mockBookingServicer) DeleteClient(ctx context.Context, clientID uuid.UUID) error {
	return m.deleteClient(ctx, clientID)
}
func (m *mockBookingServicer) AssignClientToTrip(ctx context.Context, tripID uuid.UUID, reg domain.Registration) (domain.Assignment, error) {
	return m.assign(ctx, tripID, reg)
}

// compile-time check: mockBookingServicer must satisfy handler.BookingServicer.
var _ handler.BookingServicer = (*mockBookingServicer)(nil)

// mockPinger is a test double for handler.Pinger.
type mockPinger struct{ err error }

func (m mockPinger) Ping(context.Context) error { return m.err }

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mock into a chi router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(svc handler.BookingServicer) http.Handler {
	return newHTTPHandlerWith(svc, nil, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func newHTTPHandlerWith(svc handler.BookingServicer, db handler.Pinger, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	handler.NewServer(svc, db, log).Routes(r)
	return r
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// errorDetail mirrors gen.ErrorDetail with a plain string code so tests can
// compare it against literals.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorDetail {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var resp struct {
		Error errorDetail `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}
