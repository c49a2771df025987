package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-booking/backend/internal/handler"
	"github.com/pkordes/trip-booking/backend/internal/handler/gen"
	"github.com/pkordes/trip-booking/backend/openapi"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	rec := do(t, newHTTPHandler(&mockBookingServicer{}), http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body gen.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, gen.HealthResponseStatusOk, body.Status)
}

func TestGetReady(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))

	cases := []struct {
		name       string
		db         handler.Pinger
		wantStatus int
		wantBody   gen.HealthResponseStatus
	}{
		{"no database configured", nil, http.StatusOK, gen.HealthResponseStatusOk},
		{"database reachable", mockPinger{}, http.StatusOK, gen.HealthResponseStatusOk},
		{"database down", mockPinger{err: errors.New("dial tcp: connection refused")}, http.StatusServiceUnavailable, gen.HealthResponseStatusUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHTTPHandlerWith(&mockBookingServicer{}, tc.db, log)

			rec := do(t, h, http.MethodGet, "/readyz", nil)

			require.Equal(t, tc.wantStatus, rec.Code)
			var body gen.HealthResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tc.wantBody, body.Status)
		})
	}
}

func TestGetOpenAPI(t *testing.T) {
	rec := do(t, newHTTPHandler(&mockBookingServicer{}), http.MethodGet, "/openapi.yaml", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "/trips/{idTrip}/clients")
}

func TestGetMetrics(t *testing.T) {
	rec := do(t, newHTTPHandler(&mockBookingServicer{}), http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestUnknownRoute_returnsJSON404(t *testing.T) {
	rec := do(t, newHTTPHandler(&mockBookingServicer{}), http.MethodGet, "/nope", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Code)
}

func TestWrongMethod_returnsJSON405(t *testing.T) {
	rec := do(t, newHTTPHandler(&mockBookingServicer{}), http.MethodPost, "/trips", nil)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method_not_allowed", decodeError(t, rec).Code)
}

// TestRoutes_MatchAPIDescription checks that every route the server mounts,
// apart from /metrics and the document itself, is a path in openapi.yaml and
// that every operation in the document is mounted.
func TestRoutes_MatchAPIDescription(t *testing.T) {
	r := chi.NewRouter()
	handler.NewServer(&mockBookingServicer{}, nil, nil).Routes(r)
	doc := string(openapi.Document)

	var operations int
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route == "/metrics" || route == "/openapi.yaml" {
			return nil
		}
		operations++
		assert.Contains(t, doc, "\n  "+route+":\n", "%s %s is not described", method, route)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, strings.Count(doc, "operationId:"), operations)
}
