package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-booking/backend/internal/metrics"
	"github.com/pkordes/trip-booking/backend/internal/middleware"
)

func newMetricsRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Metrics)
	r.Post("/trips/{idTrip}/clients", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// TestMetrics_labelsByRoutePattern verifies the route label is the chi pattern,
// not the concrete path, so trip IDs do not explode label cardinality.
func TestMetrics_labelsByRoutePattern(t *testing.T) {
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/trips/{idTrip}/clients", "400")
	before := promtestutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	newMetricsRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/trips/5d3c/clients", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, before+1, promtestutil.ToFloat64(counter))
}

// TestMetrics_implicitOK verifies a handler that only writes a body is counted as 200.
func TestMetrics_implicitOK(t *testing.T) {
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200")
	before := promtestutil.ToFloat64(counter)

	newMetricsRouter().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, before+1, promtestutil.ToFloat64(counter))
}

func TestMetrics_unmatchedRoute(t *testing.T) {
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := promtestutil.ToFloat64(counter)

	newMetricsRouter().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/no/such/path", nil))

	assert.Equal(t, before+1, promtestutil.ToFloat64(counter))
}
