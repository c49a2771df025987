// Package metrics defines and registers all custom Prometheus metrics for the
// trip booking API. It is the single source of truth for metric names, labels,
// and help strings. Collectors register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// ── Booking metrics ───────────────────────────────────────────────────────────

// ClientsCreatedTotal counts clients created by the assignment workflow.
// Clients rolled back by an atomic assignment are not counted.
var ClientsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of clients created while assigning them to a trip.",
	},
)

// ClientRaceResolvedTotal counts registrations that lost the insert race on
// PESEL and continued with the row written by the other request.
var ClientRaceResolvedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_race_resolved_total",
		Help:      "Total number of concurrent client registrations resolved by re-fetching the winner.",
	},
)

// AssignmentsCreatedTotal counts bookings written.
var AssignmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignments_created_total",
		Help:      "Total number of client-trip assignments created.",
	},
)

// ClientsDeletedTotal counts clients removed.
var ClientsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_deleted_total",
		Help:      "Total number of clients deleted.",
	},
)

// OperationErrorsTotal counts failed service operations.
// Labels:
//   - operation: "list_trips", "delete_client", or "assign_client"
//   - kind: the error category (e.g. "not_found", "conflict", "storage_unavailable")
var OperationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operation_errors_total",
		Help:      "Total number of failed booking operations, by operation and error kind.",
	},
	[]string{"operation", "kind"},
)

// TripPageCacheTotal counts trip page cache lookups.
// Label:
//   - result: "hit", "miss", or "error"
var TripPageCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trip_page_cache_total",
		Help:      "Total number of trip page cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts handled HTTP requests.
// Labels:
//   - method: HTTP method
//   - route: chi route pattern (e.g. "/trips/{idTrip}/clients"), "unmatched" otherwise
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: HTTP method
//   - route: chi route pattern
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests from first byte read to last byte written.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)
