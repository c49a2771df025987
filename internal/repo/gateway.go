// Package repo contains all database access logic for the trip booking service.
// Each entity collection has its own file with an interface and a Postgres
// implementation. No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup. Begin on a pgx.Tx opens a
// savepoint, so Gateway.InTx nests cleanly inside a test transaction.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Gateway is the unit of work handed to every service operation. All three
// collections it returns share one session: the pool (each statement commits
// on its own) or, inside InTx, a single transaction.
type Gateway interface {
	Trips() TripRepo
	Clients() ClientRepo
	Assignments() AssignmentRepo

	// InTx runs fn against a Gateway bound to a new transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(tx Gateway) error) error
}

// pgGateway is the Postgres implementation of Gateway.
type pgGateway struct {
	db db
}

// NewGateway constructs a Gateway backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewGateway(db db) Gateway {
	return &pgGateway{db: db}
}

func (g *pgGateway) Trips() TripRepo             { return NewTripRepo(g.db) }
func (g *pgGateway) Clients() ClientRepo         { return NewClientRepo(g.db) }
func (g *pgGateway) Assignments() AssignmentRepo { return NewAssignmentRepo(g.db) }

// InTx uses pgx.BeginFunc, which commits on nil and rolls back on error or panic.
func (g *pgGateway) InTx(ctx context.Context, fn func(tx Gateway) error) error {
	return pgx.BeginFunc(ctx, g.db, func(tx pgx.Tx) error {
		return fn(&pgGateway{db: tx})
	})
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}
