package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-booking/backend/internal/domain"
)

// ClientRepo defines the persistence operations for Clients.
type ClientRepo interface {
	// GetByID retrieves a client by primary key.
	// Returns domain.ErrNotFound if no client with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error)

	// GetByPesel retrieves a client by exact PESEL match.
	// Returns domain.ErrNotFound if no client has that PESEL.
	GetByPesel(ctx context.Context, pesel string) (domain.Client, error)

	// CreateIfAbsent inserts the client unless one with the same PESEL already
	// exists. created is false when another row won; the returned client is
	// then the zero value and the caller should re-fetch by PESEL.
	CreateIfAbsent(ctx context.Context, c domain.Client) (client domain.Client, created bool, err error)

	// Delete removes a client by ID. Returns domain.ErrNotFound if it does not
	// exist and domain.ErrPreconditionFailed if bookings still reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgClientRepo is the Postgres implementation of ClientRepo.
type pgClientRepo struct {
	db db
}

// NewClientRepo constructs a ClientRepo backed by the provided db connection.
func NewClientRepo(db db) ClientRepo {
	return &pgClientRepo{db: db}
}

const clientColumns = `id, first_name, last_name, email, telephone, pesel`

func (r *pgClientRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE id = @id`

	c, err := scanClient(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetByID: %w", translate(err))
	}
	return c, nil
}

func (r *pgClientRepo) GetByPesel(ctx context.Context, pesel string) (domain.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE pesel = @pesel`

	c, err := scanClient(r.db.QueryRow(ctx, q, pgx.NamedArgs{"pesel": pesel}))
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetByPesel: %w", translate(err))
	}
	return c, nil
}

// CreateIfAbsent relies on the clients_pesel_key unique index. ON CONFLICT DO
// NOTHING returns no row when the PESEL is taken, including by a concurrent
// transaction that committed while this insert waited on the index.
func (r *pgClientRepo) CreateIfAbsent(ctx context.Context, c domain.Client) (domain.Client, bool, error) {
	q := `
		INSERT INTO clients (first_name, last_name, email, telephone, pesel)
		VALUES (@first_name, @last_name, @email, @telephone, @pesel)
		ON CONFLICT (pesel) DO NOTHING
		RETURNING ` + clientColumns

	args := pgx.NamedArgs{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"email":      c.Email,
		"telephone":  c.Telephone,
		"pesel":      c.Pesel,
	}

	created, err := scanClient(r.db.QueryRow(ctx, q, args))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Client{}, false, nil
	}
	if err != nil {
		return domain.Client{}, false, fmt.Errorf("repo.ClientRepo.CreateIfAbsent: %w", translate(err))
	}
	return created, true, nil
}

func (r *pgClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM clients WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ClientRepo.Delete: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ClientRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanClient maps a single database row into a domain.Client.
func scanClient(s scanner) (domain.Client, error) {
	var (
		c  domain.Client
		id pgtype.UUID
	)
	if err := s.Scan(&id, &c.FirstName, &c.LastName, &c.Email, &c.Telephone, &c.Pesel); err != nil {
		return domain.Client{}, err
	}
	c.ID = uuid.UUID(id.Bytes)
	return c, nil
}
