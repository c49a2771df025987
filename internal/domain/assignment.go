package domain

import (
	"time"

	"github.com/google/uuid"
)

// Assignment is the booking that links one client to one trip.
// There is at most one Assignment per (ClientID, TripID) pair, and it is
// never updated once created. PaymentDate is nil until the client has paid.
type Assignment struct {
	ClientID     uuid.UUID
	TripID       uuid.UUID
	RegisteredAt time.Time
	PaymentDate  *time.Time
}
