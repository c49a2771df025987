package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a person who can be booked onto trips.
// Pesel (the national personal identifier) is the unique business key.
type Client struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Telephone string
	Pesel     string
}

// Registration is an incoming request to book a person onto a trip.
// It either identifies an existing client by Pesel or describes a new one.
type Registration struct {
	FirstName   string
	LastName    string
	Email       string
	Telephone   string
	Pesel       string
	PaymentDate *time.Time
}

// Client returns the new client described by the registration.
func (r Registration) Client() Client {
	return Client{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Telephone: r.Telephone,
		Pesel:     r.Pesel,
	}
}
