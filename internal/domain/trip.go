// Package domain contains the core data types for the trip booking service.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a scheduled travel offering. Trips are read-only in this service.
// Countries holds the names of the countries the trip visits.
type Trip struct {
	ID          uuid.UUID
	Name        string
	Description string
	DateFrom    time.Time
	DateTo      time.Time
	MaxPeople   int
	Countries   []string
}

// StartedBy reports whether the trip has started at or before now.
// Bookings are only accepted while this is false.
func (t Trip) StartedBy(now time.Time) bool {
	return !t.DateFrom.After(now)
}

// CountryName is the projection of a visited country shown in trip listings.
type CountryName struct {
	Name string `json:"name"`
}

// CountryNames wraps plain country names in their listing projection.
func CountryNames(names []string) []CountryName {
	out := make([]CountryName, len(names))
	for i, n := range names {
		out[i] = CountryName{Name: n}
	}
	return out
}

// ClientName is the projection of an assigned client shown in trip listings.
type ClientName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// TripSummary is the read projection of a trip returned by the trip listing.
// Clients has one entry per booking, ordered by registration time.
type TripSummary struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	DateFrom    time.Time     `json:"dateFrom"`
	DateTo      time.Time     `json:"dateTo"`
	MaxPeople   int           `json:"maxPeople"`
	Countries   []CountryName `json:"countries"`
	Clients     []ClientName  `json:"clients"`
}

// TripPage is one page of trip summaries plus the paging metadata.
type TripPage struct {
	PageNum  int           `json:"pageNum"`
	PageSize int           `json:"pageSize"`
	AllPages int           `json:"allPages"`
	Trips    []TripSummary `json:"trips"`
}
