package handler

import (
	"context"

	"github.com/pkordes/trip-booking/backend/internal/domain"
	"github.com/pkordes/trip-booking/backend/internal/handler/gen"
)

// ListTrips handles GET /trips.
// Supports ?page= and ?pageSize= query parameters (defaults: page=1, pageSize=10).
// Range checks belong to the service; non-integer values never reach here.
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	page, pageSize := domain.DefaultPage, domain.DefaultPageSize
	if req.Params.Page != nil {
		page = *req.Params.Page
	}
	if req.Params.PageSize != nil {
		pageSize = *req.Params.PageSize
	}

	result, err := s.booking.ListTrips(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	return gen.ListTrips200JSONResponse(tripPageToResponse(result)), nil
}

// tripPageToResponse converts a domain.TripPage to the generated wire type.
// Every slice is allocated so empty lists encode as [] rather than null.
func tripPageToResponse(p domain.TripPage) gen.TripPage {
	trips := make([]gen.TripSummary, len(p.Trips))
	for i, t := range p.Trips {
		countries := make([]gen.CountryName, len(t.Countries))
		for j, c := range t.Countries {
			countries[j] = gen.CountryName{Name: c.Name}
		}
		clients := make([]gen.ClientName, len(t.Clients))
		for j, c := range t.Clients {
			clients[j] = gen.ClientName{FirstName: c.FirstName, LastName: c.LastName}
		}
		trips[i] = gen.TripSummary{
			Name:        t.Name,
			Description: t.Description,
			DateFrom:    t.DateFrom,
			DateTo:      t.DateTo,
			MaxPeople:   t.MaxPeople,
			Countries:   countries,
			Clients:     clients,
		}
	}
	return gen.TripPage{
		PageNum:  p.PageNum,
		PageSize: p.PageSize,
		AllPages: p.AllPages,
		Trips:    trips,
	}
}
