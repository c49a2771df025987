package handler

import (
	"context"

	"github.com/pkordes/trip-booking/backend/internal/domain"
	"github.com/pkordes/trip-booking/backend/internal/handler/gen"
)

// assignedMessage is the body of a successful POST /trips/{idTrip}/clients.
const assignedMessage = "client successfully assigned to the trip"

// DeleteClient handles DELETE /clients/{idClient}.
func (s *Server) DeleteClient(ctx context.Context, req gen.DeleteClientRequestObject) (gen.DeleteClientResponseObject, error) {
	if err := s.booking.DeleteClient(ctx, req.IdClient); err != nil {
		return nil, err
	}
	return gen.DeleteClient204Response{}, nil
}

// AssignClientToTrip handles POST /trips/{idTrip}/clients.
// The body's validate tags come from openapi.yaml. The personal identifier
// is only required to be present; its format is never checked.
func (s *Server) AssignClientToTrip(ctx context.Context, req gen.AssignClientToTripRequestObject) (gen.AssignClientToTripResponseObject, error) {
	if err := validateStruct(s.validate, req.Body); err != nil {
		return nil, domain.Fail(domain.ErrValidation, err.Error())
	}

	if _, err := s.booking.AssignClientToTrip(ctx, req.IdTrip, requestToRegistration(req.Body)); err != nil {
		return nil, err
	}
	return gen.AssignClientToTrip200JSONResponse{Message: assignedMessage}, nil
}

// requestToRegistration converts the generated request body to a domain.Registration.
// PaymentDate is optional and already parsed as an RFC 3339 timestamp.
func requestToRegistration(body *gen.AssignRequest) domain.Registration {
	return domain.Registration{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Email:       body.Email,
		Telephone:   body.Telephone,
		Pesel:       body.Pesel,
		PaymentDate: body.PaymentDate,
	}
}
