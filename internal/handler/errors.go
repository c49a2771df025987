package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/trip-booking/backend/internal/domain"
	"github.com/pkordes/trip-booking/backend/internal/handler/gen"
)

// internalMessage is the only text a 500 response ever carries.
const internalMessage = "internal server error"

// malformedBodyMessage answers any request body that does not decode.
const malformedBodyMessage = "request body must be a JSON object with RFC 3339 dates"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorDetailCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}})
}

// writeServiceError translates an error into a status code and body.
// This is the only place error kinds become HTTP statuses. Unclassified
// errors are logged with the request ID and answered with a generic 500.
// It serves as the strict handler's response error hook, so every error a
// Server method returns lands here.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)

	var status int
	switch kind {
	case domain.KindInvalidArgument, domain.KindValidation, domain.KindConflict, domain.KindPreconditionFailed:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, gen.ErrorDetailCodeInternal, internalMessage)
		return
	}

	writeError(w, status, gen.ErrorDetailCode(kind.String()), messageOf(kind, err))
}

// writeRequestError answers a request body the strict handler could not
// decode. Bodies cut off by the max body size middleware get a 413; anything
// else is a validation failure.
func (s *Server) writeRequestError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, gen.ErrorDetailCodeRequestTooLarge, "request body too large")
		return
	}
	s.writeServiceError(w, r, domain.Fail(domain.ErrValidation, malformedBodyMessage))
}

// writeParamError answers a path or query parameter that does not bind to
// its declared type.
func (s *Server) writeParamError(w http.ResponseWriter, r *http.Request, err error) {
	reason := "invalid parameter"
	var paramErr *gen.InvalidParamFormatError
	if errors.As(err, &paramErr) {
		switch paramErr.ParamName {
		case "page", "pageSize":
			reason = paramErr.ParamName + " must be an integer"
		default:
			reason = paramErr.ParamName + " must be a valid UUID"
		}
	}
	s.writeServiceError(w, r, domain.Fail(domain.ErrInvalidArgument, reason))
}

// messageOf returns the caller-safe reason attached to err, falling back to a
// fixed message per kind so wrapped causes never leak.
func messageOf(kind domain.Kind, err error) string {
	if reason := domain.ReasonOf(err); reason != "" {
		return reason
	}
	switch kind {
	case domain.KindInvalidArgument:
		return "invalid argument"
	case domain.KindValidation:
		return "invalid request"
	case domain.KindNotFound:
		return "not found"
	case domain.KindConflict:
		return "conflict"
	default:
		return "precondition failed"
	}
}
