package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a request body fails shape validation:
// it does not decode, a required field is missing, or a value is too long.
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrInvalidArgument is returned for bad paging input. It is detected before
// any storage access.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrConflict is returned when a booking for the same client and trip
// already exists.
var ErrConflict = errors.New("conflict")

// ErrPreconditionFailed is returned when the current state forbids the
// operation: a client still has bookings, or the trip has already started.
var ErrPreconditionFailed = errors.New("precondition failed")

// ErrStorageUnavailable wraps every fault the service could not classify.
// Its details must never reach the caller.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Kind is the stable category of an error, used at the HTTP boundary to pick
// a status code.
type Kind int

const (
	KindNone Kind = iota
	KindInvalidArgument
	KindValidation
	KindNotFound
	KindConflict
	KindPreconditionFailed
	KindStorageUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindValidation:
		return "validation_error"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPreconditionFailed:
		return "precondition_failed"
	default:
		return "storage_unavailable"
	}
}

// KindOf collapses err to its category. Anything that does not wrap one of
// the sentinels above is KindStorageUnavailable.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrPreconditionFailed):
		return KindPreconditionFailed
	default:
		return KindStorageUnavailable
	}
}

// Failure attaches a short, caller-safe reason to one of the sentinel errors.
// errors.Is(f, f.Err) holds, so callers keep matching on the sentinel.
type Failure struct {
	Err    error
	Reason string
}

// Fail builds a *Failure for the given sentinel and reason.
func Fail(sentinel error, reason string) error {
	return &Failure{Err: sentinel, Reason: reason}
}

func (f *Failure) Error() string {
	return f.Err.Error() + ": " + f.Reason
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// ReasonOf returns the caller-safe reason carried by err, or "" when err
// carries none.
func ReasonOf(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason
	}
	return ""
}
