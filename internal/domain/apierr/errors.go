// Package apierr defines the error taxonomy for the backend boundary.
// Every failure leaving the request pipeline is one of these, so call
// sites can react uniformly without inspecting raw transport details.
package apierr

import (
	"errors"
	"fmt"
)

// Sentinel errors for transport-level conditions that call sites special-case.
var (
	// ErrUnauthenticated marks an HTTP 401. The pipeline evicts the local
	// session before surfacing it.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrRouteNotFound marks an HTTP 404. A few write endpoints compensate
	// for routes the backend is known to be missing; everything else treats
	// it as a plain transport failure.
	ErrRouteNotFound = errors.New("route not found")
)

// TransportError is a failure not attributable to business logic: network
// error, timeout, or a non-2xx status without a usable body.
type TransportError struct {
	Op     string // method + path, for logs
	Status int    // HTTP status, 0 when the request never completed
	Err    error  // underlying cause, may be a sentinel above
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: http %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BusinessError is a failure signalled by the envelope's business code on
// a transport-successful response. Message is already extracted through
// the msg -> message -> "Error" fallback chain.
type BusinessError struct {
	Code    int
	Message string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("business error %d: %s", e.Code, e.Message)
}

// IsUnauthenticated reports whether err stems from an HTTP 401.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// IsRouteNotFound reports whether err stems from an HTTP 404.
func IsRouteNotFound(err error) bool {
	return errors.Is(err, ErrRouteNotFound)
}

// ClientMessage returns the message a user-facing surface should show for
// err. Business messages pass through verbatim; transport details are
// collapsed so internals never leak into the UI.
func ClientMessage(err error) string {
	var bizErr *BusinessError
	if errors.As(err, &bizErr) {
		return bizErr.Message
	}

	switch {
	case errors.Is(err, ErrUnauthenticated):
		return "Session expired, please log in again"
	case errors.Is(err, ErrRouteNotFound):
		return "The requested operation is not available"
	default:
		return "Network error, please try again"
	}
}
