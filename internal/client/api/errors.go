package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers network failures and malformed responses:
	// the backend could not be reached or did not return valid JSON.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned when a cart operation is attempted
	// without a valid token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation marks local input failures that never reach the
	// network (empty username, non-positive quantity, ...).
	ErrValidation = errors.New("validation error")

	// ErrDuplicateCartEntry is the business-rule rejection raised when a
	// strict add targets a product that is already in the cart. It is not
	// a server error; no request is issued.
	ErrDuplicateCartEntry = errors.New("item already in cart")
)

// ServerError is a well-formed non-2xx rejection: the backend answered
// with a {success:false, message} body. The message is user-facing and
// surfaced verbatim as an advisory.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
}
