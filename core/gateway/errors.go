package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrNetworkUnreachable is returned when no HTTP response was received
	// at all: connection refused, DNS failure, or timeout. The existing
	// session is left untouched; retry is a caller-level decision.
	ErrNetworkUnreachable = errors.New("unable to connect to server")

	// ErrUnauthorized is returned for HTTP 401. By the time the caller sees
	// it, credential storage has been cleared and the session-invalidated
	// callback has fired.
	ErrUnauthorized = errors.New("credential rejected by server")

	// ErrInvalidConfig is returned when gateway configuration is incomplete.
	ErrInvalidConfig = errors.New("invalid gateway config")
)

// User-facing fallback messages for classified failures.
const (
	networkErrorMessage   = "Unable to connect to server. Please check your connection."
	genericErrorMessage   = "An unexpected error occurred. Please try again."
	sessionExpiredMessage = "Your session has expired. Please log in again."
)

// Error is an application-level rejection: the server responded, the request
// was authenticated (or authentication was not the problem), but the
// operation was refused. Message carries the server-supplied explanation and
// is safe to show to the user.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Message maps any error produced by the gateway to a user-facing string.
// Application errors yield the server's message, network failures a
// connectivity hint, and anything else the supplied fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var apiErr *Error
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	case errors.Is(err, ErrNetworkUnreachable):
		return networkErrorMessage
	case errors.Is(err, ErrUnauthorized):
		return sessionExpiredMessage
	default:
		return fallback
	}
}
