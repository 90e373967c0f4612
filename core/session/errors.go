package session

import "errors"

var (
	// ErrNilAuthenticator is returned when creating a store without an authenticator.
	ErrNilAuthenticator = errors.New("session: authenticator is required")
	// ErrNilStorage is returned when creating a store without credential storage.
	ErrNilStorage = errors.New("session: credential storage is required")
)

// User-facing fallback messages when the server supplies none.
const (
	loginFailedMessage    = "Login failed. Please try again."
	registerFailedMessage = "Registration failed. Please try again."
)
