package keyring

import "context"

// Credential entry keys. The session store writes all three together on
// successful authentication and removes all three on logout or invalidation.
const (
	// KeyToken holds the opaque bearer credential.
	KeyToken = "token"
	// KeyUser holds the serialized authenticated-user record.
	KeyUser = "user"
	// KeyUserID holds a convenience copy of the user's identifier,
	// sent as the user-id header on profile requests.
	KeyUserID = "userId"
)

// Storage is durable client-side key/value storage for credentials.
// It survives process restarts (except the in-memory implementation, which
// exists for tests and short-lived tools).
//
// Implementations must be safe for concurrent use: the session store writes
// entries while the gateway reads the token on every outgoing request.
type Storage interface {
	// Get returns the value for key, or ErrKeyNotFound if absent.
	Get(ctx context.Context, key string) (string, error)
	// Set stores the value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every entry. Clearing empty storage is not an error.
	Clear(ctx context.Context) error
}
