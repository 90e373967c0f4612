// Package keyring provides durable key/value storage for client credentials.
//
// The session store persists three entries — the bearer token, the serialized
// user record, and the user's identifier — and restores them on the next
// process start. The gateway reads the token entry on every outgoing request
// so that a freshly committed credential is picked up immediately.
//
// # Implementations
//
// Two implementations ship with the package:
//
//   - Memory: process-local map, for tests and ephemeral tooling
//   - File: single JSON file with 0600 permissions, for durable sessions
//
// A Redis-backed implementation lives in integration/keyring/redis for
// deployments that keep client state server-side.
//
// # Usage
//
//	ring, err := keyring.NewFile(filepath.Join(home, ".youthguard", "credentials.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	token, err := ring.Get(ctx, keyring.KeyToken)
//	switch {
//	case errors.Is(err, keyring.ErrKeyNotFound):
//		// not logged in
//	case err != nil:
//		// storage failure
//	default:
//		_ = token
//	}
//
// Corrupt storage surfaces as ErrCorruptStorage; the session layer treats it
// as "no stored session" and purges the entries.
package keyring
