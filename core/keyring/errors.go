package keyring

import "errors"

var (
	// ErrKeyNotFound is returned when the requested entry does not exist.
	ErrKeyNotFound = errors.New("keyring: key not found")
	// ErrCorruptStorage is returned when the backing store cannot be decoded.
	// Callers treat this as "no stored session" and purge the storage.
	ErrCorruptStorage = errors.New("keyring: storage is corrupt")
)
