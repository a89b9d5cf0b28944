package store

import "errors"

// Sentinel errors returned by the gateway and repositories. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a key is absent from a table.
	ErrNotFound = errors.New("record was not found")

	// ErrConflict is returned when a unique write targets a key that already
	// exists in one of its tables. Conflicts are never retried.
	ErrConflict = errors.New("record already exists")

	// ErrStore is returned when a write transaction still fails after all
	// attempts. The last attempt's error is wrapped alongside it.
	ErrStore = errors.New("store write failed")

	// ErrSerialization is returned when a stored value cannot be decoded
	// or a value cannot be encoded for storage.
	ErrSerialization = errors.New("store serialization error")

	// ErrBucketMissing is returned when a transaction cannot open a table.
	ErrBucketMissing = errors.New("table does not exist")

	// ErrEmptyKey is returned for operations on an empty key.
	ErrEmptyKey = errors.New("key is required")
)
