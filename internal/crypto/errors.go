package crypto

import "errors"

var (
	// ErrEmptySecret is returned when hashing an empty secret.
	ErrEmptySecret = errors.New("secret cannot be empty")
	// ErrCorruptHash is returned when a stored hash cannot be parsed.
	ErrCorruptHash = errors.New("corrupt password hash")
)
