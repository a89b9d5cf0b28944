package service

import "errors"

var (
	// ErrInvalidDataProvided wraps input validation failures.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	// ErrUnauthorized is returned for an unknown username or a wrong secret.
	// The two cases are indistinguishable to callers.
	ErrUnauthorized = errors.New("unauthorized")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
