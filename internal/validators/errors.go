package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrInvalidUsername = errors.New("username may contain only letters, digits, '_', '-' and '.'")
	ErrUsernameTooLong = errors.New("username is too long")
	ErrDisplayTooLong  = errors.New("display name is too long")
	ErrAvatarTooLong   = errors.New("avatar is too long")
	ErrEmptySecret     = errors.New("secret is required")
)
