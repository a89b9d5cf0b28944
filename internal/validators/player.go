package validators

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/osphor/models"
)

// Field name constants used to scope validation to a subset of fields.
const (
	// FieldUsername targets the account/player key.
	FieldUsername = "username"

	// FieldDisplay targets the free-form display name.
	FieldDisplay = "display"

	// FieldAvatar targets the avatar reference.
	FieldAvatar = "avatar"

	// FieldSecret targets the secret carried next to a register or login request.
	FieldSecret = "secret"
)

// Length limits, in runes.
const (
	MaxUsernameLength = 32
	MaxDisplayLength  = 64
	MaxAvatarLength   = 512
)

// PlayerValidator checks registration and login input.
type PlayerValidator struct{}

// NewPlayerValidator returns a [Validator] for player, account, register and
// login models.
func NewPlayerValidator() Validator {
	return &PlayerValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types:
//   - models.Player / *models.Player (default: username, display, avatar)
//   - models.Account / *models.Account (default: username)
//   - models.RegisterRequest / *models.RegisterRequest (default: all fields)
//   - models.LoginRequest / *models.LoginRequest (default: username, secret)
//
// Returns ErrUnsupportedType for anything else.
func (v *PlayerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Player:
		return v.validatePlayer(value, nil, defaultFields(fields, FieldUsername, FieldDisplay, FieldAvatar))
	case *models.Player:
		return v.validatePlayer(*value, nil, defaultFields(fields, FieldUsername, FieldDisplay, FieldAvatar))

	case models.Account:
		return v.validatePlayer(models.Player{Username: value.Username}, nil, defaultFields(fields, FieldUsername))
	case *models.Account:
		return v.validatePlayer(models.Player{Username: value.Username}, nil, defaultFields(fields, FieldUsername))

	case models.RegisterRequest:
		return v.validatePlayer(submitted(value.Player), value.Secret, defaultFields(fields, FieldUsername, FieldDisplay, FieldAvatar, FieldSecret))
	case *models.RegisterRequest:
		return v.validatePlayer(submitted(value.Player), value.Secret, defaultFields(fields, FieldUsername, FieldDisplay, FieldAvatar, FieldSecret))

	case models.LoginRequest:
		return v.validatePlayer(models.Player{Username: value.Account.Username}, value.Secret, defaultFields(fields, FieldUsername, FieldSecret))
	case *models.LoginRequest:
		return v.validatePlayer(models.Player{Username: value.Account.Username}, value.Secret, defaultFields(fields, FieldUsername, FieldSecret))

	default:
		return ErrUnsupportedType
	}
}

func submitted(s models.PlayerSubmission) models.Player {
	return models.Player{Username: s.Username, Display: s.Display, Avatar: s.Avatar}
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func (v *PlayerValidator) validatePlayer(player models.Player, secret []byte, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(player.Username); err != nil {
				return err
			}
		case FieldDisplay:
			if utf8.RuneCountInString(player.Display) > MaxDisplayLength {
				return ErrDisplayTooLong
			}
		case FieldAvatar:
			if utf8.RuneCountInString(player.Avatar) > MaxAvatarLength {
				return ErrAvatarTooLong
			}
		case FieldSecret:
			if len(secret) == 0 {
				return ErrEmptySecret
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	for _, r := range username {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.' {
			continue
		}
		return ErrInvalidUsername
	}
	return nil
}
