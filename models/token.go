package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claim is the decoded payload of a session token: who the session belongs
// to and until when it is valid.
type Claim struct {
	// Subject is the username the session was issued for.
	Subject string `json:"sub"`

	// Issuer identifies the server that signed the token.
	Issuer string `json:"iss,omitempty"`

	// IssuedAt is the signing time.
	IssuedAt time.Time `json:"iat"`

	// ExpiresAt is the absolute expiration time.
	ExpiresAt time.Time `json:"exp"`
}

// Token wraps a signed session JWT.
//
// It embeds [jwt.Token] for low-level access and keeps the compact signed
// form together with the decoded [Claim]. Only the session engine builds or
// inspects Token internals; everyone else passes it around as a string.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation (header.payload.signature).
	SignedString string `json:"-"`

	// Claim is the decoded session payload.
	Claim Claim `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
