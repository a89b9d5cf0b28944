// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the osphor HTTP API.
//
// The primary abstraction is [ServerAdapter], which hides request encoding,
// bearer header handling and status mapping from callers. Error values defined
// in errors.go are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/osphor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the osphor server.
type ServerAdapter interface {
	// SetToken stores the session token attached to authenticated requests.
	// Login calls it on success.
	SetToken(token string)

	// Token returns the stored session token, or an empty string.
	Token() string

	// Register creates an account for player protected by secret and returns
	// the player record as stored by the server.
	Register(ctx context.Context, player models.Player, secret string) (models.Player, error)

	// Login exchanges username and secret for a session token, which is also
	// stored via SetToken.
	Login(ctx context.Context, username, secret string) (string, error)

	// Validate asks the server to verify token. An invalid token is not an
	// error; it yields a response with Valid set to false.
	Validate(ctx context.Context, token string) (models.ValidateResponse, error)

	// ListPlayers returns every registered player.
	ListPlayers(ctx context.Context) ([]models.Player, error)

	// GetPlayer returns a single player or an error wrapping [ErrNotFound].
	GetPlayer(ctx context.Context, username string) (models.Player, error)

	// Me returns the player owning the stored session token.
	Me(ctx context.Context) (models.Player, error)
}
