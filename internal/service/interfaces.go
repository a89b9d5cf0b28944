package service

import (
	"context"

	"github.com/MKhiriev/osphor/models"
)

// AuthService covers the account lifecycle: registration, login and
// stateless session tokens.
type AuthService interface {
	// Register validates and normalizes the submitted player, hashes the
	// secret and stores account and player together.
	Register(ctx context.Context, request models.RegisterRequest) (models.Player, error)
	// Login checks the secret against the stored hash and issues a session token.
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)
	// CreateToken signs a session token for username.
	CreateToken(ctx context.Context, username string) (models.Token, error)
	// ParseToken verifies a session token. It never touches the store.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PlayerService reads player records.
type PlayerService interface {
	List(ctx context.Context) ([]models.Player, error)
	Get(ctx context.Context, username string) (models.Player, error)
}

// AppInfoService exposes server version and build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
