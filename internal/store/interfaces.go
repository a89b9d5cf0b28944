package store

import (
	"context"

	"github.com/MKhiriev/osphor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// AccountRepository persists accounts. An account is always created
// together with its player record.
type AccountRepository interface {
	// Create atomically stores account and player under account.Username.
	// Returns ErrConflict if either table already holds the username.
	Create(ctx context.Context, account models.Account, player models.Player) error
	// FindByUsername returns the stored account or ErrNotFound.
	FindByUsername(ctx context.Context, username string) (models.Account, error)
	// Exists reports whether an account with username is stored.
	Exists(ctx context.Context, username string) (bool, error)
}

// PlayerRepository reads player records.
type PlayerRepository interface {
	// FindByUsername returns the stored player or ErrNotFound.
	FindByUsername(ctx context.Context, username string) (models.Player, error)
	// ListAll returns every stored player. Any undecodable record fails the
	// call with ErrSerialization.
	ListAll(ctx context.Context) ([]models.Player, error)
}
