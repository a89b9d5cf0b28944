package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/models"
)

// accountRepository is the bbolt-backed implementation of [AccountRepository].
type accountRepository struct {
	db *DB
}

// NewAccountRepository constructs an [AccountRepository] on db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{db: db}
}

// Create writes the account and player entries in one unique write.
func (r *accountRepository) Create(ctx context.Context, account models.Account, player models.Player) error {
	log := logger.FromContext(ctx)

	if account.Username != player.Username {
		return fmt.Errorf("account %q and player %q do not share a key", account.Username, player.Username)
	}

	accountEntry, err := encodeJSON(AccountsTable, account)
	if err != nil {
		return err
	}
	playerEntry, err := encodeJSON(PlayersTable, player)
	if err != nil {
		log.Err(err).Str("username", player.Username).Msg("error encoding player")
		return err
	}

	if err := r.db.WriteUnique(ctx, account.Username, accountEntry, playerEntry); err != nil {
		if !errors.Is(err, ErrConflict) {
			log.Err(err).Str("username", account.Username).Msg("error creating account")
		}
		return err
	}

	return nil
}

// FindByUsername implements [AccountRepository].
func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	account, err := readJSON[models.Account](ctx, r.db, AccountsTable, username)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("username", username).Msg("error reading account")
		}
		return models.Account{}, err
	}
	return account, nil
}

// Exists implements [AccountRepository].
func (r *accountRepository) Exists(ctx context.Context, username string) (bool, error) {
	return r.db.Exists(ctx, AccountsTable, username)
}
