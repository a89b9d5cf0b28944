package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/models"
)

// playerRepository is the bbolt-backed implementation of [PlayerRepository].
type playerRepository struct {
	db *DB
}

// NewPlayerRepository constructs a [PlayerRepository] on db.
func NewPlayerRepository(db *DB, logger *logger.Logger) PlayerRepository {
	logger.Debug().Msg("creating player repository")
	return &playerRepository{db: db}
}

func (r *playerRepository) FindByUsername(ctx context.Context, username string) (models.Player, error) {
	player, err := readJSON[models.Player](ctx, r.db, PlayersTable, username)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("username", username).Msg("error reading player")
		}
		return models.Player{}, err
	}
	return player, nil
}

func (r *playerRepository) ListAll(ctx context.Context) ([]models.Player, error) {
	players, err := listJSON[models.Player](ctx, r.db, PlayersTable)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing players")
		return nil, err
	}
	return players, nil
}
