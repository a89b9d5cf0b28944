package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/store"
	"github.com/MKhiriev/osphor/models"
)

type playerService struct {
	players store.PlayerRepository
	logger  *logger.Logger
}

// NewPlayerService constructs a [PlayerService] over players.
func NewPlayerService(players store.PlayerRepository, logger *logger.Logger) PlayerService {
	return &playerService{players: players, logger: logger}
}

// List returns every registered player. A single undecodable record fails
// the whole listing (see store.ErrSerialization).
func (s *playerService) List(ctx context.Context) ([]models.Player, error) {
	players, err := s.players.ListAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing players failed")
		return nil, fmt.Errorf("listing players failed: %w", err)
	}
	return players, nil
}

// Get returns the player registered as username, or store.ErrNotFound.
func (s *playerService) Get(ctx context.Context, username string) (models.Player, error) {
	if username == "" {
		return models.Player{}, ErrInvalidDataProvided
	}

	player, err := s.players.FindByUsername(ctx, username)
	if err != nil {
		return models.Player{}, fmt.Errorf("player lookup failed: %w", err)
	}
	return player, nil
}
