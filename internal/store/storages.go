package store

import "github.com/MKhiriev/osphor/internal/logger"

// Storages bundles the repositories built on one shared [DB] handle.
type Storages struct {
	AccountRepository AccountRepository
	PlayerRepository  PlayerRepository
}

// NewStorages builds every repository on db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		PlayerRepository:  NewPlayerRepository(db, logger),
	}
}
