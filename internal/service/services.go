package service

import (
	"github.com/MKhiriev/osphor/internal/config"
	"github.com/MKhiriev/osphor/internal/crypto"
	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/schema"
	"github.com/MKhiriev/osphor/internal/store"
	"github.com/MKhiriev/osphor/internal/validators"
	"github.com/MKhiriev/osphor/internal/workers"
	"github.com/MKhiriev/osphor/models"
)

type Services struct {
	AuthService    AuthService
	PlayerService  PlayerService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	loader schema.Loader,
	pool *workers.Pool,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewPasswordHasher(crypto.Params{
		Iterations:  cfg.Hashing.Iterations,
		MemoryKiB:   cfg.Hashing.MemoryKiB,
		Parallelism: cfg.Hashing.Parallelism,
		SaltLength:  cfg.Hashing.SaltLength,
		KeyLength:   cfg.Hashing.KeyLength,
	})

	return &Services{
		AuthService: NewAuthService(AuthDependencies{
			Accounts:   storages.AccountRepository,
			Schema:     loader,
			Validator:  validators.NewPlayerValidator(),
			Normalizer: validators.NewNormalizer(),
			Hasher:     hasher,
			Pool:       pool,
		}, cfg.App, logger),
		PlayerService:  NewPlayerService(storages.PlayerRepository, logger),
		AppInfoService: appInfo,
	}, nil
}
