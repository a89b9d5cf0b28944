// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/osphor/internal/config"
	"github.com/MKhiriev/osphor/internal/crypto"
	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/metrics"
	"github.com/MKhiriev/osphor/internal/schema"
	"github.com/MKhiriev/osphor/internal/store"
	"github.com/MKhiriev/osphor/internal/utils"
	"github.com/MKhiriev/osphor/internal/validators"
	"github.com/MKhiriev/osphor/internal/workers"
	"github.com/MKhiriev/osphor/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	accounts store.AccountRepository
	schema   schema.Loader

	validator  validators.Validator
	normalizer validators.Normalizer

	// hasher runs on pool so request goroutines only wait for the result.
	hasher crypto.PasswordHasher
	pool   *workers.Pool

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// AuthDependencies groups the collaborators of [NewAuthService].
type AuthDependencies struct {
	Accounts   store.AccountRepository
	Schema     schema.Loader
	Validator  validators.Validator
	Normalizer validators.Normalizer
	Hasher     crypto.PasswordHasher
	Pool       *workers.Pool
}

// NewAuthService constructs a new AuthService from deps and the session
// settings in cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(deps AuthDependencies, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accounts:      deps.Accounts,
		schema:        deps.Schema,
		validator:     deps.Validator,
		normalizer:    deps.Normalizer,
		hasher:        deps.Hasher,
		pool:          deps.Pool,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates an account and its player record.
//
// Steps: validate input, reject a taken username early, normalize custom
// data against the current catalog, assign the default rank, hash the
// secret on the worker pool and write both records in one unique write.
//
// Returns the stored player or:
//   - ErrInvalidDataProvided if username or secret are missing or malformed.
//   - store.ErrConflict if the username is taken, either before hashing or
//     by a concurrent registration that committed first.
//   - schema.ErrSchema, store.ErrStore or another wrapped internal error.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.Player, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("username", request.Player.Username).Msg("invalid registration data provided")
		return models.Player{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	username := request.Player.Username

	taken, err := a.accounts.Exists(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("username lookup failed")
		return models.Player{}, fmt.Errorf("username lookup failed: %w", err)
	}
	if taken {
		log.Info().Str("username", username).Msg("username is already taken")
		return models.Player{}, fmt.Errorf("%w: %s", store.ErrConflict, username)
	}

	catalog, err := a.schema.Load(ctx)
	if err != nil {
		log.Err(err).Msg("player data schema could not be loaded")
		return models.Player{}, fmt.Errorf("player data schema could not be loaded: %w", err)
	}

	player := a.normalizer.Normalize(ctx, request.Player, catalog)
	player.Rank = models.DefaultRank()

	hash, err := a.hashSecret(ctx, request.Secret)
	if err != nil {
		log.Err(err).Str("username", username).Msg("secret hashing failed")
		return models.Player{}, fmt.Errorf("secret hashing failed: %w", err)
	}

	account := models.Account{Username: username, PasswordHash: hash}
	if err := a.accounts.Create(ctx, account, player); err != nil {
		log.Err(err).Str("username", username).Msg("account creation ended with error")
		return models.Player{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Str("username", username).Msg("player registered")
	return player, nil
}

// Login authenticates an existing account and issues a session token.
//
// Returns the token or:
//   - ErrInvalidDataProvided if the secret is missing.
//   - ErrUnauthorized if the account does not exist, the username could
//     never have been registered or the secret does not match.
//   - A wrapped crypto.ErrCorruptHash when the stored hash is unreadable;
//     this is an integrity fault, not a credential failure.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request, validators.FieldSecret); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	username := request.Account.Username

	// a name registration would refuse cannot own an account
	if err := a.validator.Validate(ctx, request, validators.FieldUsername); err != nil {
		log.Info().Err(err).Str("username", username).Msg("login for impossible username")
		return models.Token{}, ErrUnauthorized
	}

	account, err := a.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info().Str("username", username).Msg("login for unknown account")
			return models.Token{}, ErrUnauthorized
		}
		log.Err(err).Str("username", username).Msg("account search by username failed")
		return models.Token{}, fmt.Errorf("account search by username failed: %w", err)
	}

	ok, err := workers.Do(ctx, a.pool, func() (bool, error) {
		return a.hasher.Verify(account.PasswordHash, request.Secret)
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("secret verification failed")
		return models.Token{}, fmt.Errorf("secret verification failed: %w", err)
	}
	if !ok {
		log.Info().Str("username", username).Msg("wrong secret")
		return models.Token{}, ErrUnauthorized
	}

	return a.CreateToken(ctx, username)
}

// CreateToken issues a signed session token for username.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, username string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	metrics.RecordSessionIssued()
	return token, nil
}

// ParseToken validates and parses a raw session token.
//
// Expired and otherwise invalid tokens are logged separately and both
// returned as ErrTokenIsExpiredOrInvalid, with the utils error wrapped
// alongside for diagnostics.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			metrics.RecordSessionValidation(metrics.SessionExpired)
			log.Debug().Err(err).Msg("session token is expired")
		} else {
			metrics.RecordSessionValidation(metrics.SessionInvalid)
			log.Debug().Err(err).Msg("session token is invalid")
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	metrics.RecordSessionValidation(metrics.SessionValid)
	return token, nil
}

func (a *authService) hashSecret(ctx context.Context, secret []byte) (string, error) {
	start := time.Now()
	defer func() { metrics.RecordPasswordHash(time.Since(start)) }()

	return workers.Do(ctx, a.pool, func() (string, error) {
		return a.hasher.Hash(secret)
	})
}
