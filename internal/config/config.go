// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the osphor
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Hashing holds the Argon2id cost profile and the size of the hashing
	// worker pool.
	Hashing Hashing `envPrefix:"HASHING_"`

	// Storage holds the embedded store location and write retry settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the session
// token lifecycle and versioning.
type App struct {
	// TokenSignKey is the pre-shared secret used to sign and verify session
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on validation.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Hashing holds the Argon2id parameters used for new password hashes.
// Existing hashes keep verifying with the parameters embedded in them.
type Hashing struct {
	// Iterations is the Argon2 time cost.
	// Env: HASHING_ITERATIONS
	Iterations uint32 `env:"ITERATIONS"`

	// MemoryKiB is the Argon2 memory cost in KiB.
	// Env: HASHING_MEMORY_KIB
	MemoryKiB uint32 `env:"MEMORY_KIB"`

	// Parallelism is the Argon2 thread count.
	// Env: HASHING_PARALLELISM
	Parallelism uint8 `env:"PARALLELISM"`

	// SaltLength is the random salt length in bytes.
	// Env: HASHING_SALT_LENGTH
	SaltLength uint32 `env:"SALT_LENGTH"`

	// KeyLength is the derived key length in bytes.
	// Env: HASHING_KEY_LENGTH
	KeyLength uint32 `env:"KEY_LENGTH"`

	// Workers is the number of goroutines computing hashes concurrently.
	// Env: HASHING_WORKERS
	Workers int `env:"WORKERS"`
}

// Storage groups the configuration of the embedded key-value store and of
// the schema catalog file.
type Storage struct {
	// Dir is the server's working directory. Relative DBFile and SchemaFile
	// paths are resolved against it.
	// Env: STORAGE_DIR
	Dir string `env:"DIR"`

	// DBFile is the bbolt database file.
	// Env: STORAGE_DB_FILE
	DBFile string `env:"DB_FILE"`

	// SchemaFile is the YAML file declaring the player data catalog.
	// Env: STORAGE_SCHEMA_FILE
	SchemaFile string `env:"SCHEMA_FILE"`

	// CacheSchema enables reuse of the parsed catalog until the schema file
	// changes on disk. When false the file is re-read on every write.
	// Env: STORAGE_CACHE_SCHEMA
	CacheSchema bool `env:"CACHE_SCHEMA"`

	// WriteAttempts bounds how many times a failed write transaction is
	// attempted in total.
	// Env: STORAGE_WRITE_ATTEMPTS
	WriteAttempts uint64 `env:"WRITE_ATTEMPTS"`

	// WriteBackoff is the pause between write attempts.
	// Env: STORAGE_WRITE_BACKOFF
	WriteBackoff time.Duration `env:"WRITE_BACKOFF"`

	// OpenTimeout bounds how long opening the database waits for the file lock.
	// Env: STORAGE_OPEN_TIMEOUT
	OpenTimeout time.Duration `env:"OPEN_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3145").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier non-zero fields win, later sources only fill gaps):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
