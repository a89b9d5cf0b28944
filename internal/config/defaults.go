package config

import "time"

// Built-in values used for every setting no other source provides.
const (
	DefaultHTTPAddress     = "0.0.0.0:3145"
	DefaultDir             = "./server"
	DefaultDBFile          = "osphor.db"
	DefaultSchemaFile      = "schema.yaml"
	DefaultTokenIssuer     = "osphor"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultWriteAttempts   = 3
	DefaultWriteBackoff    = 10 * time.Millisecond
	DefaultOpenTimeout     = time.Second
)

// OWASP-recommended Argon2id profile.
const (
	DefaultHashIterations  = 1
	DefaultHashMemoryKiB   = 64 * 1024
	DefaultHashParallelism = 4
	DefaultHashSaltLength  = 16
	DefaultHashKeyLength   = 32
	DefaultHashWorkers     = 4
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       "dev",
		},
		Hashing: Hashing{
			Iterations:  DefaultHashIterations,
			MemoryKiB:   DefaultHashMemoryKiB,
			Parallelism: DefaultHashParallelism,
			SaltLength:  DefaultHashSaltLength,
			KeyLength:   DefaultHashKeyLength,
			Workers:     DefaultHashWorkers,
		},
		Storage: Storage{
			Dir:           DefaultDir,
			DBFile:        DefaultDBFile,
			SchemaFile:    DefaultSchemaFile,
			WriteAttempts: DefaultWriteAttempts,
			WriteBackoff:  DefaultWriteBackoff,
			OpenTimeout:   DefaultOpenTimeout,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}
