// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/osphor/internal/crypto"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Hashing.Iterations == 0 || cfg.Hashing.MemoryKiB == 0 || cfg.Hashing.Parallelism == 0 {
		return fmt.Errorf("%w: argon2 costs must be positive", ErrInvalidHashingConfigs)
	}
	if cfg.Hashing.MemoryKiB > crypto.MaxMemoryKiB || cfg.Hashing.Iterations > crypto.MaxIterations {
		return fmt.Errorf("%w: argon2 costs above m=%d,t=%d could not be verified", ErrInvalidHashingConfigs, crypto.MaxMemoryKiB, crypto.MaxIterations)
	}
	if cfg.Hashing.SaltLength < 8 || cfg.Hashing.KeyLength < 16 {
		return fmt.Errorf("%w: salt must be >= 8 bytes and key >= 16 bytes", ErrInvalidHashingConfigs)
	}
	if cfg.Hashing.Workers < 1 {
		return fmt.Errorf("%w: at least one hashing worker is required", ErrInvalidHashingConfigs)
	}

	if cfg.Storage.DBFile == "" || cfg.Storage.SchemaFile == "" {
		return fmt.Errorf("%w: database and schema files are required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.WriteAttempts == 0 {
		return fmt.Errorf("%w: write attempts must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	return nil
}

// DBPath returns the database file path resolved against Dir.
func (s Storage) DBPath() string {
	return s.resolve(s.DBFile)
}

// SchemaPath returns the schema file path resolved against Dir.
func (s Storage) SchemaPath() string {
	return s.resolve(s.SchemaFile)
}

func (s Storage) resolve(path string) string {
	if filepath.IsAbs(path) || s.Dir == "" {
		return path
	}
	return filepath.Join(s.Dir, path)
}
