// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a config that passes validation on its own.
func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.App.TokenSignKey = "sign-key"
	return cfg
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.NotNil(t, b.parseFlags)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "from-env"}},
		&StructuredConfig{App: App{TokenIssuer: "from-flags", Version: "9.9.9"}},
	)
	b.withDefaults()
	b.configs[0].App.TokenSignKey = "k"

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenIssuer)
	assert.Equal(t, "9.9.9", cfg.App.Version)
}

func TestWithDefaults_FillsGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{TokenSignKey: "k"}})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, uint64(DefaultWriteAttempts), cfg.Storage.WriteAttempts)
	assert.Equal(t, DefaultHashWorkers, cfg.Hashing.Workers)
	assert.Equal(t, "server/osphor.db", cfg.Storage.DBPath())
}

func TestWithFlags_Error(t *testing.T) {
	b := newConfigBuilder()
	b.parseFlags = func() (*StructuredConfig, error) { return nil, assert.AnError }

	_, err := b.withFlags().build()
	assert.ErrorIs(t, err, assert.AnError)
}

func TestWithJSON_LoadsPathFromEarlierSource(t *testing.T) {
	path := writeTempFile(t, `{"app": {"token_sign_key": "from-json", "token_duration": "1h"}}`)

	b := newConfigBuilder()
	b.parseFlags = func() (*StructuredConfig, error) {
		return &StructuredConfig{JSONFilePath: path}, nil
	}

	cfg, err := b.withFlags().withJSON().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "zero memory", mutate: func(c *StructuredConfig) { c.Hashing.MemoryKiB = 0 }, wantErr: ErrInvalidHashingConfigs},
		{name: "memory above verify limit", mutate: func(c *StructuredConfig) { c.Hashing.MemoryKiB = 1<<20 + 1 }, wantErr: ErrInvalidHashingConfigs},
		{name: "iterations above verify limit", mutate: func(c *StructuredConfig) { c.Hashing.Iterations = 65 }, wantErr: ErrInvalidHashingConfigs},
		{name: "short salt", mutate: func(c *StructuredConfig) { c.Hashing.SaltLength = 4 }, wantErr: ErrInvalidHashingConfigs},
		{name: "no workers", mutate: func(c *StructuredConfig) { c.Hashing.Workers = 0 }, wantErr: ErrInvalidHashingConfigs},
		{name: "no schema", mutate: func(c *StructuredConfig) { c.Storage.SchemaFile = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no write attempts", mutate: func(c *StructuredConfig) { c.Storage.WriteAttempts = 0 }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStorage_ResolvePaths(t *testing.T) {
	s := Storage{Dir: "/srv", DBFile: "a.db", SchemaFile: "/etc/schema.yaml"}
	assert.Equal(t, "/srv/a.db", s.DBPath())
	assert.Equal(t, "/etc/schema.yaml", s.SchemaPath())

	s.Dir = ""
	assert.Equal(t, "a.db", s.DBPath())
}
