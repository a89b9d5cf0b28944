// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllSections(t *testing.T) {
	path := writeTempFile(t, `{
		"app": {"token_sign_key": "k", "token_issuer": "iss", "token_duration": "12h", "version": "0.1.0"},
		"hashing": {"iterations": 3, "memory_kib": 2048, "parallelism": 2, "salt_length": 16, "key_length": 32, "workers": 2},
		"storage": {"dir": "/data", "db_file": "x.db", "schema_file": "s.yaml", "cache_schema": true, "write_attempts": 4, "write_backoff": "50ms", "open_timeout": "2s"},
		"server": {"http_address": "0.0.0.0:1234", "request_timeout": "10s", "shutdown_timeout": "3s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "0.1.0", cfg.App.Version)

	assert.Equal(t, uint32(3), cfg.Hashing.Iterations)
	assert.Equal(t, uint32(2048), cfg.Hashing.MemoryKiB)
	assert.Equal(t, uint8(2), cfg.Hashing.Parallelism)
	assert.Equal(t, 2, cfg.Hashing.Workers)

	assert.Equal(t, "/data", cfg.Storage.Dir)
	assert.Equal(t, "x.db", cfg.Storage.DBFile)
	assert.Equal(t, "s.yaml", cfg.Storage.SchemaFile)
	assert.True(t, cfg.Storage.CacheSchema)
	assert.Equal(t, uint64(4), cfg.Storage.WriteAttempts)
	assert.Equal(t, 50*time.Millisecond, cfg.Storage.WriteBackoff)
	assert.Equal(t, 2*time.Second, cfg.Storage.OpenTimeout)

	assert.Equal(t, "0.0.0.0:1234", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := parseJSON(writeTempFile(t, `{"app": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds number", input: `1000`, want: 1000},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, `"2h0m0s"`, string(b))
}
