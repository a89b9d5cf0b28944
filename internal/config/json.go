package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Hashing struct {
		Iterations  uint32 `json:"iterations"`
		MemoryKiB   uint32 `json:"memory_kib"`
		Parallelism uint8  `json:"parallelism"`
		SaltLength  uint32 `json:"salt_length"`
		KeyLength   uint32 `json:"key_length"`
		Workers     int    `json:"workers"`
	} `json:"hashing,omitempty"`

	Storage struct {
		Dir           string   `json:"dir"`
		DBFile        string   `json:"db_file"`
		SchemaFile    string   `json:"schema_file"`
		CacheSchema   bool     `json:"cache_schema"`
		WriteAttempts uint64   `json:"write_attempts"`
		WriteBackoff  Duration `json:"write_backoff"`
		OpenTimeout   Duration `json:"open_timeout"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Hashing: Hashing{
			Iterations:  jsonCfg.Hashing.Iterations,
			MemoryKiB:   jsonCfg.Hashing.MemoryKiB,
			Parallelism: jsonCfg.Hashing.Parallelism,
			SaltLength:  jsonCfg.Hashing.SaltLength,
			KeyLength:   jsonCfg.Hashing.KeyLength,
			Workers:     jsonCfg.Hashing.Workers,
		},
		Storage: Storage{
			Dir:           jsonCfg.Storage.Dir,
			DBFile:        jsonCfg.Storage.DBFile,
			SchemaFile:    jsonCfg.Storage.SchemaFile,
			CacheSchema:   jsonCfg.Storage.CacheSchema,
			WriteAttempts: jsonCfg.Storage.WriteAttempts,
			WriteBackoff:  time.Duration(jsonCfg.Storage.WriteBackoff),
			OpenTimeout:   time.Duration(jsonCfg.Storage.OpenTimeout),
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
