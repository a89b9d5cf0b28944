// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/osphor/internal/logger"
	"go.etcd.io/bbolt"
)

// Table names. Each is a bbolt bucket keyed by username.
const (
	AccountsTable = "accounts"
	PlayersTable  = "players"
)

var tables = []string{AccountsTable, PlayersTable}

// Default retry policy for write transactions.
const (
	DefaultWriteAttempts = 3
	DefaultWriteBackoff  = 10 * time.Millisecond
	DefaultOpenTimeout   = time.Second
)

// DB is the shared handle to the embedded store. It is safe for concurrent
// use: bbolt admits many readers and serializes writers.
type DB struct {
	bolt   *bbolt.DB
	logger *logger.Logger

	attempts uint64
	backoff  time.Duration

	// view and update run read and write transactions. They default to the
	// bbolt handle's View and Update.
	view   func(func(*bbolt.Tx) error) error
	update func(func(*bbolt.Tx) error) error
}

// Option configures [Open].
type Option func(*openOptions)

type openOptions struct {
	attempts uint64
	backoff  time.Duration
	timeout  time.Duration
}

// WithWriteRetry bounds write transactions to attempts tries separated by a
// constant backoff.
func WithWriteRetry(attempts uint64, backoff time.Duration) Option {
	return func(o *openOptions) {
		if attempts > 0 {
			o.attempts = attempts
		}
		if backoff > 0 {
			o.backoff = backoff
		}
	}
}

// WithOpenTimeout limits how long Open waits for the file lock held by
// another process.
func WithOpenTimeout(timeout time.Duration) Option {
	return func(o *openOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// Open opens (creating if needed) the database file at path and makes sure
// every table exists.
func Open(path string, log *logger.Logger, opts ...Option) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	o := openOptions{
		attempts: DefaultWriteAttempts,
		backoff:  DefaultWriteBackoff,
		timeout:  DefaultOpenTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o750); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	bdb, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: o.timeout})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	db := &DB{
		bolt:     bdb,
		logger:   log,
		attempts: o.attempts,
		backoff:  o.backoff,
		view:     bdb.View,
		update:   bdb.Update,
	}
	if err := db.ensureBuckets(); err != nil {
		_ = bdb.Close()
		return nil, err
	}

	log.Info().Str("path", cleanPath).Msg("store opened")
	return db, nil
}

// Close closes the underlying bbolt database.
func (db *DB) Close() error {
	if db == nil || db.bolt == nil {
		return nil
	}
	return db.bolt.Close()
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.bolt.Path()
}

func (db *DB) ensureBuckets() error {
	return db.bolt.Update(func(tx *bbolt.Tx) error {
		for _, table := range tables {
			if _, err := tx.CreateBucketIfNotExists([]byte(table)); err != nil {
				return fmt.Errorf("create %s bucket: %w", table, err)
			}
		}
		return nil
	})
}

func bucket(tx *bbolt.Tx, table string) (*bbolt.Bucket, error) {
	b := tx.Bucket([]byte(table))
	if b == nil {
		return nil, fmt.Errorf("%w: %s", ErrBucketMissing, table)
	}
	return b, nil
}
