// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/metrics"
	"github.com/sethvargo/go-retry"
	"go.etcd.io/bbolt"
)

// Entry is one value of a unique write, destined for Table.
type Entry struct {
	Table string
	Value []byte
}

// ReadOne returns a copy of the value stored under key, or ErrNotFound.
func (db *DB) ReadOne(ctx context.Context, table, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if key == "" {
		return nil, ErrEmptyKey
	}

	var value []byte
	err := db.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, table)
		if err != nil {
			return err
		}
		stored := b.Get([]byte(key))
		if stored == nil {
			return ErrNotFound
		}
		// bbolt memory is only valid inside the transaction
		value = bytes.Clone(stored)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// ListAll returns copies of every value in table, in key order, read inside
// a single transaction.
func (db *DB) ListAll(ctx context.Context, table string) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var values [][]byte
	err := db.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, table)
		if err != nil {
			return err
		}
		values = [][]byte{}
		return b.ForEach(func(_, v []byte) error {
			values = append(values, bytes.Clone(v))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

// Exists reports whether key is present in table.
func (db *DB) Exists(ctx context.Context, table, key string) (bool, error) {
	_, err := db.ReadOne(ctx, table, key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// WriteUnique inserts key into every entry's table inside one write
// transaction, so either all tables receive the key or none does.
//
// The transaction first checks each table for key and aborts with
// ErrConflict if any already holds it; conflicts are final. Any other
// failure (missing table, put, commit) is retried with a constant backoff
// up to the configured number of attempts. Each failed attempt is logged
// and, once attempts run out, the last error is returned wrapped in ErrStore.
func (db *DB) WriteUnique(ctx context.Context, key string, entries ...Entry) error {
	log := logger.FromContext(ctx)

	if key == "" {
		return ErrEmptyKey
	}
	if len(entries) == 0 {
		return fmt.Errorf("no entries to write for key %q", key)
	}

	backoff := retry.WithMaxRetries(db.attempts-1, retry.NewConstant(db.backoff))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		err := db.update(func(tx *bbolt.Tx) error {
			return putUnique(tx, key, entries)
		})
		switch {
		case err == nil:
			metrics.RecordStoreWrite(metrics.WriteCommitted)
			return nil
		case errors.Is(err, ErrConflict):
			metrics.RecordStoreWrite(metrics.WriteConflict)
			return err
		default:
			metrics.RecordStoreWrite(metrics.WriteRetried)
			log.Warn().Err(err).
				Str("key", key).
				Int("attempt", attempt).
				Uint64("max_attempts", db.attempts).
				Msg("write transaction failed")
			return retry.RetryableError(err)
		}
	})
	if err == nil || errors.Is(err, ErrConflict) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return err
	}

	metrics.RecordStoreWrite(metrics.WriteExhausted)
	log.Error().Err(err).Str("key", key).Int("attempts", attempt).Msg("write transaction gave up")
	return fmt.Errorf("%w after %d attempt(s): %w", ErrStore, attempt, err)
}

func putUnique(tx *bbolt.Tx, key string, entries []Entry) error {
	k := []byte(key)

	buckets := make([]*bbolt.Bucket, len(entries))
	for i, e := range entries {
		b, err := bucket(tx, e.Table)
		if err != nil {
			return err
		}
		if b.Get(k) != nil {
			return fmt.Errorf("%w: %s/%s", ErrConflict, e.Table, key)
		}
		buckets[i] = b
	}

	for i, e := range entries {
		if err := buckets[i].Put(k, e.Value); err != nil {
			return fmt.Errorf("put %s/%s: %w", e.Table, key, err)
		}
	}

	return nil
}
