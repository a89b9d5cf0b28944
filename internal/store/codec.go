package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// readJSON reads key from table and decodes it into a T.
func readJSON[T any](ctx context.Context, db *DB, table, key string) (T, error) {
	var out T

	raw, err := db.ReadOne(ctx, table, key)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %s/%s: %w", ErrSerialization, table, key, err)
	}

	return out, nil
}

// listJSON decodes every value of table. A single undecodable value fails
// the whole call.
func listJSON[T any](ctx context.Context, db *DB, table string) ([]T, error) {
	raws, err := db.ListAll(ctx, table)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%w: %s entry #%d: %w", ErrSerialization, table, i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func encodeJSON(table string, v any) (Entry, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %s: %w", ErrSerialization, table, err)
	}
	return Entry{Table: table, Value: raw}, nil
}
