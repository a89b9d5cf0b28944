// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/models"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Fields []fieldEntry `yaml:"fields"`
}

type fieldEntry struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Default any    `yaml:"default"`
}

// Option configures a file loader.
type Option func(*fileLoader)

// WithCache keeps the parsed catalog and reuses it until the file's
// modification time or size changes.
func WithCache() Option {
	return func(l *fileLoader) { l.cache = true }
}

type fileLoader struct {
	path  string
	cache bool

	mu      sync.Mutex
	catalog models.Catalog
	modTime time.Time
	size    int64
	loaded  bool
}

// NewFileLoader returns a [Loader] reading the YAML catalog at path.
// Without [WithCache] the file is parsed on every Load.
func NewFileLoader(path string, opts ...Option) Loader {
	l := &fileLoader{path: path}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load implements [Loader].
func (l *fileLoader) Load(ctx context.Context) (models.Catalog, error) {
	log := logger.FromContext(ctx)

	info, err := os.Stat(l.path)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	if l.cache {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.loaded && info.ModTime().Equal(l.modTime) && info.Size() == l.size {
			return l.catalog, nil
		}
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		log.Err(err).Str("path", l.path).Msg("error parsing player data schema")
		return models.Catalog{}, err
	}
	log.Debug().Str("path", l.path).Int("fields", len(catalog.Fields)).Msg("player data schema loaded")

	if l.cache {
		l.catalog = catalog
		l.modTime = info.ModTime()
		l.size = info.Size()
		l.loaded = true
	}

	return catalog, nil
}

// Parse decodes a YAML catalog document.
//
// Every field needs a name and a type, and names must be unique. A default
// is coerced to its field's type; a missing default becomes the type's zero
// value. Fields with an unrecognized type tag get a null default instead of
// failing the whole document.
func Parse(data []byte) (models.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return models.Catalog{}, fmt.Errorf("%w: empty document", ErrSchema)
		}
		return models.Catalog{}, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	catalog := models.Catalog{Fields: make([]models.Field, 0, len(file.Fields))}
	seen := make(map[string]struct{}, len(file.Fields))

	for i, entry := range file.Fields {
		if entry.Name == "" {
			return models.Catalog{}, fmt.Errorf("%w: field #%d has no name", ErrSchema, i)
		}
		if entry.Type == "" {
			return models.Catalog{}, fmt.Errorf("%w: field %q has no type", ErrSchema, entry.Name)
		}
		if _, dup := seen[entry.Name]; dup {
			return models.Catalog{}, fmt.Errorf("%w: duplicate field %q", ErrSchema, entry.Name)
		}
		seen[entry.Name] = struct{}{}

		def, err := materialize(models.FieldType(entry.Type), entry.Default)
		if err != nil {
			return models.Catalog{}, fmt.Errorf("%w: field %q: %w", ErrSchema, entry.Name, err)
		}

		catalog.Fields = append(catalog.Fields, models.Field{
			Name:    entry.Name,
			Type:    models.FieldType(entry.Type),
			Default: def,
		})
	}

	return catalog, nil
}

func materialize(t models.FieldType, raw any) (models.Value, error) {
	if !t.Known() {
		return models.NullValue(), nil
	}
	if raw == nil {
		return t.Zero(), nil
	}

	v, err := models.ValueOf(raw)
	if err != nil {
		return models.Value{}, err
	}

	coerced, ok := t.Coerce(v)
	if !ok {
		return models.Value{}, fmt.Errorf("default %s is not a valid %s", v, t)
	}
	return coerced, nil
}
