// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/models"
)

type catalogNormalizer struct{}

// NewNormalizer returns the whitelist-merge [Normalizer].
func NewNormalizer() Normalizer {
	return &catalogNormalizer{}
}

// Normalize implements [Normalizer].
func (n *catalogNormalizer) Normalize(ctx context.Context, submission models.PlayerSubmission, catalog models.Catalog) models.Player {
	log := logger.FromContext(ctx)

	data := make(map[string]models.Value, len(catalog.Fields))
	for _, field := range catalog.Fields {
		raw, ok := submission.Data[field.Name]
		if !ok {
			data[field.Name] = field.Default
			continue
		}

		var submitted models.Value
		if err := json.Unmarshal(raw, &submitted); err != nil {
			log.Debug().
				Err(err).
				Str("field", field.Name).
				Msg("submitted value is not a scalar, using default")
			data[field.Name] = field.Default
			continue
		}

		if !field.Type.Known() {
			// no type to check against, keep whatever scalar was sent
			data[field.Name] = submitted
			continue
		}

		coerced, ok := field.Type.Coerce(submitted)
		if !ok {
			log.Debug().
				Str("field", field.Name).
				Str("type", string(field.Type)).
				Stringer("value", submitted).
				Msg("submitted value does not fit field type, using default")
			data[field.Name] = field.Default
			continue
		}
		data[field.Name] = coerced
	}

	for key := range submission.Data {
		if _, ok := data[key]; !ok {
			log.Debug().Str("field", key).Str("username", submission.Username).Msg("dropping field absent from catalog")
		}
	}

	return models.Player{
		Username: submission.Username,
		Display:  submission.Display,
		Avatar:   submission.Avatar,
		Data:     data,
	}
}
