// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation and record normalization for
// player registration and login.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - Normalizer: reconciles a submitted player record against the field
//     catalog so that only catalog keys are ever persisted.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable and testable validation strategies.
package validators

import (
	"context"

	"github.com/MKhiriev/osphor/models"
)

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// Normalizer merges submitted player data against a catalog.
type Normalizer interface {
	// Normalize builds the player record for a submission. Its Data holds
	// exactly the catalog's keys: submitted scalars win when they fit the
	// field type, anything else takes the catalog default and unknown keys
	// are dropped whatever they carry.
	Normalize(ctx context.Context, submission models.PlayerSubmission, catalog models.Catalog) models.Player
}
