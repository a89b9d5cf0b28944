// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2idID = "argon2id"

// Upper bounds on the cost parameters accepted from a stored hash. Verify
// refuses anything above them instead of allocating what the record asks for.
const (
	MaxMemoryKiB  = 1 << 20 // 1 GiB
	MaxIterations = 64
	maxKeyLength  = 1 << 10
)

// Params is an Argon2id cost profile.
type Params struct {
	Iterations  uint32
	MemoryKiB   uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams returns the OWASP-recommended profile:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - salt:        16 bytes
//   - key length:  32 bytes (256 bits)
func DefaultParams() Params {
	return Params{
		Iterations:  1,
		MemoryKiB:   64 * 1024,
		Parallelism: 4,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// argon2Hasher is the private implementation of [PasswordHasher].
type argon2Hasher struct {
	params Params
	rand   io.Reader
}

// NewPasswordHasher constructs an Argon2id [PasswordHasher] that hashes new
// secrets with params. Verification always uses the parameters stored in the
// hash itself.
func NewPasswordHasher(params Params) PasswordHasher {
	return &argon2Hasher{params: params, rand: rand.Reader}
}

// Hash implements [PasswordHasher]. The result has the PHC string form
//
//	$argon2id$v=19$m=<KiB>,t=<iterations>,p=<threads>$<salt>$<key>
//
// with salt and key in unpadded standard base64.
func (h *argon2Hasher) Hash(secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}

	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey(secret, salt, h.params.Iterations, h.params.MemoryKiB, h.params.Parallelism, h.params.KeyLength)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idID,
		argon2.Version,
		h.params.MemoryKiB,
		h.params.Iterations,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [PasswordHasher].
func (h *argon2Hasher) Verify(encoded string, secret []byte) (bool, error) {
	params, salt, expected, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(secret, salt, params.Iterations, params.MemoryKiB, params.Parallelism, params.KeyLength)

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

func decodeHash(encoded string) (Params, []byte, []byte, error) {
	var p Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, fmt.Errorf("%w: expected 6 segments", ErrCorruptHash)
	}
	if parts[1] != argon2idID {
		return p, nil, nil, fmt.Errorf("%w: unsupported algorithm %q", ErrCorruptHash, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %w", ErrCorruptHash, err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptHash, version)
	}

	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemoryKiB, &p.Iterations, &threads); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %w", ErrCorruptHash, err)
	}
	if threads == 0 || threads > 255 || p.Iterations == 0 || p.MemoryKiB == 0 {
		return p, nil, nil, fmt.Errorf("%w: invalid cost parameters", ErrCorruptHash)
	}
	if p.MemoryKiB > MaxMemoryKiB || p.Iterations > MaxIterations {
		return p, nil, nil, fmt.Errorf("%w: cost parameters m=%d,t=%d exceed limits", ErrCorruptHash, p.MemoryKiB, p.Iterations)
	}
	p.Parallelism = uint8(threads)

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: salt: %w", ErrCorruptHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: key: %w", ErrCorruptHash, err)
	}
	if len(salt) == 0 || len(key) == 0 || len(key) > maxKeyLength {
		return p, nil, nil, fmt.Errorf("%w: invalid salt or key length", ErrCorruptHash)
	}
	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))

	return p, salt, key, nil
}
