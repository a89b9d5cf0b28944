package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns account secrets into self-describing hashes and checks
// secrets against them.
//
// The encoded form carries the algorithm id, salt and cost parameters, so
// the cost profile can change between deployments without invalidating
// hashes that are already stored.
type PasswordHasher interface {
	// Hash derives a new encoded hash for secret with a fresh random salt.
	// Returns ErrEmptySecret when secret is empty.
	Hash(secret []byte) (string, error)

	// Verify recomputes the digest with the parameters embedded in encoded.
	// A well-formed hash that does not match returns (false, nil).
	// A malformed hash returns ErrCorruptHash.
	Verify(encoded string, secret []byte) (bool, error)
}
