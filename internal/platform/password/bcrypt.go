// Package password provides the one-way password hashing used by the
// credential store. bcrypt is salted and deliberately slow; the scheme is
// intentionally not compatible with legacy unsalted digests.
package password

import "golang.org/x/crypto/bcrypt"

// DummyDigest is a valid bcrypt digest of a throwaway value. Login compares
// against it when no stored hash exists so that bcrypt always runs,
// mitigating user-enumeration timing attacks.
const DummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// BcryptHasher hashes and verifies passwords with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the default cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash produces a salted digest of the plaintext. Identical inputs yield
// different digests because of the embedded salt.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare reports whether plaintext matches the stored digest.
// It returns a non-nil error on mismatch.
func (h *BcryptHasher) Compare(digest, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
}
