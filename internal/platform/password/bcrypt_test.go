package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	digest, err := hasher.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "password123", digest)

	assert.NoError(t, hasher.Compare(digest, "password123"))
	assert.Error(t, hasher.Compare(digest, "wrong-password"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	first, err := hasher.Hash("password123")
	require.NoError(t, err)
	second, err := hasher.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDummyDigest_NeverMatches(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()

	// The dummy digest exists to equalize login timing; no plaintext used
	// by the system may verify against it.
	assert.Error(t, hasher.Compare(DummyDigest, ""))
	assert.Error(t, hasher.Compare(DummyDigest, "password123"))
}
