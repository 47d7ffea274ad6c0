package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := hasher.Hash("pw123456")
	require.NoError(t, err)

	assert.NotEqual(t, "pw123456", hash)
	assert.True(t, hasher.Verify("pw123456", hash))
	assert.False(t, hasher.Verify("wrong", hash))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	first, err := hasher.Hash("orgpw")
	require.NoError(t, err)
	second, err := hasher.Hash("orgpw")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	hasher, err := NewBcryptHasher(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, hasher.cost)

	_, err = NewBcryptHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

func TestBcryptHasher_VerifyRejectsGarbageHash(t *testing.T) {
	hasher, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, hasher.Verify("pw", "not-a-bcrypt-hash"))
}
