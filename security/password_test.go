package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse battery", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))
	assert.True(t, hasher.Verify("correct horse battery", hash))
	assert.False(t, hasher.Verify("wrong password", hash))
}

func TestPasswordHasher_SaltsEveryHash(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)
	first, err := hasher.Hash("same-secret")
	require.NoError(t, err)
	second, err := hasher.Hash("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_VerifyAcrossCosts(t *testing.T) {
	t.Parallel()

	hash, err := NewPasswordHasher(bcrypt.MinCost).Hash("secret-value")
	require.NoError(t, err)

	assert.True(t, NewPasswordHasher(bcrypt.MinCost+1).Verify("secret-value", hash))
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)
	assert.False(t, hasher.Verify("secret", ""))
	assert.False(t, hasher.Verify("secret", "not-a-bcrypt-hash"))
}

func TestNewPasswordHasher_OutOfRangeCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewPasswordHasher(12).cost)
}
