package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	// low cost keeps the test fast
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotContains(t, hash, "correct horse battery")

	assert.True(t, hasher.Verify("correct horse battery", hash))
	assert.False(t, hasher.Verify("wrong horse battery", hash))
}

func TestPasswordHasher_HashIsSalted(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash1, err := hasher.Hash("samepassword")
	require.NoError(t, err)
	hash2, err := hasher.Hash("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
	assert.True(t, hasher.Verify("samepassword", hash1))
	assert.True(t, hasher.Verify("samepassword", hash2))
}

func TestPasswordHasher_HashRejectsShortPassword(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("short")
	assert.Empty(t, hash)
	assert.True(t, IsValidation(err))
}

func TestPasswordHasher_HashRejectsOverlongPassword(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Empty(t, hash)
	assert.True(t, IsValidation(err))
}

func TestPasswordHasher_VerifyLegacyTag(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("legacypassword")
	require.NoError(t, err)

	// simulate a hash stored by an older system using the $2y$ tag
	legacy := "$2y$" + hash[len("$2a$"):]
	assert.True(t, hasher.Verify("legacypassword", legacy))
	assert.False(t, hasher.Verify("wrongpassword", legacy))
}

func TestPasswordHasher_VerifyNeverErrors(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty hash", stored: ""},
		{name: "garbage", stored: "not-a-bcrypt-hash"},
		{name: "unsupported scheme", stored: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "truncated bcrypt", stored: "$2b$12$short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Verify("anypassword", tt.stored))
		})
	}
}

func TestNewPasswordHasherClampsCost(t *testing.T) {
	hasher := NewPasswordHasher(99)
	assert.Equal(t, DefaultBcryptCost, hasher.cost)

	hasher = NewPasswordHasher(0)
	assert.Equal(t, DefaultBcryptCost, hasher.cost)

	hasher = NewPasswordHasher(bcrypt.MinCost)
	assert.Equal(t, bcrypt.MinCost, hasher.cost)
}

func TestNormalizeHash(t *testing.T) {
	assert.Equal(t, "$2b$12$abc", normalizeHash("$2y$12$abc"))
	assert.Equal(t, "$2b$12$abc", normalizeHash("$2b$12$abc"))
	assert.Equal(t, "$2a$12$abc", normalizeHash("$2a$12$abc"))
}
