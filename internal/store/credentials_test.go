package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesBcrypt(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, isBcryptHash(hash))
	assert.NotEqual(t, "secret123", hash)
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("secret123", hash))
	assert.False(t, VerifyPassword("wrong", hash))
}

func TestVerifyPasswordLegacySHA256(t *testing.T) {
	// SHA-256 hex of "secret123", the format older installations stored.
	legacy := hashSHA256("secret123")

	assert.False(t, isBcryptHash(legacy))
	assert.True(t, VerifyPassword("secret123", legacy))
	assert.False(t, VerifyPassword("wrong", legacy))
}

func TestVerifyPasswordGarbageHash(t *testing.T) {
	assert.False(t, VerifyPassword("secret123", "not-a-hash"))
	assert.False(t, VerifyPassword("secret123", "$2b$garbage"))
}

func TestIsBcryptHashPrefixes(t *testing.T) {
	assert.True(t, isBcryptHash("$2a$10$abcdefghijklmnopqrstuv"))
	assert.True(t, isBcryptHash("$2b$12$abcdefghijklmnopqrstuv"))
	assert.True(t, isBcryptHash("$2y$10$abcdefghijklmnopqrstuv"))
	assert.False(t, isBcryptHash("5e884898da28047151d0e56f8dc62927"))
}
