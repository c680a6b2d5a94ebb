package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordSuccess(t *testing.T) {
	hash, err := HashPassword("MySecureP@ssw0rd")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
}

func TestHashPasswordEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestHashUniqueSalts(t *testing.T) {
	h1, err := HashPassword("MySecureP@ssw0rd")
	require.NoError(t, err)
	h2, err := HashPassword("MySecureP@ssw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("MySecureP@ssw0rd")
	require.NoError(t, err)

	ok, err := VerifyPassword("MySecureP@ssw0rd", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("WrongPassword", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	_, err := VerifyPassword("anything", "not-a-hash")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestVerifyPasswordEmpty(t *testing.T) {
	_, err := VerifyPassword("", "$argon2id$v=19$m=19456,t=2,p=1$abc$def")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
