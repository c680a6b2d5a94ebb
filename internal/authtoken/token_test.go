package authtoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	verifier := NewVerifier("test-secret")

	userID := uuid.New()
	token, expiresAt, err := issuer.Issue(userID, "user@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 2*time.Second)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("secret-a", time.Hour)
	verifier := NewVerifier("secret-b")

	token, _, err := issuer.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Hour)
	verifier := NewVerifier("test-secret")

	token, _, err := issuer.Issue(uuid.New(), "user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbageToken(t *testing.T) {
	verifier := NewVerifier("test-secret")
	_, err := verifier.Verify("not-a-jwt")
	assert.Error(t, err)
}
