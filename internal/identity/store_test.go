package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swarm-blackjack/tablecore/internal/apierrors"
)

func TestRegisterAndLogin(t *testing.T) {
	s := NewStore()

	u, err := s.Register("user@example.com", "MyP@ssw0rd")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	logged, err := s.Login("user@example.com", "MyP@ssw0rd")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := NewStore()
	_, err := s.Register("dup@example.com", "MyP@ssw0rd")
	require.NoError(t, err)

	_, err = s.Register("dup@example.com", "Another1@Pass")
	assert.ErrorIs(t, err, apierrors.ErrUserAlreadyExists)
}

func TestLoginUnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	s := NewStore()
	_, err := s.Register("known@example.com", "MyP@ssw0rd")
	require.NoError(t, err)

	_, errUnknown := s.Login("nope@example.com", "whatever")
	_, errWrong := s.Login("known@example.com", "WrongPass1!")

	assert.Equal(t, errUnknown, errWrong)
	assert.ErrorIs(t, errUnknown, apierrors.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	s := NewStore()
	u, err := s.Register("inactive@example.com", "MyP@ssw0rd")
	require.NoError(t, err)
	require.NoError(t, s.SetActive(u.ID, false))

	_, err = s.Login("inactive@example.com", "MyP@ssw0rd")
	assert.ErrorIs(t, err, apierrors.ErrAccountInactive)
}

func TestChangePassword(t *testing.T) {
	s := NewStore()
	u, err := s.Register("change@example.com", "MyP@ssw0rd")
	require.NoError(t, err)

	require.NoError(t, s.ChangePassword(u.ID, "MyP@ssw0rd", "NewP@ssw0rd2"))

	_, err = s.Login("change@example.com", "NewP@ssw0rd2")
	assert.NoError(t, err)
}

func TestGetUnknownUser(t *testing.T) {
	s := NewStore()
	_, err := s.Get(uuid.New())
	assert.ErrorIs(t, err, apierrors.ErrUserNotFound)
}
