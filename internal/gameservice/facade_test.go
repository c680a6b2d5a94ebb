package gameservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swarm-blackjack/tablecore/internal/apierrors"
	"github.com/swarm-blackjack/tablecore/internal/engine"
	"github.com/swarm-blackjack/tablecore/internal/identity"
	"github.com/swarm-blackjack/tablecore/internal/invitations"
)

func newTestService(t *testing.T) (*Service, *identity.Store) {
	t.Helper()
	store := identity.NewStore()
	invReg := invitations.NewRegistry()
	return NewService(store, invReg, 300, 3600), store
}

func TestCreateGameAutoEnrollsCreator(t *testing.T) {
	svc, store := newTestService(t)
	u, err := store.Register("creator@example.com", "MyP@ssw0rd")
	require.NoError(t, err)

	g, err := svc.CreateGame(u.ID, nil)
	require.NoError(t, err)
	assert.Contains(t, g.Players, "creator@example.com")
}

func TestEnrollCloseDrawHappyPath(t *testing.T) {
	svc, store := newTestService(t)
	creator, err := store.Register("u@x.com", "TestP@ssw0rd")
	require.NoError(t, err)

	g, err := svc.CreateGame(creator.ID, nil)
	require.NoError(t, err)

	turnOrder, err := svc.CloseEnrollment(g.ID, creator.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u@x.com"}, turnOrder)

	for !g.Finished {
		if !g.CanPlayerAct("u@x.com") {
			break
		}
		_, err := svc.DrawCard(g.ID, creator.ID)
		if err != nil {
			break
		}
	}
}

func TestEnrollPlayerUnknownGame(t *testing.T) {
	svc, store := newTestService(t)
	u, err := store.Register("u@x.com", "TestP@ssw0rd")
	require.NoError(t, err)

	err = svc.EnrollPlayer([16]byte{}, u.ID)
	assert.ErrorIs(t, err, apierrors.ErrGameNotFound)
}

func TestInvitationFlowEnrollsInvitee(t *testing.T) {
	svc, store := newTestService(t)
	creator, err := store.Register("creator@example.com", "TestP@ssw0rd")
	require.NoError(t, err)
	invitee, err := store.Register("invitee@example.com", "TestP@ssw0rd")
	require.NoError(t, err)

	g, err := svc.CreateGame(creator.ID, nil)
	require.NoError(t, err)

	inv, err := svc.CreateInvitation(g.ID, creator.ID, "invitee@example.com")
	require.NoError(t, err)
	assert.Equal(t, invitations.StatusPending, inv.Status)

	_, err = svc.AcceptInvitation(inv.ID, invitee.ID)
	require.NoError(t, err)

	state, err := svc.GetGameState(g.ID)
	require.NoError(t, err)
	assert.Contains(t, state.Players, "invitee@example.com")
}

func TestInvitationRequiresPermission(t *testing.T) {
	svc, store := newTestService(t)
	creator, err := store.Register("creator@example.com", "TestP@ssw0rd")
	require.NoError(t, err)
	bystander, err := store.Register("bystander@example.com", "TestP@ssw0rd")
	require.NoError(t, err)

	g, err := svc.CreateGame(creator.ID, nil)
	require.NoError(t, err)

	_, err = svc.CreateInvitation(g.ID, bystander.ID, "invitee@example.com")
	assert.ErrorIs(t, err, apierrors.ErrInsufficientPermissions)
}
