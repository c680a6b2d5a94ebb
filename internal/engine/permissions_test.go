package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatorHasAllPermissions(t *testing.T) {
	for _, p := range []Permission{PermInvitePlayers, PermKickPlayers, PermCloseEnrollment, PermFinishGame, PermModifySettings} {
		assert.True(t, RoleCreator.Has(p))
	}
}

func TestPlayerAndSpectatorHaveNoPermissions(t *testing.T) {
	for _, role := range []Role{RolePlayer, RoleSpectator} {
		for _, p := range []Permission{PermInvitePlayers, PermKickPlayers, PermCloseEnrollment, PermFinishGame, PermModifySettings} {
			assert.False(t, role.Has(p))
		}
	}
}
