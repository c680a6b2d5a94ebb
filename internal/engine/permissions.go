package engine

import (
	"time"

	"github.com/google/uuid"
)

// Role is a participant's role within one game.
type Role string

const (
	RoleCreator   Role = "creator"
	RolePlayer    Role = "player"
	RoleSpectator Role = "spectator"
)

// Permission is a capability gating a specific engine mutation.
type Permission string

const (
	PermInvitePlayers   Permission = "invite_players"
	PermKickPlayers     Permission = "kick_players"
	PermCloseEnrollment Permission = "close_enrollment"
	PermFinishGame      Permission = "finish_game"
	PermModifySettings  Permission = "modify_settings"
)

var creatorPermissions = map[Permission]struct{}{
	PermInvitePlayers:   {},
	PermKickPlayers:     {},
	PermCloseEnrollment: {},
	PermFinishGame:      {},
	PermModifySettings:  {},
}

// Has reports whether role carries permission. Creator holds every
// permission; Player and Spectator hold none.
func (r Role) Has(permission Permission) bool {
	if r != RoleCreator {
		return false
	}
	_, ok := creatorPermissions[permission]
	return ok
}

// Participant is a per-game, per-user_id role assignment.
type Participant struct {
	UserID   uuid.UUID
	Email    string
	Role     Role
	JoinedAt time.Time
}
