// Package invitations holds pending game invitations: Pending → Accepted,
// Declined, or Expired, all terminal and immutable once reached.
package invitations

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
	StatusExpired  Status = "expired"
)

type Invitation struct {
	ID           uuid.UUID
	GameID       uuid.UUID
	InviterID    uuid.UUID
	InviteeEmail string
	Status       Status
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

func (i Invitation) isExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
