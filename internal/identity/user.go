// Package identity manages registered users: account creation, login, and
// activation state. It holds no durable state — everything lives for the
// life of the process, as an in-memory registry under a single lock.
package identity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	IsActive     bool
	LastLogin    time.Time
}

// Snapshot returns a copy safe to hand to callers outside the store's lock.
func (u User) Snapshot() User {
	return u
}
