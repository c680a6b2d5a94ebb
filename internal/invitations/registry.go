package invitations

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/swarm-blackjack/tablecore/internal/apierrors"
)

// Registry holds all invitations under a single lock, keyed by UUID.
type Registry struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*Invitation
	nowFn func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		byID:  make(map[uuid.UUID]*Invitation),
		nowFn: time.Now,
	}
}

// Create stores a new Pending invitation. Permission to invite is resolved
// by the caller (the Service Façade, via the Game Engine) before this is
// called — the registry itself has no notion of roles.
func (r *Registry) Create(gameID, inviterID uuid.UUID, inviteeEmail string, expiresAt time.Time) Invitation {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv := &Invitation{
		ID:           uuid.New(),
		GameID:       gameID,
		InviterID:    inviterID,
		InviteeEmail: inviteeEmail,
		Status:       StatusPending,
		CreatedAt:    r.nowFn(),
		ExpiresAt:    expiresAt,
	}
	r.byID[inv.ID] = inv
	return *inv
}

// Accept transitions a Pending, non-expired invitation to Accepted. A
// Pending invitation observed past expires_at transitions to Expired and
// fails with InvitationExpired instead. Enrolling the invitee into the game
// is the caller's responsibility.
func (r *Registry) Accept(id uuid.UUID) (Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.byID[id]
	if !ok {
		return Invitation{}, apierrors.ErrInvitationNotFound
	}

	if inv.Status != StatusPending {
		return Invitation{}, apierrors.ErrInvitationNotFound
	}

	if inv.isExpired(r.nowFn()) {
		inv.Status = StatusExpired
		return Invitation{}, apierrors.ErrInvitationExpired
	}

	inv.Status = StatusAccepted
	return *inv, nil
}

// Decline transitions a Pending invitation to Declined. Failure is
// idempotent — declining a non-Pending invitation is simply rejected.
func (r *Registry) Decline(id uuid.UUID) (Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.byID[id]
	if !ok {
		return Invitation{}, apierrors.ErrInvitationNotFound
	}
	if inv.Status != StatusPending {
		return Invitation{}, apierrors.ErrInvitationNotFound
	}

	inv.Status = StatusDeclined
	return *inv, nil
}

// GetPendingFor returns all Pending invitations for email, lazily expiring
// any found past their expires_at during the scan.
func (r *Registry) GetPendingFor(email string) []Invitation {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFn()
	var pending []Invitation
	for _, inv := range r.byID {
		if inv.InviteeEmail != email {
			continue
		}
		if inv.Status == StatusPending && inv.isExpired(now) {
			inv.Status = StatusExpired
		}
		if inv.Status == StatusPending {
			pending = append(pending, *inv)
		}
	}
	return pending
}
