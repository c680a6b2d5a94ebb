// Package gameservice implements the Game Registry & Service Façade: it
// holds all live games by UUID under a coarse lock and exposes the
// operations a request front-end calls, translating engine-level failures
// into the stable error taxonomy.
package gameservice

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/swarm-blackjack/tablecore/internal/apierrors"
	"github.com/swarm-blackjack/tablecore/internal/cards"
	"github.com/swarm-blackjack/tablecore/internal/engine"
	"github.com/swarm-blackjack/tablecore/internal/identity"
	"github.com/swarm-blackjack/tablecore/internal/invitations"
)

// Service holds all live games under a single lock and resolves
// user_id -> email via the Identity Store it shares with the rest of the
// application.
type Service struct {
	mu    sync.Mutex
	games map[uuid.UUID]*engine.Game

	identity    *identity.Store
	invitations *invitations.Registry

	defaultEnrollmentTimeoutSeconds int
	maxEnrollmentTimeoutSeconds     int
}

func NewService(identityStore *identity.Store, invitationRegistry *invitations.Registry, defaultTimeout, maxTimeout int) *Service {
	return &Service{
		games:                           make(map[uuid.UUID]*engine.Game),
		identity:                        identityStore,
		invitations:                     invitationRegistry,
		defaultEnrollmentTimeoutSeconds: defaultTimeout,
		maxEnrollmentTimeoutSeconds:     maxTimeout,
	}
}

// OpenGame is one entry in the get_open_games listing.
type OpenGame struct {
	GameID               uuid.UUID
	EnrolledCount        int
	EnrollmentClosesAt   time.Time
	TimeRemainingSeconds int64
}

func (s *Service) resolveEmail(userID uuid.UUID) (string, error) {
	u, err := s.identity.Get(userID)
	if err != nil {
		return "", err
	}
	return u.Email, nil
}

// CreateGame resolves creator_id to an email, constructs a Game with the
// creator auto-enrolled, and inserts it under a fresh UUID.
func (s *Service) CreateGame(creatorID uuid.UUID, timeoutSeconds *int) (*engine.Game, error) {
	email, err := s.resolveEmail(creatorID)
	if err != nil {
		return nil, err
	}

	timeout := s.defaultEnrollmentTimeoutSeconds
	if timeoutSeconds != nil {
		if *timeoutSeconds > s.maxEnrollmentTimeoutSeconds {
			return nil, apierrors.InvalidTimeout(s.maxEnrollmentTimeoutSeconds)
		}
		timeout = *timeoutSeconds
	}

	g, err := engine.New(creatorID, email, timeout)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g
	return g, nil
}

// GetOpenGames scans games and returns those not finished and still open
// for enrollment, excluding excludeUser's own games if given.
func (s *Service) GetOpenGames(excludeUser *uuid.UUID) []OpenGame {
	s.mu.Lock()
	defer s.mu.Unlock()

	var open []OpenGame
	for _, g := range s.games {
		if g.Finished || !g.IsEnrollmentOpen() {
			continue
		}
		if excludeUser != nil && g.IsCreator(*excludeUser) {
			continue
		}
		open = append(open, OpenGame{
			GameID:               g.ID,
			EnrolledCount:        len(g.Players),
			EnrollmentClosesAt:   g.EnrollmentExpiresAt(),
			TimeRemainingSeconds: g.EnrollmentTimeRemaining(),
		})
	}
	return open
}

func (s *Service) lockedGame(gameID uuid.UUID) (*engine.Game, error) {
	g, ok := s.games[gameID]
	if !ok {
		return nil, apierrors.ErrGameNotFound
	}
	return g, nil
}

// EnrollPlayer resolves email, enforces enrollment is open and there is
// room, invokes the engine, then registers the Player role.
func (s *Service) EnrollPlayer(gameID, userID uuid.UUID) error {
	email, err := s.resolveEmail(userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lockedGame(gameID)
	if err != nil {
		return err
	}

	if !g.IsEnrollmentOpen() {
		return apierrors.ErrEnrollmentClosed
	}
	if !g.CanEnroll() {
		return apierrors.ErrGameFull
	}

	if err := g.AddPlayer(email); err != nil {
		return err
	}
	g.RegisterParticipant(userID, email)
	return nil
}

// CloseEnrollment permission-checks and closes enrollment, returning the
// finalized turn order.
func (s *Service) CloseEnrollment(gameID, userID uuid.UUID) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lockedGame(gameID)
	if err != nil {
		return nil, err
	}
	if err := g.CloseEnrollment(userID); err != nil {
		return nil, err
	}
	return append([]string(nil), g.TurnOrder...), nil
}

func (s *Service) withGame(gameID, userID uuid.UUID, op func(g *engine.Game, email string) error) error {
	email, err := s.resolveEmail(userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lockedGame(gameID)
	if err != nil {
		return err
	}

	return op(g, email)
}

// DrawCard translates user_id to email and invokes the engine draw.
func (s *Service) DrawCard(gameID, userID uuid.UUID) (cards.Card, error) {
	email, err := s.resolveEmail(userID)
	if err != nil {
		return cards.Card{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lockedGame(gameID)
	if err != nil {
		return cards.Card{}, err
	}

	return g.DrawCard(email)
}

// Stand translates user_id to email and invokes the engine stand.
func (s *Service) Stand(gameID, userID uuid.UUID) error {
	return s.withGame(gameID, userID, func(g *engine.Game, email string) error {
		return g.Stand(email)
	})
}

// SetAceValue translates user_id to email and invokes the engine toggle.
func (s *Service) SetAceValue(gameID, userID uuid.UUID, cardID uuid.UUID, asEleven bool) error {
	return s.withGame(gameID, userID, func(g *engine.Game, email string) error {
		return g.SetAceValue(email, cardID, asEleven)
	})
}

// KickPlayer permission-checks and removes target from the game.
func (s *Service) KickPlayer(gameID, kickerID, targetID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lockedGame(gameID)
	if err != nil {
		return err
	}
	return g.KickPlayer(kickerID, targetID)
}

// FinishGame permission-checks and marks the game finished.
func (s *Service) FinishGame(gameID, userID uuid.UUID) (engine.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lockedGame(gameID)
	if err != nil {
		return engine.Result{}, err
	}
	if err := g.FinishGame(userID); err != nil {
		return engine.Result{}, err
	}
	return g.CalculateResults(), nil
}

// GetGameState returns the game held by the registry itself, not a copy.
// The registry lock is released on return, so later reads of the returned
// game are not guarded by it.
func (s *Service) GetGameState(gameID uuid.UUID) (*engine.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lockedGame(gameID)
}

// GetGameResults returns the computed results of a finished game.
func (s *Service) GetGameResults(gameID uuid.UUID) (engine.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lockedGame(gameID)
	if err != nil {
		return engine.Result{}, err
	}
	if !g.Finished {
		return engine.Result{}, apierrors.ErrGameAlreadyFinished
	}
	return g.CalculateResults(), nil
}

// CreateInvitation requires inviter to hold InvitePlayers on the target
// game before delegating to the Invitation Registry.
func (s *Service) CreateInvitation(gameID, inviterID uuid.UUID, inviteeEmail string) (invitations.Invitation, error) {
	s.mu.Lock()
	g, err := s.lockedGame(gameID)
	if err != nil {
		s.mu.Unlock()
		return invitations.Invitation{}, err
	}
	if !g.ParticipantRole(inviterID).Has(engine.PermInvitePlayers) {
		s.mu.Unlock()
		return invitations.Invitation{}, apierrors.ErrInsufficientPermissions
	}
	expiresAt := g.EnrollmentExpiresAt()
	s.mu.Unlock()

	return s.invitations.Create(gameID, inviterID, inviteeEmail, expiresAt), nil
}

// AcceptInvitation accepts the invitation then enrolls the invitee.
func (s *Service) AcceptInvitation(invitationID uuid.UUID, inviteeUserID uuid.UUID) (invitations.Invitation, error) {
	inv, err := s.invitations.Accept(invitationID)
	if err != nil {
		return invitations.Invitation{}, err
	}

	if err := s.EnrollPlayer(inv.GameID, inviteeUserID); err != nil {
		return invitations.Invitation{}, err
	}
	return inv, nil
}
