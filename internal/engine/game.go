// Package engine implements the per-game blackjack state machine: deck,
// enrolled participants, role assignments, turn order, dealer hand, and
// finish logic. All state transitions and invariant checks live here;
// engines never perform I/O.
package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/swarm-blackjack/tablecore/internal/apierrors"
	"github.com/swarm-blackjack/tablecore/internal/cards"
)

const (
	MaxPlayers = 10
	MinPlayers = 1
)

// Game is one live blackjack table, owned exclusively by the Game Registry.
type Game struct {
	ID                      uuid.UUID
	CreatorID               uuid.UUID
	Participants            map[uuid.UUID]*Participant
	Players                 map[string]*Player
	Dealer                  *Player
	AvailableCards          []cards.Card
	Finished                bool
	TurnOrder               []string
	CurrentTurnIndex        int
	EnrollmentTimeoutSecond int
	EnrollmentStartTime     time.Time
	EnrollmentClosed        bool
	Active                  bool
}

// New constructs a game with the creator auto-enrolled as the first Player
// and the Creator participant.
func New(creatorID uuid.UUID, creatorEmail string, enrollmentTimeoutSeconds int) (*Game, error) {
	if creatorEmail == "" {
		return nil, apierrors.ErrInvalidEmail
	}

	g := &Game{
		ID:                      uuid.New(),
		CreatorID:               creatorID,
		Participants:            make(map[uuid.UUID]*Participant),
		Players:                 make(map[string]*Player),
		Dealer:                  NewPlayer(dealerEmail),
		AvailableCards:          cards.NewDeck(),
		TurnOrder:               []string{},
		EnrollmentTimeoutSecond: enrollmentTimeoutSeconds,
		EnrollmentStartTime:     time.Now(),
		Active:                  true,
	}

	g.Players[creatorEmail] = NewPlayer(creatorEmail)
	g.TurnOrder = append(g.TurnOrder, creatorEmail)
	g.Participants[creatorID] = &Participant{
		UserID:   creatorID,
		Email:    creatorEmail,
		Role:     RoleCreator,
		JoinedAt: g.EnrollmentStartTime,
	}

	return g, nil
}

func (g *Game) roleOf(userID uuid.UUID) Role {
	p, ok := g.Participants[userID]
	if !ok {
		return ""
	}
	return p.Role
}

// ParticipantRole exposes a user's role within this game to callers outside
// the package (the Service Façade, resolving invitation permissions).
func (g *Game) ParticipantRole(userID uuid.UUID) Role {
	return g.roleOf(userID)
}

// IsCreator reports whether userID is this game's creator.
func (g *Game) IsCreator(userID uuid.UUID) bool {
	return g.CreatorID == userID
}

// IsEnrollmentOpen reports whether enrollment is still open: not closed and
// the advisory timeout window has not elapsed.
func (g *Game) IsEnrollmentOpen() bool {
	if g.EnrollmentClosed {
		return false
	}
	elapsed := time.Since(g.EnrollmentStartTime)
	return elapsed < time.Duration(g.EnrollmentTimeoutSecond)*time.Second
}

// CanEnroll reports whether there is room and enrollment is open.
func (g *Game) CanEnroll() bool {
	return g.IsEnrollmentOpen() && len(g.Players) < MaxPlayers
}

// EnrollmentExpiresAt is enrollment_start_time + enrollment_timeout_seconds.
func (g *Game) EnrollmentExpiresAt() time.Time {
	return g.EnrollmentStartTime.Add(time.Duration(g.EnrollmentTimeoutSecond) * time.Second)
}

// EnrollmentTimeRemaining returns seconds remaining, 0 if closed or elapsed.
func (g *Game) EnrollmentTimeRemaining() int64 {
	if g.EnrollmentClosed {
		return 0
	}
	remaining := int64(g.EnrollmentTimeoutSecond) - int64(time.Since(g.EnrollmentStartTime).Seconds())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// AddPlayer enrolls email as a new Player if the game is active, not
// finished, enrollment has not been closed, email is non-empty, not already
// enrolled, and there is room. The advisory timeout window is not checked
// here.
func (g *Game) AddPlayer(email string) error {
	if !g.Active {
		return apierrors.ErrGameNotActive
	}
	if g.Finished {
		return apierrors.ErrGameAlreadyFinished
	}
	if g.EnrollmentClosed {
		return apierrors.InvalidPlayerCount(MinPlayers, MaxPlayers, len(g.Players))
	}
	if email == "" {
		return apierrors.ErrInvalidEmail
	}
	if _, exists := g.Players[email]; exists {
		return apierrors.ErrPlayerAlreadyEnrolled
	}
	if len(g.Players) >= MaxPlayers {
		return apierrors.ErrGameFull
	}

	g.Players[email] = NewPlayer(email)
	g.TurnOrder = append(g.TurnOrder, email)
	return nil
}

// RegisterParticipant records userID/email as a Player-role participant.
// Called by the Service Façade right after a successful AddPlayer.
func (g *Game) RegisterParticipant(userID uuid.UUID, email string) {
	g.Participants[userID] = &Participant{
		UserID:   userID,
		Email:    email,
		Role:     RolePlayer,
		JoinedAt: time.Now(),
	}
}

// KickPlayer removes target from participants, players, and turn_order.
// Requires kicker to hold KickPlayers; forbids removing the creator;
// forbids kicking after enrollment closes.
func (g *Game) KickPlayer(kickerID, targetID uuid.UUID) error {
	if !g.roleOf(kickerID).Has(PermKickPlayers) {
		return apierrors.ErrInsufficientPermissions
	}
	if g.EnrollmentClosed {
		return apierrors.ErrEnrollmentClosed
	}
	if targetID == g.CreatorID {
		return apierrors.ErrCannotKickCreator
	}

	target, ok := g.Participants[targetID]
	if !ok {
		return apierrors.ErrPlayerNotInGame
	}

	delete(g.Participants, targetID)
	delete(g.Players, target.Email)

	for i, e := range g.TurnOrder {
		if e == target.Email {
			g.TurnOrder = append(g.TurnOrder[:i], g.TurnOrder[i+1:]...)
			break
		}
	}
	return nil
}

// CloseEnrollment requires CloseEnrollment permission, closes enrollment,
// and resets the turn index to the start.
func (g *Game) CloseEnrollment(userID uuid.UUID) error {
	if !g.roleOf(userID).Has(PermCloseEnrollment) {
		return apierrors.ErrInsufficientPermissions
	}
	if g.Finished {
		return apierrors.ErrGameAlreadyFinished
	}

	g.EnrollmentClosed = true
	g.CurrentTurnIndex = 0
	return nil
}

// CurrentPlayer returns the email whose turn it is, or "" if turn_order is
// empty.
func (g *Game) CurrentPlayer() string {
	if len(g.TurnOrder) == 0 {
		return ""
	}
	return g.TurnOrder[g.CurrentTurnIndex]
}

// CanPlayerAct reports whether it is email's turn, enrollment is closed,
// and the player is Active.
func (g *Game) CanPlayerAct(email string) bool {
	if !g.EnrollmentClosed {
		return false
	}
	if g.CurrentPlayer() != email {
		return false
	}
	p, ok := g.Players[email]
	return ok && p.State == PlayerActive
}

// advanceTurn rotates current_turn_index by one modulo len(turn_order),
// skipping any player whose state is not Active. Stops if it would wrap
// back to the starting index without finding one.
func (g *Game) advanceTurn() {
	if len(g.TurnOrder) == 0 {
		return
	}

	start := g.CurrentTurnIndex
	for {
		g.CurrentTurnIndex = (g.CurrentTurnIndex + 1) % len(g.TurnOrder)
		if g.CurrentTurnIndex == start {
			return
		}
		if p, ok := g.Players[g.TurnOrder[g.CurrentTurnIndex]]; ok && p.State == PlayerActive {
			return
		}
	}
}

// checkAutoFinish reports whether every player is Standing or Busted.
func (g *Game) checkAutoFinish() bool {
	if len(g.Players) == 0 {
		return false
	}
	for _, p := range g.Players {
		if p.State != PlayerStanding && p.State != PlayerBusted {
			return false
		}
	}
	return true
}

// DrawCard draws a uniformly random card from available_cards for email,
// appends it to the hand, recomputes points/bust, and advances the turn.
// Auto-finishes the game (playing the dealer) if all players are now done.
func (g *Game) DrawCard(email string) (cards.Card, error) {
	if g.Finished {
		return cards.Card{}, apierrors.ErrGameAlreadyFinished
	}
	if !g.EnrollmentClosed {
		return cards.Card{}, apierrors.ErrEnrollmentNotClosed
	}
	if len(g.AvailableCards) == 0 {
		return cards.Card{}, apierrors.ErrDeckEmpty
	}
	if !g.CanPlayerAct(email) {
		return cards.Card{}, apierrors.ErrNotPlayerTurn
	}

	player, ok := g.Players[email]
	if !ok {
		return cards.Card{}, apierrors.ErrPlayerNotInGame
	}
	if player.Busted {
		return cards.Card{}, apierrors.ErrPlayerAlreadyBusted
	}
	if player.State != PlayerActive {
		return cards.Card{}, apierrors.ErrPlayerNotActive
	}

	card, rest, ok := cards.Draw(g.AvailableCards)
	if !ok {
		return cards.Card{}, apierrors.ErrDeckEmpty
	}
	g.AvailableCards = rest

	player.AddCard(card)
	g.advanceTurn()

	if g.checkAutoFinish() {
		if err := g.playDealer(); err != nil {
			return card, err
		}
		g.Finished = true
	}

	return card, nil
}

// Stand transitions email's state from Active to Standing and advances the
// turn, auto-finishing the game if that was the last active player.
func (g *Game) Stand(email string) error {
	if g.Finished {
		return apierrors.ErrGameAlreadyFinished
	}
	if !g.EnrollmentClosed {
		return apierrors.ErrEnrollmentNotClosed
	}
	if !g.CanPlayerAct(email) {
		return apierrors.ErrNotPlayerTurn
	}

	player, ok := g.Players[email]
	if !ok {
		return apierrors.ErrPlayerNotInGame
	}
	if player.State != PlayerActive {
		return apierrors.ErrPlayerNotActive
	}

	player.State = PlayerStanding
	g.advanceTurn()

	if g.checkAutoFinish() {
		if err := g.playDealer(); err != nil {
			return err
		}
		g.Finished = true
	}

	return nil
}

// playDealer draws for the dealer while points < 17 and not busted.
func (g *Game) playDealer() error {
	if g.Finished {
		return apierrors.ErrGameAlreadyFinished
	}

	for g.Dealer.Points < 17 && !g.Dealer.Busted {
		if len(g.AvailableCards) == 0 {
			return apierrors.ErrDeckEmpty
		}
		card, rest, ok := cards.Draw(g.AvailableCards)
		if !ok {
			return apierrors.ErrDeckEmpty
		}
		g.AvailableCards = rest
		g.Dealer.AddCard(card)
	}

	if !g.Dealer.Busted {
		g.Dealer.State = PlayerStanding
	}
	return nil
}

// SetAceValue toggles whether card_id counts as 11 for email's hand.
// Permitted at any time the game is not finished — the player need not be
// on turn or still active.
func (g *Game) SetAceValue(email string, cardID uuid.UUID, asEleven bool) error {
	if g.Finished {
		return apierrors.ErrGameAlreadyFinished
	}

	player, ok := g.Players[email]
	if !ok {
		return apierrors.ErrPlayerNotInGame
	}

	found := false
	for _, c := range player.CardsHistory {
		if c.ID == cardID {
			if !c.IsAce() {
				return apierrors.ErrNotAnAce
			}
			found = true
			break
		}
	}
	if !found {
		return apierrors.ErrCardNotFound
	}

	player.AceValues[cardID] = asEleven
	player.Recalculate()
	return nil
}

// FinishGame marks the game finished (manual, Creator-only via
// FinishGame permission).
func (g *Game) FinishGame(userID uuid.UUID) error {
	if !g.roleOf(userID).Has(PermFinishGame) {
		return apierrors.ErrInsufficientPermissions
	}
	g.Finished = true
	return nil
}
