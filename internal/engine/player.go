package engine

import (
	"github.com/google/uuid"
	"github.com/swarm-blackjack/tablecore/internal/cards"
)

// PlayerState is a player's in-hand status.
type PlayerState string

const (
	PlayerActive   PlayerState = "active"
	PlayerStanding PlayerState = "standing"
	PlayerBusted   PlayerState = "busted"
)

const dealerEmail = "dealer"

// Player is one hand in a game — a real enrolled player or the synthetic
// dealer, which follows identical card-accounting rules.
type Player struct {
	Email        string
	Points       int
	CardsHistory []cards.Card
	// AceValues maps a card's ID to whether it currently counts as 11
	// (true) or 1 (false). Only Aces ever appear here.
	AceValues map[uuid.UUID]bool
	Busted    bool
	State     PlayerState
}

func NewPlayer(email string) *Player {
	return &Player{
		Email:     email,
		AceValues: make(map[uuid.UUID]bool),
		State:     PlayerActive,
	}
}

// AddCard appends card to the hand and recalculates points. A freshly drawn
// Ace defaults to counting as 1.
func (p *Player) AddCard(card cards.Card) {
	if card.IsAce() {
		p.AceValues[card.ID] = false
	}
	p.CardsHistory = append(p.CardsHistory, card)
	p.Recalculate()
}

// Recalculate recomputes Points from CardsHistory and AceValues, and updates
// Busted/State. Once Busted becomes true it is one-way: a later Ace toggle
// cannot un-bust the player, because State has already latched to Busted
// and nothing here reverts State away from it.
func (p *Player) Recalculate() {
	total := 0
	for _, c := range p.CardsHistory {
		total += c.Value
		if c.IsAce() && p.AceValues[c.ID] {
			total += 10
		}
	}
	p.Points = total
	if total > 21 {
		p.Busted = true
		p.State = PlayerBusted
	}
}

// Summary is the read-only view of a player exposed in results.
type Summary struct {
	Points     int  `json:"points"`
	CardsCount int  `json:"cards_count"`
	Busted     bool `json:"busted"`
}

func (p *Player) Summary() Summary {
	return Summary{Points: p.Points, CardsCount: len(p.CardsHistory), Busted: p.Busted}
}
