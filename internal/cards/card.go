// Package cards implements the blackjack deck and card model.
package cards

import "github.com/google/uuid"

// Suits available in a standard deck.
var Suits = [4]string{"Hearts", "Diamonds", "Clubs", "Spades"}

// Ranks and their base point value. An Ace's base value is 1 — whether it
// also counts as 11 is tracked separately per player, per card.
var Ranks = [13]struct {
	Name  string
	Value int
}{
	{"A", 1}, {"2", 2}, {"3", 3}, {"4", 4}, {"5", 5}, {"6", 6}, {"7", 7},
	{"8", 8}, {"9", 9}, {"10", 10}, {"J", 10}, {"Q", 10}, {"K", 10},
}

// Card is a single playing card.
type Card struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Value int       `json:"value"`
	Suit  string    `json:"suit"`
}

// IsAce reports whether the card is an Ace.
func (c Card) IsAce() bool {
	return c.Name == "A"
}

// NewDeck builds a full, unshuffled 52-card deck — 4 suits of 13 ranks.
func NewDeck() []Card {
	deck := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, Card{
				ID:    uuid.New(),
				Name:  rank.Name,
				Value: rank.Value,
				Suit:  suit,
			})
		}
	}
	return deck
}
