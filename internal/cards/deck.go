package cards

import "math/rand"

// Draw removes and returns a uniformly random card from deck, mirroring the
// deck-service shoe's draw semantics but without replacement tracking —
// the caller owns the returned slice.
func Draw(deck []Card) (Card, []Card, bool) {
	if len(deck) == 0 {
		return Card{}, deck, false
	}
	i := rand.Intn(len(deck))
	card := deck[i]
	deck[i] = deck[len(deck)-1]
	deck = deck[:len(deck)-1]
	return card, deck, true
}
