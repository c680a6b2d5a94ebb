package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, 52)

	seen := make(map[string]struct{}, 52)
	for _, c := range deck {
		key := c.Suit + ":" + c.Name
		_, dup := seen[key]
		assert.False(t, dup, "duplicate card %s", key)
		seen[key] = struct{}{}
	}
	assert.Len(t, seen, 52)
}

func TestAceBaseValueIsOne(t *testing.T) {
	for _, c := range NewDeck() {
		if c.IsAce() {
			assert.Equal(t, 1, c.Value)
		}
	}
}

func TestDrawReducesDeckByOne(t *testing.T) {
	deck := NewDeck()
	card, rest, ok := Draw(deck)
	require.True(t, ok)
	assert.Len(t, rest, 51)
	assert.NotEqual(t, card.ID, rest)
}

func TestDrawEmptyDeck(t *testing.T) {
	_, rest, ok := Draw(nil)
	assert.False(t, ok)
	assert.Empty(t, rest)
}
