package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c,4d"))
	assert.True(t, hand.HasCard(CardFromString("3c")))
	assert.False(t, hand.HasCard(CardFromString("3s")))
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "14s,3c", CardsToString(h))
}

func TestHand_Clone(t *testing.T) {
	h := Hand(CardsFromString("2c,3c"))
	clone := h.Clone()
	clone.AddCard(CardFromString("4d"))

	assert.Equal(t, "2c,3c", CardsToString(h))
	assert.Equal(t, "2c,3c,4d", CardsToString(clone))
}
