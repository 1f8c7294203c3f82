package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", (&Card{Rank: 2, Suit: Hearts}).String())
	assert.Equal(t, "J♣", (&Card{Rank: 11, Suit: Clubs}).String())
	assert.Equal(t, "Q♢", (&Card{Rank: 12, Suit: Diamonds}).String())
	assert.Equal(t, "K♠", (&Card{Rank: 13, Suit: Spades}).String())
	assert.Equal(t, "A♠", (&Card{Rank: 14, Suit: Spades}).String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(Card{Rank: 2, Suit: Clubs}, *CardFromString("2c"))
	a.Equal(Card{Rank: 14, Suit: Spades}, *CardFromString("14s"))
	a.Equal(Card{Rank: 10, Suit: Hearts}, *CardFromString("10h"))
	a.Nil(CardFromString(""))

	a.PanicsWithValue("could not parse card: 15s", func() {
		CardFromString("15s")
	})
}

func TestCards_roundTrip(t *testing.T) {
	const s = "2c,7d,14s,10h"
	assert.Equal(t, s, CardsToString(CardsFromString(s)))
}

func TestCard_Equal(t *testing.T) {
	assert.True(t, CardFromString("2c").Equal(CardFromString("2c")))
	assert.False(t, CardFromString("2c").Equal(CardFromString("2d")))
	assert.False(t, CardFromString("2c").Equal(CardFromString("3c")))
}
