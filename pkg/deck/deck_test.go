package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewDeck(t *testing.T) {
	d := New()

	assert.Equal(t, 52, d.CardsLeft())
	assert.Equal(t, Card{Rank: 2, Suit: Clubs}, *d.Cards[0])
	assert.Equal(t, Card{Rank: 14, Suit: Spades}, *d.Cards[51])

	// all 52 cards must be distinct
	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		seen[*card] = true
	}
	assert.Equal(t, 52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(1)
	first := CardsToString(d.Cards)

	d2 := New()
	d2.Shuffle(1)
	a.Equal(first, CardsToString(d2.Cards), "same seed shuffles identically")

	d3 := New()
	d3.Shuffle(2)
	a.NotEqual(first, CardsToString(d3.Cards))

	// a shuffled deck still contains every card exactly once
	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		seen[*card] = true
	}
	a.Equal(52, len(seen))

	a.Equal(int64(1), d.GetSeed())
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	if !d.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if d.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := d.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	card, err := d.Draw()
	assert.Nil(t, card)
	assert.Equal(t, ErrEndOfDeck, err)
}
