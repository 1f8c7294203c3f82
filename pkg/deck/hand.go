package deck

import "strings"

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card *Card) bool {
	for _, c := range *h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, card := range h {
		parts[i] = card.String()
	}

	return strings.Join(parts, ",")
}

// Clone returns a copy of the hand
func (h Hand) Clone() Hand {
	clone := make(Hand, len(h))
	copy(clone, h)
	return clone
}
