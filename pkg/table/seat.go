package table

import (
	"bombpotpoker-server/pkg/deck"
)

// Seat is an occupied position at the table. A nil *Seat is an empty slot.
type Seat struct {
	// PlayerID is the opaque identity handle of the connection occupying
	// the seat
	PlayerID string `json:"playerId"`

	// Name is the display nickname; it is also the ledger key
	Name string `json:"name"`

	Chips      int       `json:"chips"`
	Hand       deck.Hand `json:"hand"`
	Folded     bool      `json:"isFolded"`
	CurrentBet int       `json:"currentBet"`
	HasActed   bool      `json:"hasActed"`
	Role       string    `json:"role"`
	InHand     bool      `json:"inHand"`
}

func newSeat(playerID, name string, chips int) *Seat {
	return &Seat{
		PlayerID: playerID,
		Name:     name,
		Chips:    chips,
		Hand:     make(deck.Hand, 0),

		// not dealt in until the next hand starts
		Folded: true,
		InHand: false,
	}
}

// newHand resets the seat's hand-local fields at the start of a hand
func (s *Seat) newHand() {
	s.Hand = make(deck.Hand, 0)
	s.Folded = false
	s.CurrentBet = 0
	s.HasActed = false
	s.Role = ""
	s.InHand = true
}

// commit moves up to amount chips from the seat's stack into its current
// bet, clamping to the stack. The amount actually moved is returned.
func (s *Seat) commit(amount int) int {
	if amount > s.Chips {
		amount = s.Chips
	}

	s.Chips -= amount
	s.CurrentBet += amount
	return amount
}
