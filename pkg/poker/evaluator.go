package poker

import (
	"errors"

	"bombpotpoker-server/pkg/deck"
)

// ErrNoCandidates is an error when Winners() is called with nothing to rank
var ErrNoCandidates = errors.New("no candidate hands to rank")

// Candidate is a single rankable group of cards belonging to a seat.
// A seat may submit more than one candidate (e.g. every two-hole-card by
// three-board-card combination in an Omaha hand); its best one counts.
type Candidate struct {
	SeatIndex int
	Cards     deck.Hand
}

// Result describes the outcome of ranking a group of candidates
type Result struct {
	// SeatIndexes are the seats holding the highest-ranking hand, in
	// ascending seat order, each listed once
	SeatIndexes []int

	// Description is a human-readable description of the winning hand
	Description string
}

// Evaluator ranks candidate hands. Implementations must treat each
// candidate's cards as a single hand (best five of the cards given) and
// return every seat that ties for the top rank.
type Evaluator interface {
	Winners(candidates []Candidate) (*Result, error)
}
