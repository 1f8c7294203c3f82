package poker

import (
	"bombpotpoker-server/pkg/deck"
)

// OmahaCandidates expands a seat's four hole cards against a board into one
// candidate per legal combination: exactly two hole cards plus exactly three
// board cards. The evaluator takes the best of them, which yields the
// Omaha-rules best hand for the seat.
func OmahaCandidates(seatIndex int, hole, board deck.Hand) []Candidate {
	holeCombos := combinations(hole, 2)
	boardCombos := combinations(board, 3)

	candidates := make([]Candidate, 0, len(holeCombos)*len(boardCombos))
	for _, hc := range holeCombos {
		for _, bc := range boardCombos {
			cards := make(deck.Hand, 0, 5)
			cards = append(cards, hc...)
			cards = append(cards, bc...)

			candidates = append(candidates, Candidate{
				SeatIndex: seatIndex,
				Cards:     cards,
			})
		}
	}

	return candidates
}

func combinations(cards deck.Hand, k int) []deck.Hand {
	if k > len(cards) {
		return nil
	}

	if k == 1 {
		combos := make([]deck.Hand, len(cards))
		for i, card := range cards {
			combos[i] = deck.Hand{card}
		}

		return combos
	}

	var combos []deck.Hand
	for i, card := range cards {
		for _, smaller := range combinations(cards[i+1:], k-1) {
			combo := make(deck.Hand, 0, k)
			combo = append(combo, card)
			combo = append(combo, smaller...)
			combos = append(combos, combo)
		}
	}

	return combos
}
