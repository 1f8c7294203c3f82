package poker

import (
	"fmt"
	"sort"

	"bombpotpoker-server/pkg/deck"
	"github.com/paulhankin/poker"
)

// Solver is the default Evaluator, backed by github.com/paulhankin/poker
type Solver struct{}

// NewSolver returns a new Solver
func NewSolver() *Solver {
	return &Solver{}
}

// Winners returns the highest-ranking subset of the candidates along with a
// description of the winning hand
func (s *Solver) Winners(candidates []Candidate) (*Result, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	var (
		bestScore int16
		bestCards []poker.Card
		seats     map[int]bool
	)

	for _, candidate := range candidates {
		cards, err := libCards(candidate.Cards)
		if err != nil {
			return nil, err
		}

		score, err := score(cards)
		if err != nil {
			return nil, err
		}

		if seats == nil || score > bestScore {
			bestScore = score
			bestCards = cards
			seats = map[int]bool{candidate.SeatIndex: true}
		} else if score == bestScore {
			seats[candidate.SeatIndex] = true
		}
	}

	descr, err := poker.Describe(bestCards)
	if err != nil {
		return nil, err
	}

	seatIndexes := make([]int, 0, len(seats))
	for seat := range seats {
		seatIndexes = append(seatIndexes, seat)
	}
	sort.Ints(seatIndexes)

	return &Result{
		SeatIndexes: seatIndexes,
		Description: descr,
	}, nil
}

func score(cards []poker.Card) (int16, error) {
	switch len(cards) {
	case 5:
		var hand [5]poker.Card
		copy(hand[:], cards)
		return poker.Eval5(&hand), nil
	case 7:
		var hand [7]poker.Card
		copy(hand[:], cards)
		return poker.Eval7(&hand), nil
	}

	return 0, fmt.Errorf("cannot rank a %d-card hand", len(cards))
}

func libCards(cards deck.Hand) ([]poker.Card, error) {
	out := make([]poker.Card, len(cards))
	for i, card := range cards {
		c, err := poker.MakeCard(libSuit(card.Suit), poker.Rank(card.Rank))
		if err != nil {
			return nil, fmt.Errorf("invalid card %s: %w", card, err)
		}

		out[i] = c
	}

	return out, nil
}

func libSuit(suit deck.Suit) poker.Suit {
	switch suit {
	case deck.Clubs:
		return poker.Club
	case deck.Diamonds:
		return poker.Diamond
	case deck.Hearts:
		return poker.Heart
	case deck.Spades:
		return poker.Spade
	}

	panic(fmt.Sprintf("unknown suit: %s", suit))
}
