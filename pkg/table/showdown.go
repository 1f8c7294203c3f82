package table

import (
	"fmt"
	"strings"

	"bombpotpoker-server/pkg/deck"
	"bombpotpoker-server/pkg/poker"
)

// handleShowdown ranks the remaining players' hands, pays out the pot and
// ends the hand. Splits use integer floor division; an indivisible
// remainder stays in the pot rather than being redistributed.
func (t *Table) handleShowdown() {
	active := t.activeSeats()
	t.Winners = make([]int, 0, len(active))

	var resultText string

	if t.dualBoard() {
		resultText = t.settleDualBoard(active)
	} else {
		resultText = t.settleSingleBoard(active)
	}

	t.endHand(resultText)
}

func (t *Table) settleSingleBoard(active []int) string {
	candidates := make([]poker.Candidate, 0, len(active))
	for _, i := range active {
		cards := make(deck.Hand, 0, len(t.Seats[i].Hand)+len(t.Community))
		cards = append(cards, t.Community...)
		cards = append(cards, t.Seats[i].Hand...)

		candidates = append(candidates, poker.Candidate{
			SeatIndex: i,
			Cards:     cards,
		})
	}

	result, err := t.evaluator.Winners(candidates)
	if err != nil {
		t.logger.WithError(err).Error("could not rank hands")
		return "Hand complete"
	}

	winAmount := t.Pot / len(result.SeatIndexes)

	wonWith27 := false
	names := make([]string, 0, len(result.SeatIndexes))
	for _, i := range result.SeatIndexes {
		seat := t.Seats[i]
		seat.Chips += winAmount
		t.Pot -= winAmount
		names = append(names, seat.Name)
		t.Winners = append(t.Winners, i)

		if isTwoSevenOffsuit(seat.Hand) {
			wonWith27 = true
		}
	}

	if wonWith27 && t.Settings.Trigger27 {
		t.NextHandBombPot = true
		t.BombPotAnnounce = announce27
	}

	return fmt.Sprintf("%s wins with %s!", strings.Join(names, " & "), result.Description)
}

func (t *Table) settleDualBoard(active []int) string {
	halves := [2]int{t.Pot / 2, t.Pot - t.Pot/2}
	boards := [2]deck.Hand{t.Community, t.Community2}
	labels := [2]string{"Top", "Bottom"}

	parts := make([]string, 0, 2)
	for b := 0; b < 2; b++ {
		candidates := make([]poker.Candidate, 0, len(active)*60)
		for _, i := range active {
			candidates = append(candidates, poker.OmahaCandidates(i, t.Seats[i].Hand, boards[b])...)
		}

		result, err := t.evaluator.Winners(candidates)
		if err != nil {
			t.logger.WithError(err).Error("could not rank hands")
			return "Hand complete"
		}

		winAmount := halves[b] / len(result.SeatIndexes)

		names := make([]string, 0, len(result.SeatIndexes))
		for _, i := range result.SeatIndexes {
			seat := t.Seats[i]
			seat.Chips += winAmount
			t.Pot -= winAmount
			names = append(names, seat.Name)

			if !contains(t.Winners, i) {
				t.Winners = append(t.Winners, i)
			}
		}

		parts = append(parts, fmt.Sprintf("%s: %s (%s)", labels[b], strings.Join(names, "&"), result.Description))
	}

	return strings.Join(parts, " | ")
}

// isTwoSevenOffsuit reports whether a two-card hole hand is the unpaired
// ranks two and seven of different suits
func isTwoSevenOffsuit(hand deck.Hand) bool {
	if len(hand) != 2 {
		return false
	}

	has2 := hand[0].Rank == 2 || hand[1].Rank == 2
	has7 := hand[0].Rank == 7 || hand[1].Rank == 7
	offsuit := hand[0].Suit != hand[1].Suit

	return has2 && has7 && offsuit
}

func contains(indexes []int, want int) bool {
	for _, i := range indexes {
		if i == want {
			return true
		}
	}

	return false
}
