package table

import (
	"fmt"
)

// ActionKind is the type of betting action a player can take
type ActionKind string

// betting actions
const (
	ActionFold  ActionKind = "fold"
	ActionCheck ActionKind = "check"
	ActionCall  ActionKind = "call"
	ActionRaise ActionKind = "raise"
)

// Action is a player's betting decision. Amount is only meaningful for a
// raise, where it is the target commitment level for the round.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Amount int        `json:"amount"`
}

// Act applies the identity's betting action. Out-of-turn, out-of-phase and
// illegal actions are silently rejected with no state change. Returns true
// if the table mutated.
func (t *Table) Act(playerID string, action Action) bool {
	seatIndex := t.seatIndexOf(playerID)
	if seatIndex < 0 {
		return false
	}

	if !t.Phase.IsBetting() || t.TurnSeat != seatIndex {
		return false
	}

	seat := t.Seats[seatIndex]

	switch action.Kind {
	case ActionFold:
		seat.Folded = true
		seat.HasActed = true

	case ActionCheck:
		if seat.CurrentBet != t.CurrentBet {
			return false
		}
		seat.HasActed = true

	case ActionCall:
		t.Pot += seat.commit(t.CurrentBet - seat.CurrentBet)
		seat.HasActed = true

	case ActionRaise:
		target := action.Amount
		if t.dualBoard() {
			// pot-limit sizing: pot plus two times the call amount, on
			// top of what the player already has in
			toCall := t.CurrentBet - seat.CurrentBet
			maxTarget := t.Pot + 2*toCall + seat.CurrentBet
			if target > maxTarget {
				target = maxTarget
			}
		}

		if target <= seat.CurrentBet {
			return false
		}

		t.Pot += seat.commit(target - seat.CurrentBet)
		if seat.CurrentBet > t.CurrentBet {
			t.CurrentBet = seat.CurrentBet
		}
		seat.HasActed = true

		// everyone else must act again
		for i, other := range t.Seats {
			if other != nil && other.InHand && i != seatIndex {
				other.HasActed = false
			}
		}

	default:
		return false
	}

	t.logger.WithFields(map[string]interface{}{
		"seat":   seatIndex,
		"player": seat.Name,
		"action": action.Kind,
		"amount": action.Amount,
	}).Debug("action applied")

	if t.checkEarlyWin() {
		return true
	}

	if t.isRoundOver() {
		t.nextPhase()
	} else {
		t.moveTurn()
	}

	return true
}

// isRoundOver returns true when at most one active player remains, or when
// every player still holding chips has matched the table bet and acted.
// A player who is all-in for less is exempt from matching but does not
// block completion.
func (t *Table) isRoundOver() bool {
	active := t.activeSeats()
	if len(active) <= 1 {
		return true
	}

	for _, i := range t.seatsWithChips() {
		seat := t.Seats[i]
		if seat.CurrentBet != t.CurrentBet || !seat.HasActed {
			return false
		}
	}

	return true
}

// checkEarlyWin ends the hand immediately when only one active player
// remains, awarding them the whole pot without dealing further
func (t *Table) checkEarlyWin() bool {
	active := t.activeSeats()
	if len(active) != 1 {
		return false
	}

	winnerIndex := active[0]
	winner := t.Seats[winnerIndex]
	won := t.Pot
	winner.Chips += won
	t.Pot = 0
	t.Winners = []int{winnerIndex}

	t.endHand(fmt.Sprintf("%s wins %d (Everyone folded)", winner.Name, won))
	return true
}
