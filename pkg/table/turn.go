package table

// eligibleForTurn returns true if the seat can be asked to act: occupied,
// dealt in, not folded, and with chips behind
func (t *Table) eligibleForTurn(seatIndex int) bool {
	seat := t.Seats[seatIndex]
	return seat != nil && seat.InHand && !seat.Folded && seat.Chips > 0
}

// moveTurn advances the turn to the next eligible seat clockwise. The loop
// is bounded by the seat count so it terminates even when no seat is
// eligible; callers detect that condition through the active-player count,
// not through TurnSeat.
func (t *Table) moveTurn() {
	for loops := 0; loops <= NumSeats; loops++ {
		t.TurnSeat = (t.TurnSeat + 1) % NumSeats
		if t.eligibleForTurn(t.TurnSeat) {
			return
		}
	}
}

// rotateDealer advances the dealer button to the next occupied seat. Must
// only be called when at least one seat is occupied.
func (t *Table) rotateDealer() {
	for {
		t.DealerSeat = (t.DealerSeat + 1) % NumSeats
		if t.Seats[t.DealerSeat] != nil {
			return
		}
	}
}

// nextInHand returns the next seat clockwise of from that is dealt into the
// hand. Must only be called when at least one seat is in the hand.
func (t *Table) nextInHand(from int) int {
	for {
		from = (from + 1) % NumSeats
		if seat := t.Seats[from]; seat != nil && seat.InHand {
			return from
		}
	}
}

func (t *Table) seatsInHand() int {
	count := 0
	for _, seat := range t.Seats {
		if seat != nil && seat.InHand {
			count++
		}
	}

	return count
}
