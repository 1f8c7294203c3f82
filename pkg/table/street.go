package table

import (
	"bombpotpoker-server/pkg/deck"
)

// nextPhase leaves the current betting street: refund any uncalled overage,
// reset per-round state, then deal the next street or run the showdown
func (t *Table) nextPhase() {
	t.refundOverage()

	for _, seat := range t.Seats {
		if seat != nil {
			seat.CurrentBet = 0
			seat.HasActed = false
		}
	}
	t.CurrentBet = 0

	// no more betting is possible: run the remaining board out on a timer
	if len(t.seatsWithChips()) <= 1 && len(t.activeSeats()) > 1 {
		t.fastForwardToShowdown()
		return
	}

	switch t.Phase {
	case PhasePreFlop:
		t.Phase = PhaseFlop
		t.dealCommunity(3)
		t.checkMonotoneFlop()
	case PhaseFlop:
		t.Phase = PhaseTurn
		t.dealCommunity(1)
	case PhaseTurn:
		t.Phase = PhaseRiver
		t.dealCommunity(1)
	case PhaseRiver:
		t.handleShowdown()
		return
	}

	t.TurnSeat = t.DealerSeat
	t.moveTurn()
}

// refundOverage returns the uncalled portion of the single largest bet of
// the round to its owner. Only triggers when the highest committed bet
// strictly exceeds the second highest.
func (t *Table) refundOverage() {
	active := t.activeSeats()
	if len(active) <= 1 {
		return
	}

	highIndex, high, second := -1, -1, -1
	for _, i := range active {
		bet := t.Seats[i].CurrentBet
		if bet > high {
			second = high
			high = bet
			highIndex = i
		} else if bet > second {
			second = bet
		}
	}

	if high > second {
		overage := high - second
		seat := t.Seats[highIndex]
		seat.Chips += overage
		seat.CurrentBet -= overage
		t.Pot -= overage

		t.logger.WithFields(map[string]interface{}{
			"seat":    highIndex,
			"overage": overage,
		}).Debug("uncalled bet returned")
	}
}

// checkMonotoneFlop arms a bomb pot when all three flop cards share a suit
func (t *Table) checkMonotoneFlop() {
	if !t.Settings.TriggerMonotone {
		return
	}

	c := t.Community
	if c[0].Suit == c[1].Suit && c[1].Suit == c[2].Suit {
		t.NextHandBombPot = true
		t.BombPotAnnounce = announceMonotone
	}
}

// dealCommunity deals n cards to the board, and to the second board as well
// during a dual-board bomb pot
func (t *Table) dealCommunity(n int) {
	for i := 0; i < n; i++ {
		t.Community.AddCard(t.mustDraw())
	}

	if t.dualBoard() {
		for i := 0; i < n; i++ {
			t.Community2.AddCard(t.mustDraw())
		}
	}
}

// mustDraw draws the next card. Six seats cannot exhaust a 52-card deck
// (at most 24 hole cards and 10 board cards), so an empty draw pile is a
// programming error.
func (t *Table) mustDraw() *deck.Card {
	card, err := t.drawPile.Draw()
	if err != nil {
		panic(err)
	}

	return card
}

// endHand enters the showdown phase with the given result text and arms the
// timer that starts the next hand
func (t *Table) endHand(resultText string) {
	t.Phase = PhaseShowdown
	t.HandResult = resultText
	t.schedule(pendingNextHand, nextHandDelay)

	t.logger.WithField("result", resultText).Info("hand over")
}

// fastForwardToShowdown enters the all-in phase: the remaining community
// cards are revealed on the showdown-speed cadence with no further betting
func (t *Table) fastForwardToShowdown() {
	t.Phase = PhaseAllIn
	t.schedule(pendingReveal, t.showdownSpeed())
}

// startNextHand tears down the previous hand and begins a new one: broke
// players are removed, the bomb-pot decision is committed, blinds or antes
// are posted, and hole cards are dealt
func (t *Table) startNextHand() {
	for i, seat := range t.Seats {
		if seat != nil && seat.Chips == 0 {
			// busted; the ledger already reflects their buy-ins and there
			// is nothing left to cash out
			t.Ledger.RecordCashOut(seat.Name, 0)
			t.Seats[i] = nil

			t.logger.WithField("player", seat.Name).Info("player eliminated")
		}
	}

	occupied := t.occupiedSeats()
	if occupied < 2 {
		t.Phase = PhaseWaiting
		t.HandResult = waitingForMorePlayers
		return
	}

	t.drawPile = t.newDeck()
	t.Community = make(deck.Hand, 0)
	t.Community2 = make(deck.Hand, 0)
	t.Winners = make([]int, 0)
	t.Pot = 0
	t.HandResult = ""
	t.HandsPlayed++

	if orbit := t.Settings.TriggerOrbit; orbit > 0 && t.HandsPlayed%(occupied*orbit) == 0 {
		t.NextHandBombPot = true
		t.BombPotAnnounce = announceOrbit
	}

	t.IsBombPot = t.NextHandBombPot
	t.NextHandBombPot = false
	if !t.IsBombPot {
		t.BombPotAnnounce = ""
	}

	for _, seat := range t.Seats {
		if seat != nil {
			seat.newHand()
		}
	}

	t.rotateDealer()

	// blind positions: heads-up, the dealer is the small blind and acts
	// first pre-flop; otherwise the blinds are the next two seats and the
	// action starts after the big blind
	sbSeat := t.DealerSeat
	bbSeat := t.DealerSeat
	if t.seatsInHand() == 2 {
		bbSeat = t.nextInHand(bbSeat)
		t.TurnSeat = sbSeat
	} else {
		sbSeat = t.nextInHand(sbSeat)
		bbSeat = t.nextInHand(sbSeat)
		t.TurnSeat = bbSeat
		t.moveTurn()
	}

	t.Seats[t.DealerSeat].Role = "D"

	if t.IsBombPot {
		t.startBombPot()
		return
	}

	t.Phase = PhasePreFlop

	sb := t.Seats[sbSeat]
	t.Pot += sb.commit(t.Settings.SmallBlind)
	if sbSeat == t.DealerSeat {
		sb.Role = "D / SB"
	} else {
		sb.Role = "SB"
	}

	bb := t.Seats[bbSeat]
	t.Pot += bb.commit(t.Settings.BigBlind)
	bb.Role = "BB"

	t.CurrentBet = t.Settings.BigBlind

	for _, seat := range t.Seats {
		if seat != nil && seat.InHand {
			seat.Hand = deck.Hand{t.mustDraw(), t.mustDraw()}
		}
	}

	t.logger.WithFields(map[string]interface{}{
		"hand":   t.HandsPlayed,
		"dealer": t.DealerSeat,
	}).Info("hand started")
}

// startBombPot antes every player and jumps straight to the flop
func (t *Table) startBombPot() {
	anteAmount := t.Settings.BigBlind * t.Settings.BombPotAnte

	cardsToDeal := 2
	if t.Settings.BombPotMode == BombPotModeOmaha {
		cardsToDeal = 4
	}

	for i, seat := range t.Seats {
		if seat == nil || !seat.InHand {
			continue
		}

		ante := seat.commit(anteAmount)
		t.Pot += ante
		seat.CurrentBet = 0

		if i != t.DealerSeat {
			seat.Role = ""
		}

		for c := 0; c < cardsToDeal; c++ {
			seat.Hand.AddCard(t.mustDraw())
		}
	}

	t.Phase = PhaseFlop
	t.CurrentBet = 0
	t.dealCommunity(3)

	t.TurnSeat = t.DealerSeat
	t.moveTurn()

	t.logger.WithFields(map[string]interface{}{
		"hand": t.HandsPlayed,
		"ante": anteAmount,
		"mode": t.Settings.BombPotMode,
	}).Info("bomb pot started")
}
