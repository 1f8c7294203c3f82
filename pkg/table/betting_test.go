package table

import (
	"testing"

	"bombpotpoker-server/pkg/deck"
	"github.com/stretchr/testify/assert"
)

// directHand seats players with the given stacks and drops the table into
// the middle of a flop betting round with seat 0 first to act. Used to test
// the betting engine without scripting whole hands.
func directHand(t *testing.T, tbl *Table, stacks ...int) {
	t.Helper()

	for i, chips := range stacks {
		tbl.Seats[i] = &Seat{
			PlayerID: playerID(i),
			Name:     testNames[i],
			Chips:    chips,
			Hand:     make(deck.Hand, 0),
			InHand:   true,
		}
	}

	tbl.drawPile = deck.New()
	tbl.Phase = PhaseFlop
	tbl.DealerSeat = len(stacks) - 1
	tbl.TurnSeat = 0
	tbl.CurrentBet = 0
}

func TestTable_Act_rejections(t *testing.T) {
	a := assert.New(t)
	tbl, _, _ := newTestTable(t)
	directHand(t, tbl, 1000, 1000, 1000)

	a.False(tbl.Act("nobody", Action{Kind: ActionCheck}))
	a.False(tbl.Act(playerID(1), Action{Kind: ActionCheck}), "not their turn")
	a.False(tbl.Act(playerID(0), Action{Kind: "tango"}), "unknown action")

	// cannot check while facing a bet
	tbl.CurrentBet = 50
	a.False(tbl.Act(playerID(0), Action{Kind: ActionCheck}))
	tbl.CurrentBet = 0

	// a raise must put in new chips
	tbl.Seats[0].CurrentBet = 40
	a.False(tbl.Act(playerID(0), Action{Kind: ActionRaise, Amount: 40}))
	a.False(tbl.Act(playerID(0), Action{Kind: ActionRaise, Amount: 10}))
	tbl.Seats[0].CurrentBet = 0

	// no actions outside a betting round
	tbl.Phase = PhaseShowdown
	a.False(tbl.Act(playerID(0), Action{Kind: ActionCheck}))
	tbl.Phase = PhaseAllIn
	a.False(tbl.Act(playerID(0), Action{Kind: ActionFold}))

	a.Equal(0, tbl.Pot, "rejections leave no trace")
	a.Equal(0, tbl.TurnSeat)
}

func TestTable_Act_checkAndCall(t *testing.T) {
	a := assert.New(t)
	tbl, _, _ := newTestTable(t)
	directHand(t, tbl, 1000, 1000, 1000)
	tbl.Pot = 90

	a.True(tbl.Act(playerID(0), Action{Kind: ActionCheck}))
	a.True(tbl.Seats[0].HasActed)
	a.Equal(1, tbl.TurnSeat)

	// seat 1 bets, seat 2 calls the difference
	a.True(tbl.Act(playerID(1), Action{Kind: ActionRaise, Amount: 60}))
	a.Equal(60, tbl.CurrentBet)
	a.Equal(2, tbl.TurnSeat)

	a.True(tbl.Act(playerID(2), Action{Kind: ActionCall}))
	a.Equal(940, tbl.Seats[2].Chips)
	a.Equal(60, tbl.Seats[2].CurrentBet)
	a.Equal(90+60+60, tbl.Pot)
}

func TestTable_Act_raiseReopensAction(t *testing.T) {
	a := assert.New(t)
	tbl, _, _ := newTestTable(t)
	directHand(t, tbl, 1000, 1000, 1000)

	// everyone already acted at the current level
	tbl.Seats[1].HasActed = true
	tbl.Seats[2].HasActed = true

	a.True(tbl.Act(playerID(0), Action{Kind: ActionRaise, Amount: 100}))

	a.Equal(100, tbl.CurrentBet)
	a.Equal(100, tbl.Pot)
	a.Equal(900, tbl.Seats[0].Chips)
	a.True(tbl.Seats[0].HasActed)
	a.False(tbl.Seats[1].HasActed, "a raise puts everyone else back on the clock")
	a.False(tbl.Seats[2].HasActed)
	a.Equal(1, tbl.TurnSeat)
}

func TestTable_Act_shortAllIn(t *testing.T) {
	a := assert.New(t)
	tbl, _, _ := newTestTable(t)
	directHand(t, tbl, 50, 1000, 1000)

	// seat 1 has already bet 100; seat 0 shoves for less
	tbl.CurrentBet = 100
	tbl.Seats[1].CurrentBet = 100
	tbl.Seats[1].HasActed = true
	tbl.Pot = 100

	a.True(tbl.Act(playerID(0), Action{Kind: ActionRaise, Amount: 200}))

	a.Equal(0, tbl.Seats[0].Chips)
	a.Equal(50, tbl.Seats[0].CurrentBet, "commit clamps to the stack")
	a.Equal(100, tbl.CurrentBet, "a short all-in does not lower the bet to match")
	a.Equal(150, tbl.Pot)
}

func TestTable_Act_potLimitCap(t *testing.T) {
	a := assert.New(t)
	tbl, _, _ := newTestTable(t)
	directHand(t, tbl, 10_000, 10_000)

	// pot-limit sizing only applies to the dual-board omaha bomb pot
	tbl.IsBombPot = true
	tbl.Pot = 100
	tbl.CurrentBet = 40
	tbl.Seats[1].CurrentBet = 40

	a.True(tbl.Act(playerID(0), Action{Kind: ActionRaise, Amount: 99_999}))

	// pot 100 + twice the 40 to call = 180
	a.Equal(180, tbl.Seats[0].CurrentBet)
	a.Equal(180, tbl.CurrentBet)
	a.Equal(280, tbl.Pot)
	a.Equal(9820, tbl.Seats[0].Chips)
}

func TestTable_Act_foldToEarlyWin(t *testing.T) {
	a := assert.New(t)
	tbl, _, _ := newTestTable(t)
	directHand(t, tbl, 1000, 1000, 1000)
	tbl.Pot = 90

	a.True(tbl.Act(playerID(0), Action{Kind: ActionFold}))
	a.Equal(PhaseFlop, tbl.Phase, "two players remain")
	a.Equal(1, tbl.TurnSeat)

	a.True(tbl.Act(playerID(1), Action{Kind: ActionFold}))
	a.Equal(PhaseShowdown, tbl.Phase)
	a.Equal(1090, tbl.Seats[2].Chips)
	a.Equal(0, tbl.Pot)
	a.Equal([]int{2}, tbl.Winners)
	a.Equal("charlie wins 90 (Everyone folded)", tbl.HandResult)
	a.NotNil(tbl.pending, "the next hand is on a timer")
}

func TestTable_isRoundOver(t *testing.T) {
	tests := []struct {
		name  string
		setup func(tbl *Table)
		want  bool
	}{
		{
			name: "all matched and acted",
			setup: func(tbl *Table) {
				tbl.CurrentBet = 20
				for _, i := range []int{0, 1, 2} {
					tbl.Seats[i].CurrentBet = 20
					tbl.Seats[i].HasActed = true
				}
			},
			want: true,
		},
		{
			name: "unmatched bet",
			setup: func(tbl *Table) {
				tbl.CurrentBet = 20
				tbl.Seats[0].CurrentBet = 20
				tbl.Seats[0].HasActed = true
				tbl.Seats[1].CurrentBet = 10
				tbl.Seats[1].HasActed = true
				tbl.Seats[2].Folded = true
			},
			want: false,
		},
		{
			name: "matched but not acted",
			setup: func(tbl *Table) {
				for _, i := range []int{0, 1, 2} {
					tbl.Seats[i].CurrentBet = 0
				}
				tbl.Seats[0].HasActed = true
			},
			want: false,
		},
		{
			name: "one player left",
			setup: func(tbl *Table) {
				tbl.Seats[0].Folded = true
				tbl.Seats[1].Folded = true
			},
			want: true,
		},
		{
			name: "short all-in does not block",
			setup: func(tbl *Table) {
				tbl.CurrentBet = 100
				tbl.Seats[0].CurrentBet = 100
				tbl.Seats[0].HasActed = true
				tbl.Seats[1].CurrentBet = 100
				tbl.Seats[1].HasActed = true
				tbl.Seats[2].CurrentBet = 40
				tbl.Seats[2].Chips = 0
			},
			want: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tbl, _, _ := newTestTable(t)
			directHand(t, tbl, 1000, 1000, 1000)
			test.setup(tbl)

			assert.Equal(t, test.want, tbl.isRoundOver())
		})
	}
}

func TestTable_moveTurn(t *testing.T) {
	a := assert.New(t)
	tbl, _, _ := newTestTable(t)
	directHand(t, tbl, 1000, 1000, 1000)

	// folded and felted seats are skipped
	tbl.Seats[1].Folded = true
	tbl.Seats[2].Chips = 0
	tbl.moveTurn()
	a.Equal(0, tbl.TurnSeat, "wraps all the way around")

	// no eligible seat at all still terminates
	tbl.Seats[0].Folded = true
	tbl.moveTurn()
}
