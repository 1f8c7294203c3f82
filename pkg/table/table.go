package table

import (
	"strings"

	"bombpotpoker-server/pkg/deck"
	"bombpotpoker-server/pkg/poker"
	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

// NumSeats is the fixed number of seats at the table
const NumSeats = 6

const (
	waitingForPlayers     = "Waiting for players to sit..."
	waitingForMorePlayers = "Waiting for more players to sit..."

	announceForced   = "Someone forced a bomb pot for next hand"
	announce27       = "2-7 offsuit win triggered a bomb pot!"
	announceMonotone = "Monotone flop triggered a bomb pot!"
	announceOrbit    = "Orbital bomb pot!"
)

// Table is the authoritative state of a single poker table.
//
// Table is not safe for concurrent use. Every mutation, including timer
// continuations via Tick(), must be serialized by the caller; the room
// dealer's run loop provides that guarantee.
type Table struct {
	Seats       [NumSeats]*Seat `json:"seats"`
	Community   deck.Hand       `json:"communityCards"`
	Community2  deck.Hand       `json:"communityCards2"`
	Pot         int             `json:"pot"`
	TurnSeat    int             `json:"turnSeat"`
	DealerSeat  int             `json:"dealerSeat"`
	CurrentBet  int             `json:"currentBet"`
	Phase       Phase           `json:"phase"`
	HandResult  string          `json:"handResult"`
	HandsPlayed int             `json:"handsPlayed"`

	IsBombPot       bool   `json:"isBombPot"`
	NextHandBombPot bool   `json:"nextHandBombPot"`
	BombPotAnnounce string `json:"bombPotAnnounce"`

	Winners  []int    `json:"winners"`
	Ledger   Ledger   `json:"ledger"`
	Settings Settings `json:"settings"`

	logger    logrus.FieldLogger
	clock     quartz.Clock
	evaluator poker.Evaluator
	drawPile  *deck.Deck
	pending   *pendingEvent

	// newDeck builds the draw pile for each hand; replaced in tests to
	// stack the deck
	newDeck func() *deck.Deck
}

// New returns a table in the waiting phase
func New(logger logrus.FieldLogger, clock quartz.Clock, evaluator poker.Evaluator, settings Settings) *Table {
	if clock == nil {
		clock = quartz.NewReal()
	}

	return &Table{
		Community:  make(deck.Hand, 0),
		Community2: make(deck.Hand, 0),
		TurnSeat:   -1,
		DealerSeat: -1,
		Phase:      PhaseWaiting,
		HandResult: waitingForPlayers,
		Winners:    make([]int, 0),
		Ledger:     make(Ledger),
		Settings:   settings,

		logger:    logger,
		clock:     clock,
		evaluator: evaluator,
		newDeck: func() *deck.Deck {
			d := deck.New()
			d.Shuffle(0)
			return d
		},
	}
}

// Sit places a new player at the given seat with a buy-in clamped to the
// table's limits. Returns false, with no state change, if the seat is
// taken, the index is out of range, the nickname is blank, or the identity
// already occupies a seat.
func (t *Table) Sit(seatIndex, buyIn int, nickname, playerID string) bool {
	if seatIndex < 0 || seatIndex >= NumSeats || t.Seats[seatIndex] != nil {
		return false
	}

	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return false
	}

	if t.seatIndexOf(playerID) >= 0 {
		return false
	}

	actualBuyIn := buyIn
	if actualBuyIn > t.Settings.MaxBuyIn {
		actualBuyIn = t.Settings.MaxBuyIn
	}
	if actualBuyIn < t.Settings.MinBuyIn {
		actualBuyIn = t.Settings.MinBuyIn
	}

	t.Ledger.RecordBuyIn(nickname, actualBuyIn)
	t.Seats[seatIndex] = newSeat(playerID, nickname, actualBuyIn)

	t.logger.WithFields(logrus.Fields{
		"seat":   seatIndex,
		"player": nickname,
		"buyIn":  actualBuyIn,
	}).Info("player sat down")

	if t.Phase == PhaseWaiting && t.occupiedSeats() >= 2 {
		t.startNextHand()
	}

	return true
}

// Leave vacates the identity's seat, crediting their stack to the ledger.
// If they were due to act in a betting round, they are folded first and the
// round continues. Returns false if the identity is not seated.
func (t *Table) Leave(playerID string) bool {
	seatIndex := t.seatIndexOf(playerID)
	if seatIndex < 0 {
		return false
	}

	seat := t.Seats[seatIndex]
	t.Ledger.RecordCashOut(seat.Name, seat.Chips)

	t.logger.WithFields(logrus.Fields{
		"seat":    seatIndex,
		"player":  seat.Name,
		"cashOut": seat.Chips,
	}).Info("player left the table")

	if t.TurnSeat == seatIndex && seat.InHand && !seat.Folded && t.Phase.IsBetting() {
		seat.Folded = true
		if !t.checkEarlyWin() {
			if t.isRoundOver() {
				t.nextPhase()
			} else {
				t.moveTurn()
			}
		}
	}

	t.Seats[seatIndex] = nil
	return true
}

// UpdateSettings merges the patch into the live settings. Any connected
// party may call this; the table deliberately has no owner.
func (t *Table) UpdateSettings(patch SettingsPatch) bool {
	if !t.Settings.Apply(patch) {
		return false
	}

	t.logger.WithField("settings", t.Settings).Info("settings updated")
	return true
}

// ForceBombPot arms a bomb pot for the next hand
func (t *Table) ForceBombPot() bool {
	t.NextHandBombPot = true
	t.BombPotAnnounce = announceForced
	return true
}

func (t *Table) seatIndexOf(playerID string) int {
	for i, seat := range t.Seats {
		if seat != nil && seat.PlayerID == playerID {
			return i
		}
	}

	return -1
}

func (t *Table) occupiedSeats() int {
	count := 0
	for _, seat := range t.Seats {
		if seat != nil {
			count++
		}
	}

	return count
}

// activeSeats returns the indexes of seats that are dealt in and have not
// folded
func (t *Table) activeSeats() []int {
	indexes := make([]int, 0, NumSeats)
	for i, seat := range t.Seats {
		if seat != nil && seat.InHand && !seat.Folded {
			indexes = append(indexes, i)
		}
	}

	return indexes
}

// seatsWithChips returns the indexes of active seats that still have chips
// behind
func (t *Table) seatsWithChips() []int {
	indexes := make([]int, 0, NumSeats)
	for _, i := range t.activeSeats() {
		if t.Seats[i].Chips > 0 {
			indexes = append(indexes, i)
		}
	}

	return indexes
}

func (t *Table) dualBoard() bool {
	return t.IsBombPot && t.Settings.BombPotMode == BombPotModeOmaha
}
