package table

import (
	"time"
)

// nextHandDelay is how long the showdown result stays on screen before the
// next hand is dealt
const nextHandDelay = 6 * time.Second

type pendingEventKind int

const (
	// pendingNextHand starts the next hand after the post-showdown pause
	pendingNextHand pendingEventKind = iota

	// pendingReveal reveals the next community card(s) during an all-in
	// fast-forward
	pendingReveal
)

type pendingEvent struct {
	kind pendingEventKind
	at   time.Time
}

func (t *Table) schedule(kind pendingEventKind, after time.Duration) {
	t.pending = &pendingEvent{
		kind: kind,
		at:   t.clock.Now().Add(after),
	}
}

func (t *Table) showdownSpeed() time.Duration {
	return time.Duration(t.Settings.ShowdownSpeed) * time.Millisecond
}

// Interval returns how often Tick() should be called
func (t *Table) Interval() time.Duration {
	return 100 * time.Millisecond
}

// Tick fires any due timer continuation. It returns true when the table
// mutated and a new snapshot should be broadcast. Player departures never
// cancel a pending continuation; only table teardown does.
func (t *Table) Tick() (bool, error) {
	if t.pending == nil || t.clock.Now().Before(t.pending.at) {
		return false, nil
	}

	kind := t.pending.kind
	t.pending = nil

	switch kind {
	case pendingNextHand:
		t.startNextHand()
	case pendingReveal:
		t.revealNext()
	}

	return true, nil
}

// revealNext deals the next chunk of the board during an all-in
// fast-forward. Once the board is complete the following tick runs the
// showdown.
func (t *Table) revealNext() {
	switch {
	case len(t.Community) < 3:
		t.dealCommunity(3)
	case len(t.Community) < 5:
		t.dealCommunity(1)
	default:
		t.handleShowdown()
		return
	}

	t.schedule(pendingReveal, t.showdownSpeed())
}
