package table

// Phase represents where the table is in the life of a hand
type Phase string

// phase constants
const (
	PhaseWaiting  Phase = "waiting"
	PhasePreFlop  Phase = "preflop"
	PhaseFlop     Phase = "flop"
	PhaseTurn     Phase = "turn"
	PhaseRiver    Phase = "river"
	PhaseAllIn    Phase = "all-in"
	PhaseShowdown Phase = "showdown"
)

// IsBetting returns true if the phase solicits player actions
func (p Phase) IsBetting() bool {
	switch p {
	case PhasePreFlop, PhaseFlop, PhaseTurn, PhaseRiver:
		return true
	}

	return false
}
