package room

import (
	"bombpotpoker-server/pkg/table"
)

// inbound actions
const (
	ActionSit            = "sit"
	ActionAct            = "action"
	ActionUpdateSettings = "updateSettings"
	ActionForceBombPot   = "forceBombPot"
)

// PayloadIn is the envelope we expect from the JS client. Fields beyond
// Action are meaningful only for the matching action.
type PayloadIn struct {
	Action string `json:"action"`

	// sit
	SeatIndex int    `json:"seatIndex"`
	BuyIn     int    `json:"buyIn"`
	Nickname  string `json:"nickname"`

	// action
	Kind   table.ActionKind `json:"kind"`
	Amount int              `json:"amount"`

	// updateSettings
	Settings *table.SettingsPatch `json:"settings"`
}

// gameUpdate is the outbound envelope wrapping a full table snapshot
type gameUpdate struct {
	Key  string       `json:"key"`
	Data *table.Table `json:"data"`
}

func newGameUpdate(t *table.Table) *gameUpdate {
	return &gameUpdate{
		Key:  "game_update",
		Data: t,
	}
}
