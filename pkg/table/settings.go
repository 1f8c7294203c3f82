package table

// BombPotMode determines how a bomb pot hand is dealt and ranked
type BombPotMode string

// bomb pot modes
const (
	// BombPotModeHoldem deals two hole cards and a single board
	BombPotModeHoldem BombPotMode = "holdem"

	// BombPotModeOmaha deals four hole cards and two independent boards,
	// with pot-limit bet sizing and 2-of-4 hand selection
	BombPotModeOmaha BombPotMode = "omaha"
)

// Settings are the runtime-mutable table options
type Settings struct {
	SmallBlind      int         `json:"smallBlind" yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind        int         `json:"bigBlind" yaml:"bigBlind" envconfig:"big_blind"`
	MinBuyIn        int         `json:"minBuyIn" yaml:"minBuyIn" envconfig:"min_buy_in"`
	MaxBuyIn        int         `json:"maxBuyIn" yaml:"maxBuyIn" envconfig:"max_buy_in"`
	ShowdownSpeed   int         `json:"showdownSpeed" yaml:"showdownSpeed" envconfig:"showdown_speed"`
	FormatAsCents   bool        `json:"formatAsCents" yaml:"formatAsCents" envconfig:"format_as_cents"`
	BombPotMode     BombPotMode `json:"bombPotMode" yaml:"bombPotMode" envconfig:"bomb_pot_mode"`
	BombPotAnte     int         `json:"bombPotAnte" yaml:"bombPotAnte" envconfig:"bomb_pot_ante"`
	Trigger27       bool        `json:"trigger27" yaml:"trigger27" envconfig:"trigger_27"`
	TriggerMonotone bool        `json:"triggerMonotone" yaml:"triggerMonotone" envconfig:"trigger_monotone"`
	TriggerOrbit    int         `json:"triggerOrbit" yaml:"triggerOrbit" envconfig:"trigger_orbit"`
}

// DefaultSettings returns the default table settings
func DefaultSettings() Settings {
	return Settings{
		SmallBlind:    10,
		BigBlind:      20,
		MinBuyIn:      500,
		MaxBuyIn:      5000,
		ShowdownSpeed: 1500,
		BombPotMode:   BombPotModeOmaha,
		BombPotAnte:   5,
	}
}

// SettingsPatch is a partial settings update. Nil fields are left untouched.
// Anyone at the table may submit one; there is deliberately no owner or
// admin concept here.
type SettingsPatch struct {
	SmallBlind      *int         `json:"smallBlind"`
	BigBlind        *int         `json:"bigBlind"`
	MinBuyIn        *int         `json:"minBuyIn"`
	MaxBuyIn        *int         `json:"maxBuyIn"`
	ShowdownSpeed   *int         `json:"showdownSpeed"`
	FormatAsCents   *bool        `json:"formatAsCents"`
	BombPotMode     *BombPotMode `json:"bombPotMode"`
	BombPotAnte     *int         `json:"bombPotAnte"`
	Trigger27       *bool        `json:"trigger27"`
	TriggerMonotone *bool        `json:"triggerMonotone"`
	TriggerOrbit    *int         `json:"triggerOrbit"`
}

// Apply merges the patch into the settings. Each field is validated
// independently; out-of-range fields are dropped without touching the rest.
// Returns true if at least one field changed.
func (s *Settings) Apply(patch SettingsPatch) bool {
	changed := false

	applyInt := func(dst *int, src *int, min, max int) {
		if src == nil || *src < min || *src > max {
			return
		}

		if *dst != *src {
			*dst = *src
			changed = true
		}
	}

	applyBool := func(dst *bool, src *bool) {
		if src == nil {
			return
		}

		if *dst != *src {
			*dst = *src
			changed = true
		}
	}

	applyInt(&s.SmallBlind, patch.SmallBlind, 1, 1_000_000)
	applyInt(&s.BigBlind, patch.BigBlind, 1, 1_000_000)
	applyInt(&s.MinBuyIn, patch.MinBuyIn, 1, 100_000_000)
	applyInt(&s.MaxBuyIn, patch.MaxBuyIn, 1, 100_000_000)
	applyInt(&s.ShowdownSpeed, patch.ShowdownSpeed, 100, 60_000)
	applyInt(&s.BombPotAnte, patch.BombPotAnte, 1, 100)
	applyInt(&s.TriggerOrbit, patch.TriggerOrbit, 0, 100)
	applyBool(&s.FormatAsCents, patch.FormatAsCents)
	applyBool(&s.Trigger27, patch.Trigger27)
	applyBool(&s.TriggerMonotone, patch.TriggerMonotone)

	if patch.BombPotMode != nil {
		mode := *patch.BombPotMode
		if (mode == BombPotModeHoldem || mode == BombPotModeOmaha) && s.BombPotMode != mode {
			s.BombPotMode = mode
			changed = true
		}
	}

	return changed
}
