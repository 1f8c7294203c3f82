package config

import (
	"testing"

	"bombpotpoker-server/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("POKER_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("POKER_TABLE_BIG_BLIND", "100")
	defer clear2()

	a := assert.New(t)
	assert.NoError(t, Load())
	cfg := Instance()
	a.Equal(":4000", cfg.Addr)
	a.Equal("debug", cfg.Log.Level)
	a.Equal(25, cfg.Table.SmallBlind)
	a.Equal(100, cfg.Table.BigBlind, "environment beats the file")
	a.True(cfg.Table.Trigger27)

	// fields the file does not mention keep their defaults
	a.Equal(5000, cfg.Table.MaxBuyIn)

	// ensure we aren't handing out a pointer
	cfg.Addr = "bad"
	cfg = Instance()
	a.Equal(":4000", cfg.Addr)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("POKER_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, ":3001", cfg.Addr)
	assert.Equal(t, 10, cfg.Table.SmallBlind)
	assert.Equal(t, 1500, cfg.Table.ShowdownSpeed)
}
