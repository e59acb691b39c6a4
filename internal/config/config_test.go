package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  starting_army_size: 40
  turn_limit: 60
board:
  width: 16
  height: 12
map:
  fort_count: 3
combat:
  base_attrition: 0.2
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	// Reset global state
	cfg = nil
	v = nil

	// Initialize config
	err = Init(configFile)
	require.NoError(t, err)

	// Test loaded values
	c := Get()
	assert.Equal(t, 40, c.Game.StartingArmySize)
	assert.Equal(t, 60, c.Game.TurnLimit)
	assert.Equal(t, 16, c.Board.Width)
	assert.Equal(t, 12, c.Board.Height)
	assert.Equal(t, 3, c.Map.FortCount)
	assert.Equal(t, 0.2, c.Combat.BaseAttrition)

	// Untouched keys keep their defaults
	assert.Equal(t, 100, c.Game.StartingFood)
	assert.Equal(t, 2, c.Map.RiverCount)
	assert.Len(t, c.Movement.Tiers, 4)
}

func TestInitWithDefaults(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	// Initialize with non-existent config (should use defaults)
	err := Init("/non/existent/path/config.yaml")
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 50, c.Game.StartingArmySize)
	assert.Equal(t, 100, c.Game.StartingFood)
	assert.Equal(t, 100, c.Game.TurnLimit)
	assert.Equal(t, 20, c.Board.Width)
	assert.Equal(t, 5, c.Map.FortCount)
	assert.Equal(t, 0.1, c.Combat.BaseAttrition)
	assert.Equal(t, 0.5, c.Scoring.EliminationFactor)
	assert.Equal(t, [3]int{220, 60, 60}, c.Colors.Players.Player0)
}

func TestEnvironmentVariables(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	// Set environment variables
	os.Setenv("CONQUEST_GAME_TURN_LIMIT", "42")
	os.Setenv("CONQUEST_SUPPLY_BASE_RANGE", "9")
	defer os.Unsetenv("CONQUEST_GAME_TURN_LIMIT")
	defer os.Unsetenv("CONQUEST_SUPPLY_BASE_RANGE")

	// Initialize config
	err := Init("")
	require.NoError(t, err)

	// Environment variables should override
	c := Get()
	assert.Equal(t, 42, c.Game.TurnLimit)
	assert.Equal(t, 9, c.Supply.BaseRange)
}

func TestLoadLeavesGlobalsAlone(t *testing.T) {
	cfg = nil
	v = nil

	c, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, 50, c.Game.StartingArmySize)
	assert.Nil(t, cfg, "Load must not populate the global instance")
}

func TestSet(t *testing.T) {
	cfg = nil
	v = nil

	err := Init("")
	require.NoError(t, err)

	Set("game.turn_limit", 55)
	assert.Equal(t, 55, Get().Game.TurnLimit)
}

func TestSpeedFor(t *testing.T) {
	m := MovementConfig{
		GeneralBonus: 1,
		Tiers: []MovementTier{
			{Min: 1, Max: 25, Speed: 4},
			{Min: 26, Max: 50, Speed: 3},
			{Min: 51, Max: 75, Speed: 2},
			{Min: 76, Max: 100, Speed: 1},
		},
	}

	tests := []struct {
		strength int
		speed    int
	}{
		{1, 4},
		{25, 4},
		{26, 3},
		{50, 3},
		{51, 2},
		{75, 2},
		{76, 1},
		{100, 1},
		{0, 1},   // below all tiers, fallback
		{101, 1}, // above all tiers, fallback
	}

	for _, tt := range tests {
		assert.Equal(t, tt.speed, m.SpeedFor(tt.strength), "strength %d", tt.strength)
	}
}

func TestPlayerColor(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, [3]int{220, 60, 60}, c.Colors.PlayerColor(0))
	assert.Equal(t, [3]int{230, 200, 70}, c.Colors.PlayerColor(3))
	assert.Equal(t, [3]int{255, 255, 255}, c.Colors.PlayerColor(7))
}

func TestValidate(t *testing.T) {
	valid, err := Load("")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "zero starting army", mutate: func(c *Config) { c.Game.StartingArmySize = 0 }},
		{name: "starting army above cap", mutate: func(c *Config) { c.Game.StartingArmySize = 150 }},
		{name: "zero starting food", mutate: func(c *Config) { c.Game.StartingFood = 0 }},
		{name: "zero turn limit", mutate: func(c *Config) { c.Game.TurnLimit = 0 }},
		{name: "zero board width", mutate: func(c *Config) { c.Board.Width = 0 }},
		{name: "negative fort count", mutate: func(c *Config) { c.Map.FortCount = -1 }},
		{name: "rivers on tiny board", mutate: func(c *Config) { c.Board.Width, c.Board.Height = 4, 4 }},
		{name: "forest fraction above one", mutate: func(c *Config) { c.Map.ForestFraction = 1.5 }},
		{name: "empty movement tiers", mutate: func(c *Config) { c.Movement.Tiers = nil }},
		{name: "inverted tier bounds", mutate: func(c *Config) { c.Movement.Tiers[0].Min = 30 }},
		{name: "zero tier speed", mutate: func(c *Config) { c.Movement.Tiers[0].Speed = 0 }},
		{name: "negative consumption", mutate: func(c *Config) { c.Supply.Consumption.Moving = -1 }},
		{name: "negative attrition", mutate: func(c *Config) { c.Combat.BaseAttrition = -0.1 }},
		{name: "zero visibility range", mutate: func(c *Config) { c.Visibility.BaseRange = 0 }},
		{name: "rgb out of range", mutate: func(c *Config) { c.Colors.Players.Player0[0] = 300 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *valid
			// Tiers are shared through the slice header; copy before mutating
			c.Movement.Tiers = append([]MovementTier(nil), valid.Movement.Tiers...)
			tt.mutate(&c)
			assert.Error(t, Validate(&c))
		})
	}

	assert.NoError(t, Validate(valid))
}
