package testutil

import (
	"github.com/strategic-conquest/engine/internal/config"
)

// TestConfig returns the standard configuration as a plain struct, with
// no file or environment involved, so tests stay hermetic.
func TestConfig() *config.Config {
	return &config.Config{
		Game: config.GameConfig{
			StartingArmySize: 50,
			StartingFood:     100,
			TurnLimit:        100,
		},
		Board: config.BoardConfig{
			Width:    20,
			Height:   20,
			TileSize: 32,
		},
		Map: config.MapConfig{
			FortCount:        5,
			ForestFraction:   0.2,
			RiverCount:       2,
			MountainFraction: 0.1,
			ForestClump:      0.7,
			MountainClump:    0.6,
			FortMargin:       2,
		},
		Movement: config.MovementConfig{
			GeneralBonus: 1,
			Tiers: []config.MovementTier{
				{Min: 1, Max: 25, Speed: 4},
				{Min: 26, Max: 50, Speed: 3},
				{Min: 51, Max: 75, Speed: 2},
				{Min: 76, Max: 100, Speed: 1},
			},
		},
		Supply: config.SupplyConfig{
			BaseRange: 5,
			Consumption: config.ConsumptionConfig{
				Combat:     3,
				Moving:     2,
				Stationary: 1,
			},
		},
		Tiles: config.TilesConfig{
			Fort: config.FortConfig{FoodGeneration: 5},
		},
		Combat: config.CombatConfig{
			BaseAttrition: 0.1,
			SizePenalty:   0.05,
			GeneralBonus:  0.05,
		},
		Scoring: config.ScoringConfig{
			FortControl:       5,
			EliminationFactor: 0.5,
		},
		Visibility: config.VisibilityConfig{
			BaseRange:     3,
			ForestPenalty: -1,
			MountainBonus: 2,
		},
		Colors: config.ColorsConfig{
			Players: config.PlayerColorsConfig{
				Player0: [3]int{220, 60, 60},
				Player1: [3]int{60, 90, 220},
				Player2: [3]int{60, 180, 90},
				Player3: [3]int{230, 200, 70},
			},
			Tiles: config.TileColorsConfig{
				Plain:        [3]int{180, 200, 160},
				Headquarters: [3]int{240, 240, 240},
				Fort:         [3]int{120, 90, 60},
				Forest:       [3]int{60, 130, 70},
				Valley:       [3]int{200, 210, 140},
				River:        [3]int{70, 110, 200},
				Mountain:     [3]int{140, 130, 120},
			},
		},
	}
}
