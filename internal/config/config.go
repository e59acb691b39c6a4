package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the engine and its tooling
type Config struct {
	Game       GameConfig       `mapstructure:"game"`
	Board      BoardConfig      `mapstructure:"board"`
	Map        MapConfig        `mapstructure:"map"`
	Movement   MovementConfig   `mapstructure:"movement"`
	Supply     SupplyConfig     `mapstructure:"supply"`
	Tiles      TilesConfig      `mapstructure:"tiles"`
	Combat     CombatConfig     `mapstructure:"combat"`
	Scoring    ScoringConfig    `mapstructure:"scoring"`
	Visibility VisibilityConfig `mapstructure:"visibility"`
	Colors     ColorsConfig     `mapstructure:"colors"`
}

// GameConfig holds the top-level game pacing values
type GameConfig struct {
	StartingArmySize int `mapstructure:"starting_army_size"`
	StartingFood     int `mapstructure:"starting_food"`
	TurnLimit        int `mapstructure:"turn_limit"`
}

// BoardConfig holds board dimensions and presentation hints
type BoardConfig struct {
	Width    int `mapstructure:"width"`
	Height   int `mapstructure:"height"`
	TileSize int `mapstructure:"tile_size"`
}

// MapConfig holds terrain generation settings
type MapConfig struct {
	FortCount        int     `mapstructure:"fort_count"`
	ForestFraction   float64 `mapstructure:"forest_fraction"`
	RiverCount       int     `mapstructure:"river_count"`
	MountainFraction float64 `mapstructure:"mountain_fraction"`
	ForestClump      float64 `mapstructure:"forest_clump"`
	MountainClump    float64 `mapstructure:"mountain_clump"`
	FortMargin       int     `mapstructure:"fort_margin"`
}

// MovementConfig maps army strength to movement speed
type MovementConfig struct {
	GeneralBonus int            `mapstructure:"general_bonus"`
	Tiers        []MovementTier `mapstructure:"tiers"`
}

// MovementTier is one strength range with its speed in tiles per move
type MovementTier struct {
	Min   int `mapstructure:"min"`
	Max   int `mapstructure:"max"`
	Speed int `mapstructure:"speed"`
}

// SpeedFor returns the movement speed for the given strength, falling
// back to 1 when no tier matches
func (m *MovementConfig) SpeedFor(strength int) int {
	for _, tier := range m.Tiers {
		if strength >= tier.Min && strength <= tier.Max {
			return tier.Speed
		}
	}
	return 1
}

// SupplyConfig holds the supply radius and food consumption rates
type SupplyConfig struct {
	BaseRange   int               `mapstructure:"base_range"`
	Consumption ConsumptionConfig `mapstructure:"consumption"`
}

// ConsumptionConfig holds per-activity food costs per turn
type ConsumptionConfig struct {
	Combat     int `mapstructure:"combat"`
	Moving     int `mapstructure:"moving"`
	Stationary int `mapstructure:"stationary"`
}

// TilesConfig holds per-terrain gameplay values
type TilesConfig struct {
	Fort FortConfig `mapstructure:"fort"`
}

// FortConfig holds fort tile settings
type FortConfig struct {
	FoodGeneration int `mapstructure:"food_generation"`
}

// CombatConfig holds the attrition formula rates
type CombatConfig struct {
	BaseAttrition float64 `mapstructure:"base_attrition"`
	SizePenalty   float64 `mapstructure:"size_penalty"`
	GeneralBonus  float64 `mapstructure:"general_bonus"`
}

// ScoringConfig holds the score award values
type ScoringConfig struct {
	FortControl       int     `mapstructure:"fort_control"`
	EliminationFactor float64 `mapstructure:"elimination_factor"`
}

// VisibilityConfig holds fog-of-war ranges and terrain modifiers
type VisibilityConfig struct {
	BaseRange     int `mapstructure:"base_range"`
	ForestPenalty int `mapstructure:"forest_penalty"`
	MountainBonus int `mapstructure:"mountain_bonus"`
}

// ColorsConfig holds RGB presentation hints
type ColorsConfig struct {
	Players PlayerColorsConfig `mapstructure:"players"`
	Tiles   TileColorsConfig   `mapstructure:"tiles"`
}

// PlayerColorsConfig holds player color settings
type PlayerColorsConfig struct {
	Player0 [3]int `mapstructure:"player_0"`
	Player1 [3]int `mapstructure:"player_1"`
	Player2 [3]int `mapstructure:"player_2"`
	Player3 [3]int `mapstructure:"player_3"`
}

// TileColorsConfig holds terrain color settings
type TileColorsConfig struct {
	Plain        [3]int `mapstructure:"plain"`
	Headquarters [3]int `mapstructure:"headquarters"`
	Fort         [3]int `mapstructure:"fort"`
	Forest       [3]int `mapstructure:"forest"`
	Valley       [3]int `mapstructure:"valley"`
	River        [3]int `mapstructure:"river"`
	Mountain     [3]int `mapstructure:"mountain"`
}

// PlayerColor returns the configured RGB for a player ID, white for
// anything out of range
func (c *ColorsConfig) PlayerColor(id int) [3]int {
	switch id {
	case 0:
		return c.Players.Player0
	case 1:
		return c.Players.Player1
	case 2:
		return c.Players.Player2
	case 3:
		return c.Players.Player3
	default:
		return [3]int{255, 255, 255}
	}
}

var (
	// Global config instance for the binaries; the engine itself only
	// ever receives an explicit *Config at construction.
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.starting_army_size", 50)
	v.SetDefault("game.starting_food", 100)
	v.SetDefault("game.turn_limit", 100)

	// Board defaults
	v.SetDefault("board.width", 20)
	v.SetDefault("board.height", 20)
	v.SetDefault("board.tile_size", 32)

	// Map generation defaults
	v.SetDefault("map.fort_count", 5)
	v.SetDefault("map.forest_fraction", 0.2)
	v.SetDefault("map.river_count", 2)
	v.SetDefault("map.mountain_fraction", 0.1)
	v.SetDefault("map.forest_clump", 0.7)
	v.SetDefault("map.mountain_clump", 0.6)
	v.SetDefault("map.fort_margin", 2)

	// Movement defaults
	v.SetDefault("movement.general_bonus", 1)
	v.SetDefault("movement.tiers", []map[string]interface{}{
		{"min": 1, "max": 25, "speed": 4},
		{"min": 26, "max": 50, "speed": 3},
		{"min": 51, "max": 75, "speed": 2},
		{"min": 76, "max": 100, "speed": 1},
	})

	// Supply defaults
	v.SetDefault("supply.base_range", 5)
	v.SetDefault("supply.consumption.combat", 3)
	v.SetDefault("supply.consumption.moving", 2)
	v.SetDefault("supply.consumption.stationary", 1)

	// Tile defaults
	v.SetDefault("tiles.fort.food_generation", 5)

	// Combat defaults
	v.SetDefault("combat.base_attrition", 0.1)
	v.SetDefault("combat.size_penalty", 0.05)
	v.SetDefault("combat.general_bonus", 0.05)

	// Scoring defaults
	v.SetDefault("scoring.fort_control", 5)
	v.SetDefault("scoring.elimination_factor", 0.5)

	// Visibility defaults
	v.SetDefault("visibility.base_range", 3)
	v.SetDefault("visibility.forest_penalty", -1)
	v.SetDefault("visibility.mountain_bonus", 2)

	// Color defaults
	v.SetDefault("colors.players.player_0", []int{220, 60, 60})
	v.SetDefault("colors.players.player_1", []int{60, 90, 220})
	v.SetDefault("colors.players.player_2", []int{60, 180, 90})
	v.SetDefault("colors.players.player_3", []int{230, 200, 70})

	v.SetDefault("colors.tiles.plain", []int{180, 200, 160})
	v.SetDefault("colors.tiles.headquarters", []int{240, 240, 240})
	v.SetDefault("colors.tiles.fort", []int{120, 90, 60})
	v.SetDefault("colors.tiles.forest", []int{60, 130, 70})
	v.SetDefault("colors.tiles.valley", []int{200, 210, 140})
	v.SetDefault("colors.tiles.river", []int{70, 110, 200})
	v.SetDefault("colors.tiles.mountain", []int{140, 130, 120})
}

// load reads configuration into a fresh struct on the given viper
func load(vp *viper.Viper, configPath string) (*Config, error) {
	// Set defaults before loading any config
	setViperDefaults(vp)

	// Set config file
	if configPath != "" {
		vp.SetConfigFile(configPath)
	} else {
		// Default config locations
		vp.SetConfigName("config")
		vp.SetConfigType("yaml")
		vp.AddConfigPath(".")
		vp.AddConfigPath("./config")
		vp.AddConfigPath("/etc/strategic-conquest")
	}

	// Set environment variable prefix
	vp.SetEnvPrefix("CONQUEST")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	// Read config file
	if err := vp.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	// Unmarshal into config struct
	c := &Config{}
	if err := vp.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return c, nil
}

// Init initializes the global configuration used by the binaries
func Init(configPath string) error {
	nv := viper.New()
	c, err := load(nv, configPath)
	if err != nil {
		return err
	}
	cfg = c
	v = nv
	return nil
}

// Load reads configuration without touching the package globals. The
// returned value is what gets threaded into engine construction.
func Load(configPath string) (*Config, error) {
	return load(viper.New(), configPath)
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	// Validate game pacing
	if c.Game.StartingArmySize <= 0 || c.Game.StartingArmySize > 100 {
		return fmt.Errorf("game.starting_army_size must be between 1 and 100")
	}
	if c.Game.StartingFood <= 0 {
		return fmt.Errorf("game.starting_food must be positive")
	}
	if c.Game.TurnLimit <= 0 {
		return fmt.Errorf("game.turn_limit must be positive")
	}

	// Validate board dimensions
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("board dimensions must be positive")
	}
	if c.Board.TileSize <= 0 {
		return fmt.Errorf("board.tile_size must be positive")
	}

	// Validate map generation
	if c.Map.FortCount < 0 {
		return fmt.Errorf("map.fort_count must be non-negative")
	}
	if c.Map.RiverCount < 0 {
		return fmt.Errorf("map.river_count must be non-negative")
	}
	if c.Map.RiverCount > 0 && (c.Board.Width < 5 || c.Board.Height < 5) {
		return fmt.Errorf("board must be at least 5x5 when map.river_count is positive")
	}
	if c.Map.FortMargin < 0 {
		return fmt.Errorf("map.fort_margin must be non-negative")
	}
	if c.Map.ForestFraction < 0 || c.Map.ForestFraction > 1 {
		return fmt.Errorf("map.forest_fraction must be between 0 and 1")
	}
	if c.Map.MountainFraction < 0 || c.Map.MountainFraction > 1 {
		return fmt.Errorf("map.mountain_fraction must be between 0 and 1")
	}
	if c.Map.ForestClump < 0 || c.Map.ForestClump > 1 {
		return fmt.Errorf("map.forest_clump must be between 0 and 1")
	}
	if c.Map.MountainClump < 0 || c.Map.MountainClump > 1 {
		return fmt.Errorf("map.mountain_clump must be between 0 and 1")
	}

	// Validate movement tiers
	if len(c.Movement.Tiers) == 0 {
		return fmt.Errorf("movement.tiers must not be empty")
	}
	for i, tier := range c.Movement.Tiers {
		if tier.Min > tier.Max {
			return fmt.Errorf("movement.tiers[%d]: min must not exceed max", i)
		}
		if tier.Speed <= 0 {
			return fmt.Errorf("movement.tiers[%d]: speed must be positive", i)
		}
	}
	if c.Movement.GeneralBonus < 0 {
		return fmt.Errorf("movement.general_bonus must be non-negative")
	}

	// Validate supply
	if c.Supply.BaseRange < 0 {
		return fmt.Errorf("supply.base_range must be non-negative")
	}
	if c.Supply.Consumption.Combat < 0 || c.Supply.Consumption.Moving < 0 || c.Supply.Consumption.Stationary < 0 {
		return fmt.Errorf("supply.consumption rates must be non-negative")
	}

	// Validate tiles
	if c.Tiles.Fort.FoodGeneration < 0 {
		return fmt.Errorf("tiles.fort.food_generation must be non-negative")
	}

	// Validate combat rates
	if c.Combat.BaseAttrition < 0 {
		return fmt.Errorf("combat.base_attrition must be non-negative")
	}
	if c.Combat.SizePenalty < 0 {
		return fmt.Errorf("combat.size_penalty must be non-negative")
	}
	if c.Combat.GeneralBonus < 0 {
		return fmt.Errorf("combat.general_bonus must be non-negative")
	}

	// Validate scoring
	if c.Scoring.FortControl < 0 {
		return fmt.Errorf("scoring.fort_control must be non-negative")
	}
	if c.Scoring.EliminationFactor < 0 {
		return fmt.Errorf("scoring.elimination_factor must be non-negative")
	}

	// Validate visibility
	if c.Visibility.BaseRange < 1 {
		return fmt.Errorf("visibility.base_range must be at least 1")
	}

	// Validate color values
	validateRGB := func(rgb [3]int, name string) error {
		for i, val := range rgb {
			if val < 0 || val > 255 {
				return fmt.Errorf("%s[%d] must be between 0 and 255", name, i)
			}
		}
		return nil
	}

	playerColors := []struct {
		rgb  [3]int
		name string
	}{
		{c.Colors.Players.Player0, "colors.players.player_0"},
		{c.Colors.Players.Player1, "colors.players.player_1"},
		{c.Colors.Players.Player2, "colors.players.player_2"},
		{c.Colors.Players.Player3, "colors.players.player_3"},
	}
	for _, pc := range playerColors {
		if err := validateRGB(pc.rgb, pc.name); err != nil {
			return err
		}
	}

	tileColors := []struct {
		rgb  [3]int
		name string
	}{
		{c.Colors.Tiles.Plain, "colors.tiles.plain"},
		{c.Colors.Tiles.Headquarters, "colors.tiles.headquarters"},
		{c.Colors.Tiles.Fort, "colors.tiles.fort"},
		{c.Colors.Tiles.Forest, "colors.tiles.forest"},
		{c.Colors.Tiles.Valley, "colors.tiles.valley"},
		{c.Colors.Tiles.River, "colors.tiles.river"},
		{c.Colors.Tiles.Mountain, "colors.tiles.mountain"},
	}
	for _, tc := range tileColors {
		if err := validateRGB(tc.rgb, tc.name); err != nil {
			return err
		}
	}

	return nil
}
