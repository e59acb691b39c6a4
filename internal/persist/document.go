package persist

import "time"

// Document is the on-disk shape of a saved game. Terrain travels as its
// serialization name so saves stay readable and unknown kinds fail the
// load instead of defaulting.
type Document struct {
	GameID             string      `json:"game_id" yaml:"game_id"`
	SavedAt            time.Time   `json:"saved_at" yaml:"saved_at"`
	TurnNumber         int         `json:"turn_number" yaml:"turn_number"`
	CurrentPlayerIndex int         `json:"current_player_index" yaml:"current_player_index"`
	GameOver           bool        `json:"game_over" yaml:"game_over"`
	Winner             int         `json:"winner" yaml:"winner"`
	Board              BoardDoc    `json:"board" yaml:"board"`
	Players            []PlayerDoc `json:"players" yaml:"players"`
}

// BoardDoc holds the grid dimensions and tiles, rows outermost
type BoardDoc struct {
	Width  int         `json:"width" yaml:"width"`
	Height int         `json:"height" yaml:"height"`
	Tiles  [][]TileDoc `json:"tiles" yaml:"tiles"`
}

// TileDoc is one tile: terrain name plus owning player (-1 for none)
type TileDoc struct {
	Type     string `json:"type" yaml:"type"`
	PlayerID int    `json:"player_id" yaml:"player_id"`
}

// PlayerDoc is one player's full observable state
type PlayerDoc struct {
	ID           int         `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	Score        int         `json:"score" yaml:"score"`
	Headquarters PositionDoc `json:"headquarters_position" yaml:"headquarters_position"`
	Eliminated   bool        `json:"is_eliminated" yaml:"is_eliminated"`
	Armies       []ArmyDoc   `json:"armies" yaml:"armies"`
}

// PositionDoc is a board coordinate
type PositionDoc struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// ArmyDoc is one army with its per-turn flags; flags persist so a save
// taken mid-cycle restores exactly.
type ArmyDoc struct {
	X              int  `json:"x" yaml:"x"`
	Y              int  `json:"y" yaml:"y"`
	Strength       int  `json:"strength" yaml:"strength"`
	Food           int  `json:"food" yaml:"food"`
	HasGeneral     bool `json:"has_general" yaml:"has_general"`
	MovedThisTurn  bool `json:"moved_this_turn" yaml:"moved_this_turn"`
	FoughtThisTurn bool `json:"fought_this_turn" yaml:"fought_this_turn"`
}
