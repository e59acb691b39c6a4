// Package persist reads and writes complete game saves as JSON or YAML
// documents. The format follows the file extension, and a load rebuilds
// the board's army registry from the player rosters.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/strategic-conquest/engine/internal/config"
	"github.com/strategic-conquest/engine/internal/game"
	"github.com/strategic-conquest/engine/internal/game/core"
)

// Format selects the document encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from a file extension; anything that
// is not .yaml or .yml saves as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Snapshot converts a running engine into a save document
func Snapshot(e *game.Engine) *Document {
	gs := e.GameState()
	b := gs.Board

	doc := &Document{
		GameID:             e.ID(),
		SavedAt:            time.Now().UTC(),
		TurnNumber:         gs.TurnNumber,
		CurrentPlayerIndex: gs.CurrentPlayerIndex,
		GameOver:           gs.GameOver,
		Winner:             gs.Winner,
		Board: BoardDoc{
			Width:  b.W,
			Height: b.H,
			Tiles:  make([][]TileDoc, b.H),
		},
	}

	for y := 0; y < b.H; y++ {
		row := make([]TileDoc, b.W)
		for x := 0; x < b.W; x++ {
			tile := b.T[b.Idx(x, y)]
			row[x] = TileDoc{Type: tile.Terrain.String(), PlayerID: tile.Owner}
		}
		doc.Board.Tiles[y] = row
	}

	for _, p := range gs.Players {
		pd := PlayerDoc{
			ID:           p.ID,
			Name:         p.Name,
			Score:        p.Score,
			Headquarters: PositionDoc{X: p.HQ.X, Y: p.HQ.Y},
			Eliminated:   p.Eliminated,
			Armies:       make([]ArmyDoc, 0, len(p.Armies)),
		}
		for _, a := range p.Armies {
			pd.Armies = append(pd.Armies, ArmyDoc{
				X:              a.Position.X,
				Y:              a.Position.Y,
				Strength:       a.Strength,
				Food:           a.Food,
				HasGeneral:     a.HasGeneral,
				MovedThisTurn:  a.MovedThisTurn,
				FoughtThisTurn: a.FoughtThisTurn,
			})
		}
		doc.Players = append(doc.Players, pd)
	}
	return doc
}

// Marshal encodes an engine's state in the given format
func Marshal(e *game.Engine, format Format) ([]byte, error) {
	doc := Snapshot(e)
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("unknown save format %q", format)
	}
}

// Unmarshal decodes a save document and rebuilds a playable engine.
// Player colors come from cfg; they are presentation data and are not
// persisted.
func Unmarshal(data []byte, format Format, cfg *config.Config) (*game.Engine, error) {
	doc := &Document{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, doc)
	case FormatJSON:
		err = json.Unmarshal(data, doc)
	default:
		return nil, fmt.Errorf("unknown save format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding save document: %w", err)
	}
	return Restore(doc, cfg)
}

// Restore rebuilds an engine from a decoded document
func Restore(doc *Document, cfg *config.Config) (*game.Engine, error) {
	if doc.Board.Width <= 0 || doc.Board.Height <= 0 {
		return nil, fmt.Errorf("save has invalid board dimensions %dx%d", doc.Board.Width, doc.Board.Height)
	}
	if len(doc.Board.Tiles) != doc.Board.Height {
		return nil, fmt.Errorf("save has %d tile rows, want %d", len(doc.Board.Tiles), doc.Board.Height)
	}

	board := core.NewBoard(doc.Board.Width, doc.Board.Height)
	for y, row := range doc.Board.Tiles {
		if len(row) != doc.Board.Width {
			return nil, fmt.Errorf("save tile row %d has %d tiles, want %d", y, len(row), doc.Board.Width)
		}
		for x, td := range row {
			terrain, err := core.ParseTerrain(td.Type)
			if err != nil {
				return nil, fmt.Errorf("tile (%d,%d): %w", x, y, err)
			}
			tile := &board.T[board.Idx(x, y)]
			tile.Terrain = terrain
			tile.Owner = td.PlayerID
		}
	}

	gs := &game.GameState{
		Board:              board,
		TurnNumber:         doc.TurnNumber,
		CurrentPlayerIndex: doc.CurrentPlayerIndex,
		GameOver:           doc.GameOver,
		Winner:             doc.Winner,
	}

	for _, pd := range doc.Players {
		player := &game.Player{
			ID:         pd.ID,
			Name:       pd.Name,
			Color:      cfg.Colors.PlayerColor(pd.ID),
			Score:      pd.Score,
			HQ:         core.NewPosition(pd.Headquarters.X, pd.Headquarters.Y),
			Eliminated: pd.Eliminated,
		}
		for _, ad := range pd.Armies {
			a := core.NewArmy(pd.ID, core.NewPosition(ad.X, ad.Y), ad.Strength, ad.Food, ad.HasGeneral)
			a.MovedThisTurn = ad.MovedThisTurn
			a.FoughtThisTurn = ad.FoughtThisTurn
			player.AddArmy(a)
		}
		gs.Players = append(gs.Players, player)
	}

	// Loads are quiet; a caller wanting engine logs or a shared bus can
	// rebuild through game.NewEngineFromState directly.
	return game.NewEngineFromState(gs, game.GameConfig{
		Config: cfg,
		GameID: doc.GameID,
		Logger: zerolog.Nop(),
	})
}

// Save writes an engine's state to path, format chosen by extension
func Save(e *game.Engine, path string) error {
	data, err := Marshal(e, FormatForPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing save file: %w", err)
	}
	return nil
}

// Load reads a save from path, format chosen by extension
func Load(path string, cfg *config.Config) (*game.Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading save file: %w", err)
	}
	return Unmarshal(data, FormatForPath(path), cfg)
}
