package game

import (
	"github.com/strategic-conquest/engine/internal/common"
	"github.com/strategic-conquest/engine/internal/game/core"
)

// VisibleTiles computes the player's fog-of-war set: the union of
// Manhattan diamonds around each army and around the headquarters.
// Forest narrows an army's sight, mountains extend it, and every source
// sees at least one tile out. Pure query; nothing is cached.
func (e *Engine) VisibleTiles(playerID int) map[core.Position]struct{} {
	visible := make(map[core.Position]struct{})
	player := e.gs.PlayerByID(playerID)
	if player == nil {
		return visible
	}

	for _, a := range player.Armies {
		mod := 0
		if tile, err := e.gs.Board.Tile(a.Position); err == nil {
			switch tile.Terrain {
			case core.TerrainForest:
				mod = e.cfg.Visibility.ForestPenalty
			case core.TerrainMountain:
				mod = e.cfg.Visibility.MountainBonus
			}
		}
		e.addDiamond(visible, a.Position, common.Max(1, e.cfg.Visibility.BaseRange+mod))
	}
	e.addDiamond(visible, player.HQ, common.Max(1, e.cfg.Visibility.BaseRange))

	return visible
}

func (e *Engine) addDiamond(set map[core.Position]struct{}, center core.Position, radius int) {
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if common.Abs(dx)+common.Abs(dy) > radius {
				continue
			}
			p := core.NewPosition(center.X+dx, center.Y+dy)
			if e.gs.Board.InBounds(p) {
				set[p] = struct{}{}
			}
		}
	}
}
