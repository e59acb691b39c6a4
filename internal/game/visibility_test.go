package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strategic-conquest/engine/internal/game/core"
)

func TestVisibleTilesBaseRange(t *testing.T) {
	e := newBattlefield(t, 20, 20, 2)
	pos := core.Position{X: 10, Y: 10}
	deployArmy(e, 0, pos, 30, 50, false)

	visible := e.VisibleTiles(0)

	// Base range 3 around the army.
	assert.Contains(t, visible, pos)
	assert.Contains(t, visible, core.Position{X: 13, Y: 10})
	assert.Contains(t, visible, core.Position{X: 11, Y: 12})
	assert.NotContains(t, visible, core.Position{X: 14, Y: 10})
	assert.NotContains(t, visible, core.Position{X: 12, Y: 12})

	// The headquarters sees too, armies or not.
	assert.Contains(t, visible, e.gs.Players[0].HQ)
}

func TestVisibleTilesTerrainModifiers(t *testing.T) {
	tests := []struct {
		name    string
		terrain core.Terrain
		seen    core.Position
		hidden  core.Position
	}{
		{name: "forest narrows sight", terrain: core.TerrainForest,
			seen: core.Position{X: 12, Y: 10}, hidden: core.Position{X: 13, Y: 10}},
		{name: "mountain extends sight", terrain: core.TerrainMountain,
			seen: core.Position{X: 15, Y: 10}, hidden: core.Position{X: 16, Y: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newBattlefield(t, 20, 20, 2)
			pos := core.Position{X: 10, Y: 10}
			assert.NoError(t, e.gs.Board.SetTerrain(pos, tt.terrain))
			deployArmy(e, 0, pos, 30, 50, false)

			visible := e.VisibleTiles(0)
			assert.Contains(t, visible, tt.seen)
			assert.NotContains(t, visible, tt.hidden)
		})
	}
}

func TestVisibleTilesMinimumRange(t *testing.T) {
	e := newBattlefield(t, 20, 20, 2)
	e.cfg.Visibility.BaseRange = 1
	e.cfg.Visibility.ForestPenalty = -5
	pos := core.Position{X: 10, Y: 10}
	assert.NoError(t, e.gs.Board.SetTerrain(pos, core.TerrainForest))
	deployArmy(e, 0, pos, 30, 50, false)

	visible := e.VisibleTiles(0)

	// Even deep in the woods an army sees its neighbors.
	assert.Contains(t, visible, core.Position{X: 11, Y: 10})
}

func TestVisibleTilesUnknownPlayer(t *testing.T) {
	e := newBattlefield(t, 20, 20, 2)
	assert.Empty(t, e.VisibleTiles(9))
}

func TestRenderSnapshot(t *testing.T) {
	e := newTestEngine(t, 2)

	out := e.Render(false)

	assert.Contains(t, out, "turn 1")
	assert.Contains(t, out, "to play: 0")
	assert.Contains(t, out, "Player 1")
	assert.Contains(t, out, "*0", "starting army with its general shows up")
	assert.NotContains(t, out, "\033[", "colorless render carries no ANSI codes")
}
