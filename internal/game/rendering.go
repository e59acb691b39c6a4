package game

import (
	"fmt"
	"strings"

	"github.com/strategic-conquest/engine/internal/game/core"
)

// ASCII board rendering for logs and the demo binary.

// ANSI foreground colors, indexed by player seat.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorBlue   = "\033[34m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

var playerANSI = []string{colorRed, colorBlue, colorGreen, colorYellow}

var terrainGlyphs = map[core.Terrain]byte{
	core.TerrainPlain:        '.',
	core.TerrainHeadquarters: 'H',
	core.TerrainFort:         'F',
	core.TerrainForest:       'f',
	core.TerrainValley:       'v',
	core.TerrainRiver:        '~',
	core.TerrainMountain:     '^',
}

// Render draws the whole board as text: terrain glyphs with army
// overlays (owner digit, '*' marking a general in the stack). Set color
// for ANSI player coloring on terminals that support it.
func (e *Engine) Render(color bool) string {
	b := e.gs.Board

	var sb strings.Builder
	// Two characters per cell plus row labels and the score footer.
	sb.Grow((b.W*2 + 8) * (b.H + len(e.gs.Players) + 4))

	sb.WriteString("   ")
	for x := 0; x < b.W; x++ {
		sb.WriteString(fmt.Sprintf("%2d", x%100))
	}
	sb.WriteByte('\n')

	for y := 0; y < b.H; y++ {
		sb.WriteString(fmt.Sprintf("%2d ", y))
		for x := 0; x < b.W; x++ {
			p := core.NewPosition(x, y)
			armies := b.ArmiesAt(p)
			if len(armies) == 0 {
				sb.WriteByte(' ')
				sb.WriteByte(terrainGlyphs[b.T[b.Idx(x, y)].Terrain])
				continue
			}

			owner := armies[0].PlayerID
			general := false
			for _, a := range armies {
				general = general || a.HasGeneral
			}

			mark := byte(' ')
			if general {
				mark = '*'
			}
			if color && owner >= 0 && owner < len(playerANSI) {
				sb.WriteString(playerANSI[owner])
			}
			sb.WriteByte(mark)
			sb.WriteByte('0' + byte(owner%10))
			if color && owner >= 0 && owner < len(playerANSI) {
				sb.WriteString(colorReset)
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(fmt.Sprintf("\nturn %d", e.gs.TurnNumber))
	if e.gs.GameOver {
		sb.WriteString(fmt.Sprintf("  game over, winner %d", e.gs.Winner))
	} else {
		sb.WriteString(fmt.Sprintf("  to play: %d", e.gs.CurrentPlayerIndex))
	}
	sb.WriteByte('\n')
	for _, p := range e.gs.Players {
		status := ""
		if p.Eliminated {
			status = "  (eliminated)"
		}
		sb.WriteString(fmt.Sprintf("%d %-10s score %4d  armies %d%s\n",
			p.ID, p.Name, p.Score, len(p.Armies), status))
	}
	return sb.String()
}
