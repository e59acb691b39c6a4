package game

import (
	"github.com/strategic-conquest/engine/internal/game/core"
)

// NoWinner marks a game with no decided winner yet.
const NoWinner = -1

// Player owns its armies. The board's position registry holds the same
// pointers as a lookup index, but creation and removal always go through
// the player roster first.
type Player struct {
	ID         int
	Name       string
	Color      [3]int
	Score      int
	HQ         core.Position
	Eliminated bool
	Armies     []*core.Army
}

// AddArmy appends an army to the roster and stamps it with the owner ID
func (p *Player) AddArmy(a *core.Army) {
	a.PlayerID = p.ID
	p.Armies = append(p.Armies, a)
}

// RemoveArmy drops an army from the roster, preserving the order of the
// remaining armies.
func (p *Player) RemoveArmy(a *core.Army) {
	for i, other := range p.Armies {
		if other == a {
			p.Armies = append(p.Armies[:i], p.Armies[i+1:]...)
			return
		}
	}
}

// HasArmies reports whether the player still commands any force
func (p *Player) HasArmies() bool {
	return len(p.Armies) > 0
}

// GameState is the complete simulation state: the board, the players in
// seat order, and the turn bookkeeping. All mutation goes through Engine
// commands; callers needing concurrent access must serialize externally.
type GameState struct {
	Board              *core.Board
	Players            []*Player
	CurrentPlayerIndex int
	TurnNumber         int
	GameOver           bool
	Winner             int // player ID, NoWinner until decided
}

// CurrentPlayer returns the player whose turn it is
func (gs *GameState) CurrentPlayer() *Player {
	return gs.Players[gs.CurrentPlayerIndex]
}

// PlayerByID returns the player with the given ID, or nil
func (gs *GameState) PlayerByID(id int) *Player {
	for _, p := range gs.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ActivePlayers counts the players not yet eliminated
func (gs *GameState) ActivePlayers() int {
	n := 0
	for _, p := range gs.Players {
		if !p.Eliminated {
			n++
		}
	}
	return n
}

// Scores returns a player-ID-to-score snapshot
func (gs *GameState) Scores() map[int]int {
	scores := make(map[int]int, len(gs.Players))
	for _, p := range gs.Players {
		scores[p.ID] = p.Score
	}
	return scores
}
