package game

import (
	"sort"

	"github.com/strategic-conquest/engine/internal/common"
	"github.com/strategic-conquest/engine/internal/game/core"
	"github.com/strategic-conquest/engine/internal/game/events"
)

// Update resolves combat everywhere on the board and then checks the
// game-over conditions. It runs once per cycle regardless of whose turn
// it is, and is a no-op once the game has ended.
func (e *Engine) Update() {
	if e.gs.GameOver {
		return
	}
	e.resolveCombat()
	e.checkGameOver()
}

// resolveCombat finds every contact position, a tile occupied by armies
// of two or more players, and fights each one out. Positions process in
// column-scan order (x, then y) so resolution is deterministic.
func (e *Engine) resolveCombat() {
	positions := e.gs.Board.OccupiedPositions()
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].X != positions[j].X {
			return positions[i].X < positions[j].X
		}
		return positions[i].Y < positions[j].Y
	})

	for _, p := range positions {
		e.resolveCombatAt(p)
	}
}

// combatGroup is one player's stack at a contact position
type combatGroup struct {
	playerID   int
	armies     []*core.Army
	strength   int // aggregate before any damage this cycle
	hasGeneral bool
}

func (e *Engine) resolveCombatAt(pos core.Position) {
	armies := e.gs.Board.ArmiesAt(pos)

	// Group by player in first-appearance order of the tile's army list.
	var groups []*combatGroup
	byPlayer := make(map[int]*combatGroup)
	for _, a := range armies {
		g, ok := byPlayer[a.PlayerID]
		if !ok {
			g = &combatGroup{playerID: a.PlayerID}
			byPlayer[a.PlayerID] = g
			groups = append(groups, g)
		}
		g.armies = append(g.armies, a)
		g.strength += a.Strength
		g.hasGeneral = g.hasGeneral || a.HasGeneral
	}
	if len(groups) < 2 {
		return
	}

	// Everyone standing on a contested tile has fought, winners included.
	for _, a := range armies {
		a.FoughtThisTurn = true
	}

	// Aggregates are fixed before any damage lands; both directions of a
	// pair hit at full pre-battle weight.
	for _, attacker := range groups {
		for _, defender := range groups {
			if attacker == defender {
				continue
			}

			rate := e.cfg.Combat.BaseAttrition
			if attacker.hasGeneral {
				rate += e.cfg.Combat.GeneralBonus
			}
			damage := int(float64(attacker.strength) * rate)

			// The size-difference term is computed and reported, but by
			// deliberate parity with the reference rules it does not
			// change the damage dealt.
			sizeDiff := common.Max(0, defender.strength-attacker.strength)
			sizeTerm := e.cfg.Combat.SizePenalty * float64(sizeDiff) / 20

			eliminated := e.applyGroupDamage(defender.armies, damage)

			e.logger.Debug().
				Stringer("at", pos).
				Int("attacker", attacker.playerID).
				Int("defender", defender.playerID).
				Int("damage", damage).
				Float64("size_term", sizeTerm).
				Int("eliminated", eliminated).
				Msg("Combat resolved")
			e.bus.Publish(events.NewCombatResolvedEvent(e.id, pos,
				attacker.playerID, defender.playerID,
				attacker.strength, defender.strength,
				damage, sizeTerm, eliminated, e.gs.TurnNumber))
		}
	}
}

// applyGroupDamage spreads damage across a defending group in proportion
// to each army's share of the group's current strength. Each army's loss
// caps at its own strength; the rounding remainder drains one point at a
// time in listed order. Returns the number of armies destroyed.
func (e *Engine) applyGroupDamage(group []*core.Army, damage int) int {
	total := 0
	for _, a := range group {
		total += a.Strength
	}
	if total <= 0 || damage <= 0 {
		return 0
	}

	pre := make([]int, len(group))
	for i, a := range group {
		pre[i] = a.Strength
	}

	remaining := damage
	for i, a := range group {
		loss := common.Min(damage*pre[i]/total, a.Strength)
		a.Strength -= loss
		remaining -= loss
	}
	for remaining > 0 {
		spent := false
		for _, a := range group {
			if remaining == 0 {
				break
			}
			if a.Strength > 0 {
				a.Strength--
				remaining--
				spent = true
			}
		}
		if !spent {
			break
		}
	}

	eliminated := 0
	for i, a := range group {
		// Armies that entered this batch already dead fell to an earlier
		// attacker pair and have been processed; only fresh kills count.
		if pre[i] > 0 && a.Strength <= 0 {
			e.eliminateArmy(a, pre[i])
			eliminated++
		}
	}
	return eliminated
}

// eliminateArmy pays out the kill bonus and removes the army. Every
// other player with a force within Manhattan distance 1 of the site
// scores a share of the victim's strength as it stood before the fatal
// damage batch.
func (e *Engine) eliminateArmy(a *core.Army, preStrength int) {
	for _, p := range e.gs.Players {
		if p.ID == a.PlayerID {
			continue
		}
		if !e.playerNear(p, a.Position, 1) {
			continue
		}
		bonus := int(e.cfg.Scoring.EliminationFactor * float64(preStrength))
		e.addScore(p, bonus, events.ScoreReasonElimination)
	}

	e.logger.Debug().
		Int("player_id", a.PlayerID).
		Stringer("at", a.Position).
		Int("strength", preStrength).
		Msg("Army eliminated")
	e.bus.Publish(events.NewArmyEliminatedEvent(e.id, a.PlayerID, a.Position, preStrength, e.gs.TurnNumber))
	e.removeArmy(a)
}

// playerNear reports whether the player has any army within the given
// Manhattan radius of pos.
func (e *Engine) playerNear(p *Player, pos core.Position, radius int) bool {
	for _, a := range p.Armies {
		if a.Position.Manhattan(pos) <= radius {
			return true
		}
	}
	return false
}

// checkGameOver ends the game when at most one player survives or the
// turn limit has been exceeded.
func (e *Engine) checkGameOver() {
	if e.gs.GameOver {
		return
	}
	if e.gs.ActivePlayers() <= 1 || e.gs.TurnNumber > e.cfg.Game.TurnLimit {
		e.endGame()
	}
}
