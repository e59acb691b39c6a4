package game

import (
	"time"

	"github.com/strategic-conquest/engine/internal/common"
	"github.com/strategic-conquest/engine/internal/game/core"
	"github.com/strategic-conquest/engine/internal/game/events"
)

// NextTurn runs end-of-turn processing for the current player, then
// hands the seat to the next non-eliminated player. Every wrap past
// seat 0 advances the turn counter and checks the turn limit; a scan
// that finds nobody left alive ends the game.
func (e *Engine) NextTurn() error {
	if e.gs.GameOver {
		return core.ErrGameOver
	}

	player := e.gs.CurrentPlayer()
	e.processEndOfTurn(player)
	e.bus.Publish(events.NewTurnEndedEvent(e.id, player.ID, e.gs.TurnNumber))

	n := len(e.gs.Players)
	for step := 1; step <= n; step++ {
		next := (e.gs.CurrentPlayerIndex + step) % n
		if next == 0 {
			e.gs.TurnNumber++
			if e.gs.TurnNumber > e.cfg.Game.TurnLimit {
				e.endGame()
				return nil
			}
		}
		if !e.gs.Players[next].Eliminated {
			e.gs.CurrentPlayerIndex = next
			e.logger.Debug().
				Int("player_id", next).
				Int("turn", e.gs.TurnNumber).
				Msg("Turn advanced")
			return nil
		}
	}

	// Full cycle without a living player.
	e.endGame()
	return nil
}

// processEndOfTurn applies the per-army upkeep sequence for the player
// whose turn just ended: supply check, food consumption, starvation,
// fort food, headquarters resupply, flag reset, zero-strength removal.
// It then flags elimination and awards fort-control points.
func (e *Engine) processEndOfTurn(player *Player) {
	supplied, unsupplied := 0, 0

	// Snapshot: removals must not skip the armies behind them.
	armies := append([]*core.Army(nil), player.Armies...)
	for _, a := range armies {
		a.Supplied = e.inSupplyRange(a, player)
		if a.Supplied {
			supplied++
		} else {
			unsupplied++
		}

		switch {
		case a.MovedThisTurn && a.FoughtThisTurn:
			a.Food -= e.cfg.Supply.Consumption.Combat
		case a.MovedThisTurn:
			a.Food -= e.cfg.Supply.Consumption.Moving
		default:
			a.Food -= e.cfg.Supply.Consumption.Stationary
		}

		// An empty larder starves the army: the deficit plus one comes
		// off strength, and food clamps back to zero.
		if a.Food <= 0 {
			loss := common.Min(common.Abs(a.Food)+1, a.Strength)
			a.Strength -= loss
			a.Food = 0
			if loss > 0 {
				e.logger.Debug().
					Int("player_id", a.PlayerID).
					Stringer("at", a.Position).
					Int("strength_loss", loss).
					Msg("Army starving")
			}
		}

		tile, err := e.gs.Board.Tile(a.Position)
		if err != nil {
			// Registry invariant guarantees in-bounds positions.
			e.logger.Error().Err(err).Stringer("at", a.Position).Msg("Army off the board")
			continue
		}
		if tile.IsFort() {
			a.Food += e.cfg.Tiles.Fort.FoodGeneration
		}
		if tile.IsHeadquarters() && tile.IsOwnedBy(player.ID) {
			a.Food = e.cfg.Game.StartingFood
		}

		a.ResetTurnFlags()

		if a.Strength <= 0 {
			e.bus.Publish(events.NewArmyEliminatedEvent(e.id, a.PlayerID, a.Position, 0, e.gs.TurnNumber))
			e.removeArmy(a)
		}
	}

	e.bus.Publish(events.NewSupplyCheckedEvent(e.id, player.ID, supplied, unsupplied, e.gs.TurnNumber))

	if !player.HasArmies() && !player.Eliminated {
		player.Eliminated = true
		e.logger.Info().Int("player_id", player.ID).Msg("Player eliminated")
		e.bus.Publish(events.NewPlayerEliminatedEvent(e.id, player.ID, e.gs.TurnNumber))
	}

	e.scoreFortControl(player)
}

// inSupplyRange is the advisory supply check: on the player's own
// headquarters, or within the configured Manhattan radius of it. The
// result is recorded and published but gates nothing yet.
func (e *Engine) inSupplyRange(a *core.Army, player *Player) bool {
	tile, err := e.gs.Board.Tile(a.Position)
	if err == nil && tile.IsHeadquarters() && tile.IsOwnedBy(player.ID) {
		return true
	}
	return a.Position.Manhattan(player.HQ) <= e.cfg.Supply.BaseRange
}

// scoreFortControl awards points for every fort held exclusively by the
// player: occupied, and by nobody else.
func (e *Engine) scoreFortControl(player *Player) {
	b := e.gs.Board
	for x := 0; x < b.W; x++ {
		for y := 0; y < b.H; y++ {
			p := core.NewPosition(x, y)
			if b.T[b.Idx(x, y)].Terrain != core.TerrainFort {
				continue
			}
			occupants := b.ArmiesAt(p)
			if len(occupants) == 0 {
				continue
			}
			held := true
			for _, a := range occupants {
				if a.PlayerID != player.ID {
					held = false
					break
				}
			}
			if held {
				e.addScore(player, e.cfg.Scoring.FortControl, events.ScoreReasonFortControl)
			}
		}
	}
}

// endGame finalizes the state: picks a winner and publishes the result.
// Idempotent; later calls are no-ops.
func (e *Engine) endGame() {
	if e.gs.GameOver {
		return
	}
	e.gs.GameOver = true
	e.gs.Winner = e.determineWinner()

	e.logger.Info().
		Int("winner", e.gs.Winner).
		Int("final_turn", e.gs.TurnNumber).
		Msg("Game over")
	e.bus.Publish(events.NewGameEndedEvent(e.id, e.gs.Winner, e.gs.TurnNumber,
		time.Since(e.startedAt), e.gs.Scores()))
}

// determineWinner picks the highest score; ties break to the lowest
// player ID. Eliminated players stay in the running: points survive
// their armies.
func (e *Engine) determineWinner() int {
	winner := NoWinner
	best := -1
	for _, p := range e.gs.Players {
		if p.Score > best {
			best = p.Score
			winner = p.ID
		}
	}
	return winner
}
