package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/strategic-conquest/engine/internal/config"
	"github.com/strategic-conquest/engine/internal/game/core"
	"github.com/strategic-conquest/engine/internal/game/events"
	"github.com/strategic-conquest/engine/internal/game/mapgen"
)

// GameConfig carries everything an Engine needs at construction. Config
// is required; everything else has a usable default.
type GameConfig struct {
	Config      *config.Config
	NumPlayers  int
	PlayerNames []string // optional, defaults to "Player N"
	Rng         *rand.Rand
	Logger      zerolog.Logger
	Bus         events.Bus
	GameID      string
}

// Engine drives the simulation: it owns the game state and exposes the
// command set (move, split, merge, retreat), the turn cycle, and combat
// resolution. Single-threaded by design; every call runs to completion.
type Engine struct {
	gs        *GameState
	cfg       *config.Config
	rng       *rand.Rand
	logger    zerolog.Logger
	bus       events.Bus
	id        string
	startedAt time.Time
}

// NewEngine sets up a fresh game: generated terrain, one headquarters
// per player in the corner order top-left, bottom-right, bottom-left,
// top-right, and one starting army with a general on each headquarters.
func NewEngine(gc GameConfig) (*Engine, error) {
	e, err := newEngineShell(gc)
	if err != nil {
		return nil, err
	}
	if gc.NumPlayers < 2 || gc.NumPlayers > 4 {
		return nil, fmt.Errorf("%w: got %d", core.ErrInvalidPlayers, gc.NumPlayers)
	}

	cfg := e.cfg
	board := core.NewBoard(cfg.Board.Width, cfg.Board.Height)

	gen := mapgen.NewGenerator(mapgen.Config{
		FortCount:        cfg.Map.FortCount,
		ForestFraction:   cfg.Map.ForestFraction,
		RiverCount:       cfg.Map.RiverCount,
		MountainFraction: cfg.Map.MountainFraction,
		ForestClump:      cfg.Map.ForestClump,
		MountainClump:    cfg.Map.MountainClump,
		FortMargin:       cfg.Map.FortMargin,
	}, e.rng)
	gen.Generate(board)

	e.gs = &GameState{
		Board:      board,
		TurnNumber: 1,
		Winner:     NoWinner,
	}

	hqs := hqPositions(board.W, board.H)
	for i := 0; i < gc.NumPlayers; i++ {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(gc.PlayerNames) && gc.PlayerNames[i] != "" {
			name = gc.PlayerNames[i]
		}
		player := &Player{
			ID:    i,
			Name:  name,
			Color: cfg.Colors.PlayerColor(i),
			HQ:    hqs[i],
		}

		tile, err := board.Tile(hqs[i])
		if err != nil {
			return nil, fmt.Errorf("placing headquarters: %w", err)
		}
		tile.Terrain = core.TerrainHeadquarters
		tile.Owner = i

		army := core.NewArmy(i, hqs[i], cfg.Game.StartingArmySize, cfg.Game.StartingFood, true)
		player.AddArmy(army)
		board.AddArmy(army)

		e.gs.Players = append(e.gs.Players, player)
	}

	e.logger.Info().
		Str("game_id", e.id).
		Int("players", gc.NumPlayers).
		Int("width", board.W).
		Int("height", board.H).
		Msg("Game started")
	e.bus.Publish(events.NewGameStartedEvent(e.id, gc.NumPlayers, board.W, board.H))

	return e, nil
}

// NewEngineFromState wraps an already-built game state (a loaded save).
// The board registry is rebuilt here from the player rosters so the
// positional index invariant holds regardless of how gs was assembled.
func NewEngineFromState(gs *GameState, gc GameConfig) (*Engine, error) {
	e, err := newEngineShell(gc)
	if err != nil {
		return nil, err
	}
	if n := len(gs.Players); n < 2 || n > 4 {
		return nil, fmt.Errorf("%w: got %d", core.ErrInvalidPlayers, n)
	}

	for _, p := range gs.Players {
		for _, a := range p.Armies {
			if !gs.Board.InBounds(a.Position) {
				return nil, fmt.Errorf("%w: army of player %d at %s", core.ErrOutOfBounds, p.ID, a.Position)
			}
			gs.Board.AddArmy(a)
		}
	}

	e.gs = gs
	return e, nil
}

func newEngineShell(gc GameConfig) (*Engine, error) {
	if gc.Config == nil {
		return nil, fmt.Errorf("game config is required")
	}
	rng := gc.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	bus := gc.Bus
	if bus == nil {
		bus = events.NewEventBus()
	}
	id := gc.GameID
	if id == "" {
		id = uuid.New().String()
	}
	return &Engine{
		cfg:       gc.Config,
		rng:       rng,
		logger:    gc.Logger.With().Str("component", "engine").Str("game_id", id).Logger(),
		bus:       bus,
		id:        id,
		startedAt: time.Now(),
	}, nil
}

// hqPositions lists the headquarters corners in player seat order
func hqPositions(w, h int) [4]core.Position {
	return [4]core.Position{
		{X: 1, Y: 1},
		{X: w - 2, Y: h - 2},
		{X: 1, Y: h - 2},
		{X: w - 2, Y: 1},
	}
}

// GameState exposes the simulation state for read-only inspection
func (e *Engine) GameState() *GameState { return e.gs }

// ID returns the game instance identifier
func (e *Engine) ID() string { return e.id }

// Bus returns the event bus for subscribing
func (e *Engine) Bus() events.Bus { return e.bus }

// MovementRange is the number of tiles an army may cover in one move:
// the speed of its strength tier plus the general bonus.
func (e *Engine) MovementRange(a *core.Army) int {
	r := e.cfg.Movement.SpeedFor(a.Strength)
	if a.HasGeneral {
		r += e.cfg.Movement.GeneralBonus
	}
	return r
}

// MoveArmy relocates an army. The destination must be in bounds and
// within the army's movement range (Manhattan). Validation failures
// leave the state untouched.
func (e *Engine) MoveArmy(a *core.Army, dest core.Position) error {
	if !e.gs.Board.InBounds(dest) {
		return fmt.Errorf("%w: %s", core.ErrOutOfBounds, dest)
	}
	if a.Position.Manhattan(dest) > e.MovementRange(a) {
		return fmt.Errorf("%w: %s to %s", core.ErrOutOfRange, a.Position, dest)
	}

	from := a.Position
	if err := e.gs.Board.MoveArmy(a, dest); err != nil {
		return err
	}
	a.MovedThisTurn = true

	e.logger.Debug().
		Int("player_id", a.PlayerID).
		Stringer("from", from).
		Stringer("to", dest).
		Msg("Army moved")
	e.bus.Publish(events.NewArmyMovedEvent(e.id, a.PlayerID, from, dest, a.Strength, e.gs.TurnNumber))
	return nil
}

// SplitArmy detaches part of an army onto an adjacent tile. Both halves
// must end up with positive strength and food; the general travels with
// the detachment only when sendGeneral is set and the parent has one.
func (e *Engine) SplitArmy(a *core.Army, newStrength, newFood int, sendGeneral bool, dest core.Position) (*core.Army, error) {
	if newStrength <= 0 || newStrength >= a.Strength || newFood <= 0 || newFood >= a.Food {
		return nil, fmt.Errorf("%w: strength %d of %d, food %d of %d",
			core.ErrInvalidSplit, newStrength, a.Strength, newFood, a.Food)
	}
	if !e.gs.Board.InBounds(dest) {
		return nil, fmt.Errorf("%w: %s", core.ErrOutOfBounds, dest)
	}
	if a.Position.Manhattan(dest) != 1 {
		return nil, fmt.Errorf("%w: %s to %s", core.ErrNotAdjacent, a.Position, dest)
	}

	detached := core.NewArmy(a.PlayerID, dest, newStrength, newFood, sendGeneral && a.HasGeneral)
	a.Strength -= newStrength
	a.Food -= newFood
	if sendGeneral {
		a.HasGeneral = false
	}
	a.MovedThisTurn = true
	detached.MovedThisTurn = true

	e.gs.PlayerByID(a.PlayerID).AddArmy(detached)
	e.gs.Board.AddArmy(detached)

	e.logger.Debug().
		Int("player_id", a.PlayerID).
		Stringer("at", a.Position).
		Stringer("dest", dest).
		Int("detached_strength", newStrength).
		Int("detached_food", newFood).
		Bool("general_sent", detached.HasGeneral).
		Msg("Army split")
	e.bus.Publish(events.NewArmySplitEvent(e.id, a.PlayerID, a.Position,
		newStrength, newFood, a.Strength, a.Food, e.gs.TurnNumber))
	return detached, nil
}

// MergeArmies folds b into a. Both must belong to the same player and
// sit on adjacent tiles (stacked armies at distance zero do not merge).
func (e *Engine) MergeArmies(a, b *core.Army) error {
	if a.PlayerID != b.PlayerID {
		return fmt.Errorf("%w: %d and %d", core.ErrDifferentOwners, a.PlayerID, b.PlayerID)
	}
	if a.Position.Manhattan(b.Position) != 1 {
		return fmt.Errorf("%w: %s and %s", core.ErrNotAdjacent, a.Position, b.Position)
	}

	a.Strength += b.Strength
	a.Food += b.Food
	a.HasGeneral = a.HasGeneral || b.HasGeneral
	a.MovedThisTurn = true
	e.removeArmy(b)

	e.logger.Debug().
		Int("player_id", a.PlayerID).
		Stringer("at", a.Position).
		Int("strength", a.Strength).
		Int("food", a.Food).
		Msg("Armies merged")
	e.bus.Publish(events.NewArmiesMergedEvent(e.id, a.PlayerID, a.Position, a.Strength, a.Food, e.gs.TurnNumber))
	return nil
}

// RetreatArmy evacuates an army standing on its own headquarters,
// removing it from play permanently.
func (e *Engine) RetreatArmy(a *core.Army) error {
	player := e.gs.PlayerByID(a.PlayerID)
	if a.Position != player.HQ {
		return fmt.Errorf("%w: at %s, headquarters %s", core.ErrNotAtHeadquarters, a.Position, player.HQ)
	}

	from := a.Position
	e.removeArmy(a)

	e.logger.Debug().
		Int("player_id", a.PlayerID).
		Stringer("from", from).
		Msg("Army retreated")
	e.bus.Publish(events.NewArmyRetreatedEvent(e.id, a.PlayerID, from, player.HQ, e.gs.TurnNumber))
	return nil
}

// removeArmy takes an army out of both the owner roster and the board
// index. Every removal path funnels through here so the two structures
// cannot drift apart.
func (e *Engine) removeArmy(a *core.Army) {
	e.gs.Board.RemoveArmy(a)
	e.gs.PlayerByID(a.PlayerID).RemoveArmy(a)
}

// addScore credits points to a player and publishes the change. Scores
// only ever increase.
func (e *Engine) addScore(p *Player, delta int, reason string) {
	if delta <= 0 {
		return
	}
	p.Score += delta
	e.bus.Publish(events.NewScoreChangedEvent(e.id, p.ID, delta, p.Score, reason, e.gs.TurnNumber))
}
