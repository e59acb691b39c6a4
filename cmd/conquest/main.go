// Command conquest runs a scripted demo game: seeded terrain, simple
// per-player behavior, and periodic ASCII board output. It exists to
// exercise the full engine surface end to end.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/strategic-conquest/engine/internal/config"
	"github.com/strategic-conquest/engine/internal/game"
	"github.com/strategic-conquest/engine/internal/game/core"
	"github.com/strategic-conquest/engine/internal/game/events/subscribers"
	"github.com/strategic-conquest/engine/internal/persist"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to config file (optional)")
		seed        = flag.Int64("seed", 0, "map generation seed (0 = time-based)")
		players     = flag.Int("players", 2, "number of players (2-4)")
		cycles      = flag.Int("cycles", 50, "maximum command cycles to run")
		logLevel    = flag.String("log-level", "info", "log level (trace|debug|info|warn|error)")
		savePath    = flag.String("save", "", "write the final state to this file (.json or .yaml)")
		renderEvery = flag.Int("render-every", 10, "print the board every N cycles (0 = never)")
		colorize    = flag.Bool("color", true, "ANSI colors in board output")
	)
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *logLevel)
		os.Exit(1)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
	log.Logger = logger

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	engine, err := game.NewEngine(game.GameConfig{
		Config:     cfg,
		NumPlayers: *players,
		Rng:        rand.New(rand.NewSource(*seed)),
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create engine")
	}
	engine.Bus().Subscribe(subscribers.NewLogger("demo-logger", logger, zerolog.DebugLevel))

	logger.Info().Int64("seed", *seed).Int("players", *players).Msg("Demo game starting")

	gs := engine.GameState()
	for cycle := 1; cycle <= *cycles && !gs.GameOver; cycle++ {
		for range gs.Players {
			if gs.GameOver {
				break
			}
			playTurn(engine, gs.CurrentPlayer())
			engine.Update()
			if gs.GameOver {
				break
			}
			if err := engine.NextTurn(); err != nil {
				break
			}
		}
		if *renderEvery > 0 && (cycle%*renderEvery == 0 || gs.GameOver) {
			fmt.Println(engine.Render(*colorize))
		}
	}

	fmt.Println(engine.Render(*colorize))
	if *savePath != "" {
		if err := persist.Save(engine, *savePath); err != nil {
			logger.Error().Err(err).Str("path", *savePath).Msg("Failed to save game")
		} else {
			logger.Info().Str("path", *savePath).Msg("Final state saved")
		}
	}
}

// playTurn runs one player's scripted behavior: merge adjacent stacks,
// split oversized armies to spread out, and march everyone toward the
// nearest fort.
func playTurn(e *game.Engine, p *game.Player) {
	gs := e.GameState()

	// Merge the first adjacent pair found, at most one per turn.
merge:
	for _, a := range p.Armies {
		for _, b := range p.Armies {
			if a != b && a.Position.Manhattan(b.Position) == 1 {
				if err := e.MergeArmies(a, b); err == nil {
					break merge
				}
			}
		}
	}

	// Split a heavy army onto a free neighboring tile.
	for _, a := range p.Armies {
		if a.Strength <= 40 || !a.CanSplit() {
			continue
		}
		for _, n := range gs.Board.AdjacentPositions(a.Position) {
			if len(gs.Board.ArmiesAt(n)) == 0 {
				e.SplitArmy(a, a.Strength/2, a.Food/2, false, n)
				break
			}
		}
		break
	}

	for _, a := range append([]*core.Army(nil), p.Armies...) {
		if a.MovedThisTurn {
			continue
		}
		target, ok := nearestFort(gs.Board, a.Position)
		if !ok {
			continue
		}
		e.MoveArmy(a, stepToward(a.Position, target, e.MovementRange(a)))
	}
}

func nearestFort(b *core.Board, from core.Position) (core.Position, bool) {
	best := core.Position{}
	bestDist := -1
	for x := 0; x < b.W; x++ {
		for y := 0; y < b.H; y++ {
			if b.T[b.Idx(x, y)].Terrain != core.TerrainFort {
				continue
			}
			p := core.NewPosition(x, y)
			if d := from.Manhattan(p); bestDist < 0 || d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	return best, bestDist >= 0
}

// stepToward clamps a straight-line march at the given range, x first
func stepToward(from, to core.Position, maxRange int) core.Position {
	p := from
	for p.Manhattan(from) < maxRange && p != to {
		switch {
		case p.X < to.X:
			p.X++
		case p.X > to.X:
			p.X--
		case p.Y < to.Y:
			p.Y++
		case p.Y > to.Y:
			p.Y--
		}
	}
	return p
}
