package mapgen

import (
	"math"
	"math/rand"

	"github.com/strategic-conquest/engine/internal/common"
	"github.com/strategic-conquest/engine/internal/game/core"
)

// riverDriftChance is the per-step probability that a river walk shifts
// one tile sideways.
const riverDriftChance = 0.2

// Config holds the knobs for terrain generation.
type Config struct {
	FortCount        int
	ForestFraction   float64
	RiverCount       int
	MountainFraction float64
	ForestClump      float64
	MountainClump    float64
	FortMargin       int
}

// DefaultConfig returns the standard terrain mix: five forts, a fifth of
// the board forested, a tenth mountainous, two rivers.
func DefaultConfig() Config {
	return Config{
		FortCount:        5,
		ForestFraction:   0.2,
		RiverCount:       2,
		MountainFraction: 0.1,
		ForestClump:      0.7,
		MountainClump:    0.6,
		FortMargin:       2,
	}
}

// Generator handles terrain generation with deterministic RNG
type Generator struct {
	config Config
	rng    *rand.Rand
}

// NewGenerator creates a new terrain generator
func NewGenerator(config Config, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// Generate lays terrain onto b in place. Passes run in a fixed order:
// forts, forest clumps, mountain clumps, rivers. Later passes never
// overwrite headquarters or fort tiles. Same seed and config produce an
// identical board.
func (g *Generator) Generate(b *core.Board) {
	// Repeated generation starts from a clean slate.
	for i := range b.T {
		b.T[i].Terrain = core.TerrainPlain
		b.T[i].Owner = core.NoOwner
	}

	g.placeForts(b)
	g.growTerrain(b, core.TerrainForest, g.config.ForestFraction, g.config.ForestClump)
	g.growTerrain(b, core.TerrainMountain, g.config.MountainFraction, g.config.MountainClump)
	for i := 0; i < g.config.RiverCount; i++ {
		g.carveRiver(b)
	}
}

func (g *Generator) placeForts(b *core.Board) {
	for _, p := range g.distributedPositions(b, g.config.FortCount) {
		b.T[b.Idx(p.X, p.Y)].Terrain = core.TerrainFort
	}
}

// distributedPositions spreads count positions across the board, one per
// cell of a near-square region grid. Each position stays FortMargin tiles
// away from its region's edges when the region is large enough, and falls
// back to the region midpoint when it is not.
func (g *Generator) distributedPositions(b *core.Board, count int) []core.Position {
	if count <= 0 {
		return nil
	}

	type region struct{ x0, y0, x1, y1 int }

	var regions []region
	if count == 1 {
		regions = []region{{0, 0, b.W, b.H}}
	} else {
		gridSize := int(math.Ceil(math.Sqrt(float64(count))))
		regionW := b.W / gridSize
		regionH := b.H / gridSize

	grid:
		for i := 0; i < gridSize; i++ {
			for j := 0; j < gridSize; j++ {
				regions = append(regions, region{
					x0: i * regionW,
					y0: j * regionH,
					x1: common.Min((i+1)*regionW, b.W),
					y1: common.Min((j+1)*regionH, b.H),
				})
				if len(regions) >= count {
					break grid
				}
			}
		}
	}

	margin := g.config.FortMargin
	positions := make([]core.Position, 0, count)
	for _, r := range regions {
		x := (r.x0 + r.x1) / 2
		if r.x1-r.x0 > 2*margin {
			x = r.x0 + margin + g.rng.Intn(r.x1-r.x0-2*margin)
		}
		y := (r.y0 + r.y1) / 2
		if r.y1-r.y0 > 2*margin {
			y = r.y0 + margin + g.rng.Intn(r.y1-r.y0-2*margin)
		}
		positions = append(positions, core.NewPosition(x, y))
	}
	return positions
}

// growTerrain claims a fraction of the board for kind by scattering seed
// points and growing clumps around them. A higher clump factor means fewer
// seeds and therefore larger contiguous patches.
func (g *Generator) growTerrain(b *core.Board, kind core.Terrain, fraction, clump float64) {
	target := int(float64(b.W*b.H) * fraction)
	if target <= 0 {
		return
	}

	seedCount := common.Max(1, int(float64(target)*(1-clump)))
	claimed := make(map[core.Position]bool, target)
	order := make([]core.Position, 0, target)
	claim := func(p core.Position) {
		claimed[p] = true
		order = append(order, p)
	}

	// Scatter seeds with a bounded attempt budget so a board crowded with
	// protected tiles cannot stall generation.
	maxAttempts := seedCount * 10
	for attempts := 0; len(order) < seedCount && attempts < maxAttempts; attempts++ {
		p := core.NewPosition(g.rng.Intn(b.W), g.rng.Intn(b.H))
		if claimed[p] || b.T[b.Idx(p.X, p.Y)].IsProtected() {
			continue
		}
		claim(p)
	}
	if len(order) == 0 {
		return
	}

	// Grow outward from a random member; when that member is landlocked,
	// scan the whole clump before giving up.
	for len(order) < target {
		p := order[g.rng.Intn(len(order))]
		next, ok := g.eligibleNeighbor(b, p, claimed, kind)
		if !ok {
			next, ok = g.anyEligibleNeighbor(b, order, claimed, kind)
		}
		if !ok {
			break
		}
		claim(next)
	}

	for _, p := range order {
		if t := &b.T[b.Idx(p.X, p.Y)]; !t.IsProtected() {
			t.Terrain = kind
		}
	}
}

// eligibleNeighbor picks a random orthogonal neighbor of p that is in
// bounds, unclaimed, and not protected or already of the growing kind.
func (g *Generator) eligibleNeighbor(b *core.Board, p core.Position, claimed map[core.Position]bool, kind core.Terrain) (core.Position, bool) {
	var candidates []core.Position
	for _, n := range b.AdjacentPositions(p) {
		if claimed[n] {
			continue
		}
		if t := b.T[b.Idx(n.X, n.Y)]; t.IsProtected() || t.Terrain == kind {
			continue
		}
		candidates = append(candidates, n)
	}
	if len(candidates) == 0 {
		return core.Position{}, false
	}
	return candidates[g.rng.Intn(len(candidates))], true
}

func (g *Generator) anyEligibleNeighbor(b *core.Board, order []core.Position, claimed map[core.Position]bool, kind core.Terrain) (core.Position, bool) {
	for _, p := range order {
		if n, ok := g.eligibleNeighbor(b, p, claimed, kind); ok {
			return n, true
		}
	}
	return core.Position{}, false
}

// carveRiver walks border to border along a random axis, one tile per
// step, drifting sideways with probability riverDriftChance. Drift keeps
// the walk off the outermost ring. Headquarters and fort tiles survive
// the crossing.
func (g *Generator) carveRiver(b *core.Board) {
	// A border-to-border walk needs an interior to start from.
	if b.W < 5 || b.H < 5 {
		return
	}

	var path []core.Position

	if g.rng.Intn(2) == 0 {
		fromLeft := g.rng.Intn(2) == 0
		y := 2 + g.rng.Intn(b.H-4)
		x, step := 0, 1
		if !fromLeft {
			x, step = b.W-1, -1
		}
		for x >= 0 && x < b.W {
			path = append(path, core.NewPosition(x, y))
			x += step
			if g.rng.Float64() < riverDriftChance {
				if ny := y + g.lateralStep(); ny >= 1 && ny < b.H-1 {
					y = ny
				}
			}
		}
	} else {
		fromTop := g.rng.Intn(2) == 0
		x := 2 + g.rng.Intn(b.W-4)
		y, step := 0, 1
		if !fromTop {
			y, step = b.H-1, -1
		}
		for y >= 0 && y < b.H {
			path = append(path, core.NewPosition(x, y))
			y += step
			if g.rng.Float64() < riverDriftChance {
				if nx := x + g.lateralStep(); nx >= 1 && nx < b.W-1 {
					x = nx
				}
			}
		}
	}

	for _, p := range path {
		if t := &b.T[b.Idx(p.X, p.Y)]; !t.IsProtected() {
			t.Terrain = core.TerrainRiver
		}
	}
}

func (g *Generator) lateralStep() int {
	if g.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
