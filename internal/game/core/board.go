package core

import "fmt"

// Board is the rectangular tile grid plus a positional index of every
// army on it. Armies are owned by their players; the index holds the
// same pointers purely for positional lookup. Invariant: a position key
// exists iff at least one army occupies it, and every registered army's
// Position matches exactly the entry holding it.
type Board struct {
	W, H int
	T    []Tile // length = W*H (row-major)

	armies map[Position][]*Army
}

// NewBoard creates a board of unowned plain tiles with no armies
func NewBoard(w, h int) *Board {
	b := &Board{
		W:      w,
		H:      h,
		T:      make([]Tile, w*h),
		armies: make(map[Position][]*Army),
	}
	for i := range b.T {
		b.T[i].Terrain = TerrainPlain
		b.T[i].Owner = NoOwner
	}
	return b
}

func (b *Board) Idx(x, y int) int      { return y*b.W + x }
func (b *Board) XY(idx int) (int, int) { return idx % b.W, idx / b.W }

// InBounds checks if a position is within board boundaries
func (b *Board) InBounds(p Position) bool {
	return p.IsValid(b.W, b.H)
}

// Tile returns the tile at p. Out-of-bounds access is a failure the
// caller propagates, never one the board recovers from.
func (b *Board) Tile(p Position) (*Tile, error) {
	if !b.InBounds(p) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	return &b.T[b.Idx(p.X, p.Y)], nil
}

// SetTerrain assigns a terrain kind to the tile at p
func (b *Board) SetTerrain(p Position, terrain Terrain) error {
	t, err := b.Tile(p)
	if err != nil {
		return err
	}
	t.Terrain = terrain
	return nil
}

// AddArmy registers an army under its current position
func (b *Board) AddArmy(a *Army) {
	b.armies[a.Position] = append(b.armies[a.Position], a)
}

// RemoveArmy drops an army from the index. Order of the remaining
// armies at the position is preserved; combat resolution depends on it.
func (b *Board) RemoveArmy(a *Army) {
	list := b.armies[a.Position]
	for i, other := range list {
		if other == a {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(b.armies, a.Position)
	} else {
		b.armies[a.Position] = list
	}
}

// MoveArmy relocates an army's index entry and updates its position
func (b *Board) MoveArmy(a *Army, to Position) error {
	if !b.InBounds(to) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, to)
	}
	b.RemoveArmy(a)
	a.Position = to
	b.AddArmy(a)
	return nil
}

// ArmiesAt returns the armies at p in registration order
func (b *Board) ArmiesAt(p Position) []*Army {
	return b.armies[p]
}

// OccupiedPositions returns every position holding at least one army,
// in map order; callers needing determinism sort the result.
func (b *Board) OccupiedPositions() []Position {
	out := make([]Position, 0, len(b.armies))
	for p := range b.armies {
		out = append(out, p)
	}
	return out
}

// AdjacentPositions returns the in-bounds orthogonal neighbors of p
func (b *Board) AdjacentPositions(p Position) []Position {
	return p.ValidNeighbors(b.W, b.H)
}

// AdjacentArmies returns every army on a tile orthogonally adjacent to p
func (b *Board) AdjacentArmies(p Position) []*Army {
	var out []*Army
	for _, n := range b.AdjacentPositions(p) {
		out = append(out, b.armies[n]...)
	}
	return out
}
