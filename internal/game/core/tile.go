package core

// NoOwner marks a tile with no owning player.
const NoOwner = -1

// Tile represents a single cell on the map.
// Owner: NoOwner means unowned; 0..N-1 are player IDs. Ownership is
// only meaningful for headquarters tiles.
type Tile struct {
	Terrain Terrain
	Owner   int
}

func (t *Tile) IsHeadquarters() bool { return t.Terrain == TerrainHeadquarters }
func (t *Tile) IsFort() bool         { return t.Terrain == TerrainFort }

// IsProtected reports whether terrain passes must leave the tile unchanged
func (t *Tile) IsProtected() bool {
	return t.Terrain == TerrainHeadquarters || t.Terrain == TerrainFort
}

// IsOwnedBy reports whether the tile belongs to the given player
func (t *Tile) IsOwnedBy(playerID int) bool {
	return t.Owner == playerID
}
