package core

import "fmt"

// Terrain identifies the kind of a tile. The set is closed: every kind
// appears in the name and movement cost tables below, and unrecognized
// names fail to parse instead of falling back to a default.
type Terrain int

const (
	TerrainPlain Terrain = iota
	TerrainHeadquarters
	TerrainFort
	TerrainForest
	TerrainValley
	TerrainRiver
	TerrainMountain
)

var terrainNames = [...]string{
	TerrainPlain:        "plain",
	TerrainHeadquarters: "headquarters",
	TerrainFort:         "fort",
	TerrainForest:       "forest",
	TerrainValley:       "valley",
	TerrainRiver:        "river",
	TerrainMountain:     "mountain",
}

// Traversal costs per tile, used for display and range estimation.
// Movement validation itself is pure Manhattan distance.
var terrainCosts = [...]float64{
	TerrainPlain:        1.0,
	TerrainHeadquarters: 1.0,
	TerrainFort:         1.0,
	TerrainForest:       2.0,
	TerrainValley:       1.0,
	TerrainRiver:        2.0,
	TerrainMountain:     2.0,
}

// String returns the serialization name of the terrain kind
func (t Terrain) String() string {
	if t < 0 || int(t) >= len(terrainNames) {
		return fmt.Sprintf("terrain(%d)", int(t))
	}
	return terrainNames[t]
}

// MovementCost returns the traversal cost of the terrain kind
func (t Terrain) MovementCost() float64 {
	return terrainCosts[t]
}

// ParseTerrain maps a serialization name back to its terrain kind.
// Unknown names are an error, never a default kind.
func ParseTerrain(name string) (Terrain, error) {
	for t, n := range terrainNames {
		if n == name {
			return Terrain(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTerrain, name)
}
