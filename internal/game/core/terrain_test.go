package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerrainNamesRoundTrip(t *testing.T) {
	kinds := []Terrain{
		TerrainPlain,
		TerrainHeadquarters,
		TerrainFort,
		TerrainForest,
		TerrainValley,
		TerrainRiver,
		TerrainMountain,
	}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			parsed, err := ParseTerrain(kind.String())
			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		})
	}
}

func TestParseTerrainUnknown(t *testing.T) {
	for _, name := range []string{"", "swamp", "PLAIN", "plains"} {
		_, err := ParseTerrain(name)
		assert.ErrorIs(t, err, ErrUnknownTerrain, "name %q should not parse", name)
	}
}

func TestMovementCost(t *testing.T) {
	tests := []struct {
		terrain  Terrain
		expected float64
	}{
		{TerrainPlain, 1.0},
		{TerrainHeadquarters, 1.0},
		{TerrainFort, 1.0},
		{TerrainValley, 1.0},
		{TerrainForest, 2.0},
		{TerrainRiver, 2.0},
		{TerrainMountain, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.terrain.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.terrain.MovementCost())
		})
	}
}
