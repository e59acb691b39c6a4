package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"positive number", 5, 5},
		{"negative number", -5, 5},
		{"zero", 0, 0},
		{"large negative", -1000000, 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Abs(tt.input))
		})
	}
}

func TestMin(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"a smaller", 3, 5, 3},
		{"b smaller", 7, 2, 2},
		{"equal", 4, 4, 4},
		{"negative numbers", -5, -3, -5},
		{"positive and negative", 5, -3, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Min(tt.a, tt.b))
		})
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"a larger", 5, 3, 5},
		{"b larger", 2, 7, 7},
		{"equal", 4, 4, 4},
		{"negative numbers", -5, -3, -3},
		{"positive and negative", 5, -3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Max(tt.a, tt.b))
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		x, lo, hi int
		expected  int
	}{
		{"within range", 5, 0, 10, 5},
		{"below range", -5, 0, 10, 0},
		{"above range", 15, 0, 10, 10},
		{"at lower bound", 0, 0, 10, 0},
		{"at upper bound", 10, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.x, tt.lo, tt.hi))
		})
	}
}

func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		expected       int
	}{
		{"same point", 3, 3, 3, 3, 0},
		{"horizontal", 0, 0, 5, 0, 5},
		{"vertical", 0, 0, 0, 4, 4},
		{"diagonal", 2, 3, 5, 7, 7},
		{"reversed direction", 5, 5, 2, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ManhattanDistance(tt.x1, tt.y1, tt.x2, tt.y2))
		})
	}
}

func TestIsAdjacent(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		expected       bool
	}{
		{"north", 3, 3, 3, 2, true},
		{"east", 3, 3, 4, 3, true},
		{"south", 3, 3, 3, 4, true},
		{"west", 3, 3, 2, 3, true},
		{"same position", 3, 3, 3, 3, false},
		{"diagonal", 3, 3, 4, 4, false},
		{"two apart", 3, 3, 5, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAdjacent(tt.x1, tt.y1, tt.x2, tt.y2))
		})
	}
}
