package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManhattan(t *testing.T) {
	tests := []struct {
		name     string
		from     Position
		to       Position
		expected int
	}{
		{name: "same position", from: Position{3, 3}, to: Position{3, 3}, expected: 0},
		{name: "horizontal", from: Position{0, 0}, to: Position{5, 0}, expected: 5},
		{name: "vertical", from: Position{0, 0}, to: Position{0, 4}, expected: 4},
		{name: "diagonal", from: Position{2, 3}, to: Position{5, 7}, expected: 7},
		{name: "negative direction", from: Position{5, 5}, to: Position{2, 1}, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.Manhattan(tt.to))
			assert.Equal(t, tt.expected, tt.to.Manhattan(tt.from), "distance should be symmetric")
		})
	}
}

func TestIsAdjacentTo(t *testing.T) {
	tests := []struct {
		name     string
		from     Position
		to       Position
		expected bool
	}{
		{name: "north", from: Position{3, 3}, to: Position{3, 2}, expected: true},
		{name: "east", from: Position{3, 3}, to: Position{4, 3}, expected: true},
		{name: "south", from: Position{3, 3}, to: Position{3, 4}, expected: true},
		{name: "west", from: Position{3, 3}, to: Position{2, 3}, expected: true},
		{name: "same position", from: Position{3, 3}, to: Position{3, 3}, expected: false},
		{name: "diagonal", from: Position{3, 3}, to: Position{4, 4}, expected: false},
		{name: "two steps away", from: Position{3, 3}, to: Position{3, 5}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.IsAdjacentTo(tt.to))
		})
	}
}

func TestNeighbors(t *testing.T) {
	p := Position{5, 5}
	neighbors := p.Neighbors()

	expected := []Position{
		{5, 4}, // North
		{6, 5}, // East
		{5, 6}, // South
		{4, 5}, // West
	}
	assert.Equal(t, expected, neighbors)
}

func TestValidNeighbors(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected int
	}{
		{name: "center has four", pos: Position{5, 5}, expected: 4},
		{name: "edge has three", pos: Position{0, 5}, expected: 3},
		{name: "corner has two", pos: Position{0, 0}, expected: 2},
		{name: "opposite corner has two", pos: Position{9, 9}, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid := tt.pos.ValidNeighbors(10, 10)
			assert.Len(t, valid, tt.expected)
			for _, n := range valid {
				assert.True(t, n.IsValid(10, 10))
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "(3,7)", Position{3, 7}.String())
}
