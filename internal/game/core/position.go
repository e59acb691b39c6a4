package core

import (
	"fmt"

	"github.com/strategic-conquest/engine/internal/common"
)

// Position represents a tile location on the game board
type Position struct {
	X, Y int
}

// NewPosition creates a new position with the given x and y values
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// IsValid checks if the position is within the given bounds
func (p Position) IsValid(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Manhattan calculates the Manhattan distance to another position
func (p Position) Manhattan(other Position) int {
	return common.ManhattanDistance(p.X, p.Y, other.X, other.Y)
}

// IsAdjacentTo checks if this position is orthogonally adjacent to another
func (p Position) IsAdjacentTo(other Position) bool {
	return common.IsAdjacent(p.X, p.Y, other.X, other.Y)
}

// Neighbors returns the four orthogonal neighbors of this position
func (p Position) Neighbors() []Position {
	return []Position{
		{X: p.X, Y: p.Y - 1}, // North
		{X: p.X + 1, Y: p.Y}, // East
		{X: p.X, Y: p.Y + 1}, // South
		{X: p.X - 1, Y: p.Y}, // West
	}
}

// ValidNeighbors returns only the neighbors that are within the given bounds
func (p Position) ValidNeighbors(width, height int) []Position {
	valid := make([]Position, 0, 4)
	for _, n := range p.Neighbors() {
		if n.IsValid(width, height) {
			valid = append(valid, n)
		}
	}
	return valid
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
