package common

// Abs returns the absolute value of an integer
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Clamp limits a value to the inclusive range [lo, hi]
func Clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ManhattanDistance calculates the Manhattan distance between two points
func ManhattanDistance(x1, y1, x2, y2 int) int {
	return Abs(x1-x2) + Abs(y1-y2)
}

// IsAdjacent checks if two positions are orthogonally adjacent (not diagonally)
func IsAdjacent(x1, y1, x2, y2 int) bool {
	dx := Abs(x1 - x2)
	dy := Abs(y1 - y2)
	return (dx == 1 && dy == 0) || (dx == 0 && dy == 1)
}
