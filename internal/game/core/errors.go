package core

import "errors"

var (
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrOutOfRange        = errors.New("destination beyond movement range")
	ErrNotAdjacent       = errors.New("positions are not adjacent")
	ErrInvalidSplit      = errors.New("invalid split amounts")
	ErrDifferentOwners   = errors.New("armies belong to different players")
	ErrNotAtHeadquarters = errors.New("army is not at its headquarters")
	ErrGameOver          = errors.New("game is over")
	ErrInvalidPlayers    = errors.New("player count must be between 2 and 4")
	ErrUnknownTerrain    = errors.New("unknown terrain kind")
)
