package game

import (
	"fmt"
)

// Position is a coordinate on the stored grid. Interior positions have
// Row and Col in [MinIndex, MaxIndex].
type Position struct {
	Row int
	Col int
}

// NoMove marks pass and terminal nodes. It is a border cell, so it is never
// a legal move.
var NoMove = Position{}

func (p Position) IsInterior() bool {
	return p.Row >= MinIndex && p.Row <= MaxIndex &&
		p.Col >= MinIndex && p.Col <= MaxIndex
}

func (p Position) IsNoMove() bool {
	return p == NoMove
}

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

func (p Position) String() string {
	if p.IsNoMove() {
		return "<no move>"
	}
	if !p.IsInterior() {
		return fmt.Sprintf("<border>(%d, %d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+rune(p.Col-MinIndex), p.Row)
}
