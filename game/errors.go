package game

import (
	"fmt"
)

// IllegalMoveError reports a move that fails IsLegal on the board it was
// applied to.
type IllegalMoveError struct {
	Player   Player
	Position Position
	Board    Board
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move for %s at %s", e.Player, e.Position)
}

type UnknownPlayerError struct {
	s string
}

func (e *UnknownPlayerError) Error() string {
	return fmt.Sprintf("player %q is unknown", e.s)
}

