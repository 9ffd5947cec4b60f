package game

import "strings"

// Cell is the content of one square of the stored grid.
type Cell uint8

const (
	EmptyCell Cell = iota
	BlackCell
	WhiteCell
	BorderCell
)

func (c Cell) String() string {
	switch c {
	case EmptyCell:
		return "Empty"
	case BlackCell:
		return "Black"
	case WhiteCell:
		return "White"
	case BorderCell:
		return "Border"
	default:
		return "Invalid"
	}
}

// Player is one of the two sides. It is kept apart from Cell on purpose:
// a player is never Empty or Border.
type Player uint8

const (
	Black Player = iota
	White
)

// Opponent maps each player to the other one.
func Opponent(p Player) Player {
	if p == Black {
		return White
	}
	return Black
}

func (p Player) Opponent() Player {
	return Opponent(p)
}

// Cell returns the cell state holding one of p's pieces.
func (p Player) Cell() Cell {
	if p == Black {
		return BlackCell
	}
	return WhiteCell
}

func (p Player) String() string {
	if p == Black {
		return "Black"
	}
	return "White"
}

// ParsePlayer accepts "black" or "white" in any case.
func ParsePlayer(s string) (Player, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return Black, true
	case "white":
		return White, true
	default:
		return Black, false
	}
}

func (p Player) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(p.String())), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	parsed, ok := ParsePlayer(string(text))
	if !ok {
		return &UnknownPlayerError{s: string(text)}
	}
	*p = parsed
	return nil
}
