package game

import (
	"fmt"
	"strings"
)

// Board is the full 10x10 grid. The outer ring holds BorderCell and never
// changes; the interior holds EmptyCell, BlackCell or WhiteCell.
//
// Board is an array, so plain assignment copies it. Search relies on this to
// give every branch a private board.
type Board [Size][Size]Cell

// interior lists the 64 playable positions in row-major order.
var interior = func() []Position {
	ps := make([]Position, 0, NumCells)
	for row := MinIndex; row <= MaxIndex; row++ {
		for col := MinIndex; col <= MaxIndex; col++ {
			ps = append(ps, Position{Row: row, Col: col})
		}
	}
	return ps
}()

// NewBoard returns the opening position: the border ring, an empty interior
// and the four centre pieces on the diagonals.
func NewBoard() Board {
	b := emptyBoard()
	b[4][4], b[5][5] = WhiteCell, WhiteCell
	b[4][5], b[5][4] = BlackCell, BlackCell
	return b
}

func emptyBoard() Board {
	var b Board
	for i := 0; i < Size; i++ {
		b[0][i] = BorderCell
		b[Size-1][i] = BorderCell
		b[i][0] = BorderCell
		b[i][Size-1] = BorderCell
	}
	return b
}

// ParseBoard builds a board from 8 rows of 8 characters: 'X' or 'B' for
// black, 'O' or 'W' for white and '-' or '.' for empty. Spaces are ignored.
func ParseBoard(rows ...string) (Board, error) {
	b := emptyBoard()
	if len(rows) != MaxIndex {
		return b, fmt.Errorf("expected %d rows, got %d", MaxIndex, len(rows))
	}
	for i, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != MaxIndex {
			return b, fmt.Errorf("row %d: expected %d cells, got %d", i+1, MaxIndex, len(line))
		}
		for j, ch := range line {
			var c Cell
			switch ch {
			case 'X', 'x', 'B', 'b':
				c = BlackCell
			case 'O', 'o', 'W', 'w':
				c = WhiteCell
			case '-', '.':
				c = EmptyCell
			default:
				return b, fmt.Errorf("row %d: unknown cell %q", i+1, ch)
			}
			b[i+MinIndex][j+MinIndex] = c
		}
	}
	return b, nil
}

func (b *Board) At(p Position) Cell {
	return b[p.Row][p.Col]
}

// Set changes an interior cell. The border ring is immutable.
func (b *Board) Set(p Position, c Cell) {
	if !p.IsInterior() {
		panic(fmt.Sprintf("cannot set border cell %v", p))
	}
	if c == BorderCell {
		panic(fmt.Sprintf("cannot place a border cell at %v", p))
	}
	b[p.Row][p.Col] = c
}

// Count returns the number of interior cells holding c.
func (b *Board) Count(c Cell) int {
	n := 0
	for _, p := range interior {
		if b.At(p) == c {
			n++
		}
	}
	return n
}
