package render

import (
	"fmt"
	"io"
	"strings"

	"reversi/game"
	"reversi/meta"
)

// Symbols are the characters printed for each cell.
type Symbols struct {
	Empty  string
	Black  string
	White  string
	Border string
}

func DefaultSymbols() Symbols {
	return Symbols{
		Empty:  meta.EMPTY_SYMBOL,
		Black:  meta.BLACK_SYMBOL,
		White:  meta.WHITE_SYMBOL,
		Border: meta.BORDER_SYMBOL,
	}
}

func (s Symbols) of(c game.Cell) string {
	switch c {
	case game.EmptyCell:
		return s.Empty
	case game.BlackCell:
		return s.Black
	case game.WhiteCell:
		return s.White
	case game.BorderCell:
		return s.Border
	default:
		panic(fmt.Sprintf("unknown cell %d", c))
	}
}

type Option func(r *Renderer)

func WithSymbols(s Symbols) Option {
	return func(r *Renderer) {
		r.symbols = s
	}
}

// WithBorder prints the full 10x10 grid, border ring included.
func WithBorder() Option {
	return func(r *Renderer) {
		r.showBorder = true
	}
}

// Renderer writes the game trace: a snapshot after every turn and a final
// line with the outcome.
type Renderer struct {
	w          io.Writer
	symbols    Symbols
	showBorder bool
}

func New(w io.Writer, options ...Option) *Renderer {
	r := &Renderer{
		w:       w,
		symbols: DefaultSymbols(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Opening prints the board before the first move as turn 0.
func (r *Renderer) Opening(b *game.Board) error {
	return r.snapshot("#0 Opening position:", b)
}

// Turn prints the board after player played move on turn (1-based).
func (r *Renderer) Turn(turn int, player game.Player, move game.Position, b *game.Board) error {
	return r.snapshot(fmt.Sprintf("#%d Player: %s. Move: %s", turn, player, move), b)
}

// Final prints the termination line.
func (r *Renderer) Final(turns int, o game.Outcome) error {
	_, err := fmt.Fprintf(r.w, "Game over after %d turns! %s\n", turns, Verdict(o))
	if err != nil {
		return fmt.Errorf("failed to write final line: %w", err)
	}
	return nil
}

// Verdict describes an outcome, e.g. "Black won by 4 pieces."
func Verdict(o game.Outcome) string {
	if o.Tie {
		return "It is a tie."
	}
	return fmt.Sprintf("%s won by %d pieces.", o.Winner, o.Margin)
}

func (r *Renderer) snapshot(header string, b *game.Board) error {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	sb.WriteString(r.Grid(b))
	sb.WriteString("\n")

	if _, err := io.WriteString(r.w, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}
	return nil
}

// Grid formats the board one row per line with space separated cells.
func (r *Renderer) Grid(b *game.Board) string {
	lo, hi := game.MinIndex, game.MaxIndex
	if r.showBorder {
		lo, hi = 0, game.Size-1
	}

	var sb strings.Builder
	cells := make([]string, 0, hi-lo+1)
	for row := lo; row <= hi; row++ {
		cells = cells[:0]
		for col := lo; col <= hi; col++ {
			cells = append(cells, r.symbols.of(b[row][col]))
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
