package game

// Differential returns p's interior pieces minus the opponent's. It is
// zero-sum: Differential(Black) == -Differential(White) on every board.
func (b *Board) Differential(p Player) int {
	return b.Count(p.Cell()) - b.Count(p.Opponent().Cell())
}

// EvaluateDifferential is Differential as an Evaluate function.
func EvaluateDifferential(b *Board, p Player) int {
	return b.Differential(p)
}

// Outcome is the result of a finished game.
type Outcome struct {
	Winner Player
	Tie    bool
	Margin int // winner's piece differential, 0 on a tie
	Black  int // black pieces on the final board
	White  int // white pieces on the final board
}

// Result computes the outcome from the differential of both colors.
func Result(b *Board) Outcome {
	black, white := b.Differential(Black), b.Differential(White)
	o := Outcome{
		Black: b.Count(BlackCell),
		White: b.Count(WhiteCell),
	}
	switch {
	case black > white:
		o.Winner, o.Margin = Black, black
	case white > black:
		o.Winner, o.Margin = White, white
	default:
		o.Tie = true
	}
	return o
}

func (o Outcome) String() string {
	if o.Tie {
		return "tie"
	}
	return o.Winner.String()
}
