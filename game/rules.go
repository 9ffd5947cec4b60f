package game

// Transition says how the turn moved on after a move was played.
type Transition int

const (
	Alternate Transition = iota // the opponent moves next
	Pass                        // the opponent has no move, the same player moves again
	Terminal                    // neither side can move
)

func (t Transition) String() string {
	switch t {
	case Alternate:
		return "alternate"
	case Pass:
		return "pass"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Bracket walks from pos along dir looking for a run of opponent pieces
// closed by one of p's pieces. It returns the closing position and true when
// the direction captures.
//
// The walk only continues over opponent pieces, and the border ring never
// holds one, so it always stops inside the grid.
func (b *Board) Bracket(p Player, pos Position, dir Direction) (Position, bool) {
	own, opp := p.Cell(), p.Opponent().Cell()

	cur := pos.Step(dir)
	if b.At(cur) == own {
		return NoMove, false
	}
	for b.At(cur) == opp {
		cur = cur.Step(dir)
	}
	if b.At(cur) != own {
		return NoMove, false
	}
	return cur, true
}

// IsLegal reports whether p may play at pos: pos is an empty interior cell
// and at least one direction brackets opponent pieces.
func (b *Board) IsLegal(p Player, pos Position) bool {
	if !pos.IsInterior() || b.At(pos) != EmptyCell {
		return false
	}
	for _, dir := range Directions {
		if _, ok := b.Bracket(p, pos, dir); ok {
			return true
		}
	}
	return false
}

// LegalMoves returns every legal position for p in row-major order. Search
// breaks ties in this order.
func (b *Board) LegalMoves(p Player) []Position {
	var moves []Position
	for _, pos := range interior {
		if b.IsLegal(p, pos) {
			moves = append(moves, pos)
		}
	}
	return moves
}

func (b *Board) HasLegalMove(p Player) bool {
	for _, pos := range interior {
		if b.IsLegal(p, pos) {
			return true
		}
	}
	return false
}

// Next decides who moves after current has played on b.
func Next(b *Board, current Player) (Player, Transition) {
	opponent := current.Opponent()
	if b.HasLegalMove(opponent) {
		return opponent, Alternate
	}
	if b.HasLegalMove(current) {
		return current, Pass
	}
	return current, Terminal
}
