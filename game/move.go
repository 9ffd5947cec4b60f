package game

// Apply plays p at pos and flips every bracketed opponent run. It mutates
// and returns b.
//
// pos must come from LegalMoves; anything else is a programming error and
// panics with *IllegalMoveError.
func (b *Board) Apply(p Player, pos Position) *Board {
	if !b.IsLegal(p, pos) {
		panic(&IllegalMoveError{Player: p, Position: pos, Board: *b})
	}
	b.apply(p, pos)
	return b
}

// TryApply is Apply for moves from untrusted input. The board is left
// untouched when the move is illegal.
func (b *Board) TryApply(p Player, pos Position) error {
	if !b.IsLegal(p, pos) {
		return &IllegalMoveError{Player: p, Position: pos, Board: *b}
	}
	b.apply(p, pos)
	return nil
}

func (b *Board) apply(p Player, pos Position) {
	own := p.Cell()
	b.Set(pos, own)
	// Rays from pos are disjoint, so flipping one never changes another's bracket
	for _, dir := range Directions {
		end, ok := b.Bracket(p, pos, dir)
		if !ok {
			continue
		}
		for cur := pos.Step(dir); cur != end; cur = cur.Step(dir) {
			b.Set(cur, own)
		}
	}
}
