package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. It is the baseline opponent
// in experiments; equal seeds replay equal games.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(gs *game.GameState) (game.Position, metrics.SearchMetric) {
	moves := gs.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}
	}
	return moves[r.rng.Intn(len(moves))], metrics.SearchMetric{}
}

func (r *Random) Depth() int {
	return 0
}
