package searcher

import (
	"fmt"

	"reversi/experiments/metrics"
	"reversi/game"
)

// Result is a negamax score from the mover's perspective and the move that
// achieves it. Move is only set by the root call, inner nodes and pass or
// terminal nodes return game.NoMove.
type Result struct {
	Score int
	Move  game.Position
}

// Search runs a full-width fixed-depth negamax for player on board and
// returns the best score with the first move reaching it in row-major order.
//
// board is taken by value: every branch explores its own copy and the
// caller's board is never touched.
func Search(player game.Player, board game.Board, depth int) Result {
	if depth < 0 {
		panic(fmt.Sprintf("negative search depth %d", depth))
	}
	return negamax(player, board, depth, game.EvaluateDifferential, metrics.NewDummyCollector())
}

func negamax(player game.Player, board game.Board, depth int, evaluate game.Evaluate, m metrics.Collector) Result {
	m.AddNode()

	if depth == 0 {
		return Result{Score: evaluate(&board, player), Move: game.NoMove}
	}

	opponent := player.Opponent()
	moves := board.LegalMoves(player)

	if len(moves) == 0 {
		if !board.HasLegalMove(opponent) {
			return Result{Score: terminalScore(&board, player), Move: game.NoMove}
		}
		// Pass: the opponent moves on the same board
		return Result{Score: -negamax(opponent, board, depth-1, evaluate, m).Score, Move: game.NoMove}
	}

	best := Result{Move: game.NoMove}
	for i, move := range moves {
		child := board
		child.Apply(player, move)
		value := -negamax(opponent, child, depth-1, evaluate, m).Score
		// Strictly greater keeps the first move on ties
		if i == 0 || value > best.Score {
			best = Result{Score: value, Move: move}
		}
	}
	return best
}

// terminalScore scores a position where neither side can move. A drawn
// position scores 0.
func terminalScore(b *game.Board, player game.Player) int {
	diff := b.Differential(player)
	switch {
	case diff > 0:
		return Sentinel
	case diff < 0:
		return -Sentinel
	default:
		return 0
	}
}
