package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// Agent picks the move to play for the player to move in gs. It must not
// modify gs and is only asked when that player has a legal move.
type Agent interface {
	FindMove(gs *game.GameState) (game.Position, metrics.SearchMetric)
}

// Depther is implemented by agents that search to a fixed depth.
type Depther interface {
	Depth() int
}
