package searcher

import (
	"fmt"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(n *Negamax)

// Negamax is a configured fixed-depth searcher. It plays the same moves as
// Search; the options only change how the work is spread and measured.
type Negamax struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(n *Negamax) {
		if depth > 0 {
			n.depth = depth
		}
	}
}

// WithGoroutines evaluates the root moves concurrently. Each root branch
// owns its board copy, so no synchronisation is needed below the root.
func WithGoroutines(goroutines int) Option {
	return func(n *Negamax) {
		if goroutines > 0 {
			n.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(n *Negamax) {
		if evaluate != nil {
			n.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(n *Negamax) {
		n.metrics = metrics.NewCollector()
	}
}

func NewNegamax(options ...Option) *Negamax {
	n := &Negamax{ // Default values
		depth:      meta.DefaultDepth,
		goroutines: 1,
		evaluate:   game.EvaluateDifferential,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *Negamax) Depth() int {
	return n.depth
}

// FindMove searches the current player's best move on the live state. The
// state is not modified.
func (n *Negamax) FindMove(gs *game.GameState) (game.Position, metrics.SearchMetric) {
	n.metrics.Start(n.goroutines, n.depth)
	result := n.search(gs.CurrentPlayer, gs.Board)
	metric := n.metrics.Complete(result.Score)

	log.Debug().
		Str("player", gs.CurrentPlayer.String()).
		Str("move", result.Move.String()).
		Int("score", result.Score).
		Int("nodes", metric.Nodes).
		Msg("search complete")

	return result.Move, metric
}

// Search is the package-level Search with this searcher's options.
func (n *Negamax) Search(player game.Player, board game.Board) Result {
	return n.search(player, board)
}

func (n *Negamax) search(player game.Player, board game.Board) Result {
	if n.goroutines <= 1 {
		return negamax(player, board, n.depth, n.evaluate, n.metrics)
	}

	moves := board.LegalMoves(player)
	if len(moves) < 2 {
		// Nothing to split: pass, terminal or a single candidate
		return negamax(player, board, n.depth, n.evaluate, n.metrics)
	}

	n.metrics.AddNode()
	values := make([]int, len(moves))
	panics := make([]any, len(moves))

	g := errgroup.Group{}
	g.SetLimit(n.goroutines)
	for i, move := range moves {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					panics[i] = r
					err = fmt.Errorf("searching root move %v: %v", move, r)
				}
			}()
			child := board
			child.Apply(player, move)
			values[i] = -negamax(player.Opponent(), child, n.depth-1, n.evaluate, n.metrics).Score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("root search failed")
		// Re-raise the first failure in move order, as the sequential search would
		for _, r := range panics {
			if r != nil {
				panic(r)
			}
		}
	}

	// Same first-maximum rule as the sequential loop
	best := Result{Score: values[0], Move: moves[0]}
	for i := 1; i < len(moves); i++ {
		if values[i] > best.Score {
			best = Result{Score: values[i], Move: moves[i]}
		}
	}
	return best
}
