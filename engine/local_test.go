package engine

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/render"
	"reversi/searcher"

	"github.com/stretchr/testify/require"
)

// scripted plays a fixed position whatever the state.
type scripted struct {
	move game.Position
}

func (s scripted) FindMove(gs *game.GameState) (game.Position, metrics.SearchMetric) {
	return s.move, metrics.SearchMetric{}
}

func TestSelfPlay(t *testing.T) {
	t.Run("depth 1 game", func(t *testing.T) {
		var out bytes.Buffer
		black := searcher.NewNegamax(searcher.WithDepth(1))
		white := searcher.NewNegamax(searcher.WithDepth(1))
		e := LocalEngine(black, white, WithRenderer(render.New(&out)))

		outcome, gameMetric, moveMetrics, err := e.Run()
		require.NoError(t, err)

		final := e.State()
		require.True(t, final.Over(), "Game should be played to the end")
		require.LessOrEqual(t, final.Turns, 60)
		require.Len(t, moveMetrics, final.Turns)
		require.Len(t, e.Record, final.Turns)
		require.Equal(t, 1, gameMetric.BlackDepth)
		require.Equal(t, 1, gameMetric.WhiteDepth)
		require.Equal(t, final.Turns, gameMetric.TotalMoves)

		// The final line agrees with the differential of both colors
		blackDiff, whiteDiff := final.Board.Differential(game.Black), final.Board.Differential(game.White)
		var verdict string
		switch {
		case blackDiff > whiteDiff:
			require.Equal(t, game.Black, outcome.Winner)
			verdict = fmt.Sprintf("Black won by %d pieces.", blackDiff)
		case whiteDiff > blackDiff:
			require.Equal(t, game.White, outcome.Winner)
			verdict = fmt.Sprintf("White won by %d pieces.", whiteDiff)
		default:
			require.True(t, outcome.Tie)
			verdict = "It is a tie."
		}
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Equal(t, fmt.Sprintf("Game over after %d turns! %s", final.Turns, verdict), lines[len(lines)-1])

		require.True(t, strings.HasPrefix(out.String(), "#0 Opening position:\n"))
		require.Contains(t, out.String(), "#1 Player: Black. Move: d3\n")
		require.Contains(t, out.String(), fmt.Sprintf("#%d Player: ", final.Turns))
	})

	t.Run("record replays cleanly", func(t *testing.T) {
		e := LocalEngine(searcher.NewNegamax(searcher.WithDepth(2)), searcher.NewNegamax(searcher.WithDepth(1)))
		_, _, _, err := e.Run()
		require.NoError(t, err)

		final, err := gamemaster.Replay(e.Record, nil)
		require.NoError(t, err)
		require.Equal(t, e.State().Board, final.Board)
	})

	t.Run("deterministic", func(t *testing.T) {
		play := func() gamemaster.Record {
			e := LocalEngine(searcher.NewNegamax(searcher.WithDepth(2)), searcher.NewNegamax(searcher.WithDepth(2), searcher.WithGoroutines(4)))
			_, _, _, err := e.Run()
			require.NoError(t, err)
			return e.Record
		}
		require.Equal(t, play(), play())
	})
}

func TestEngineRun(t *testing.T) {
	t.Run("illegal agent move", func(t *testing.T) {
		e := LocalEngine(scripted{move: game.Position{Row: 1, Col: 1}}, searcher.NewNegamax())
		_, _, _, err := e.Run()
		require.ErrorIs(t, err, gamemaster.ErrIllegalMove)
		require.Equal(t, game.NewBoard(), e.State().Board, "Live board is untouched")
	})

	t.Run("pass is counted", func(t *testing.T) {
		b, err := game.ParseBoard(
			"O X - - - - - -",
			"- - - - - - - -",
			"O X - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
		)
		require.NoError(t, err)
		gs := game.NewGameStateFrom(b, game.White)

		agent := searcher.NewNegamax(searcher.WithDepth(1))
		e := LocalEngine(agent, agent, WithState(gs))
		outcome, gameMetric, _, err := e.Run()
		require.NoError(t, err)

		require.Equal(t, 1, gameMetric.Passes)
		require.Equal(t, 2, gameMetric.TotalMoves)
		require.Equal(t, game.White, outcome.Winner)
		require.Equal(t, 6, outcome.Margin)
	})

	t.Run("turn limit", func(t *testing.T) {
		agent := searcher.NewNegamax(searcher.WithDepth(1))
		e := LocalEngine(agent, agent, WithMaxTurns(5))
		_, gameMetric, moveMetrics, err := e.Run()
		require.NoError(t, err)
		require.False(t, e.State().Over())
		require.Equal(t, 5, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 5)
	})

	t.Run("missing agent", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine(nil, searcher.NewNegamax()) })
	})
}
