package searcher

import (
	"testing"

	"reversi/game"

	"github.com/stretchr/testify/require"
)

func parseBoard(t *testing.T, rows ...string) game.Board {
	t.Helper()
	b, err := game.ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

// whiteOnlyMove: Black is stuck in the corner, White can only play c1.
func whiteOnlyMove(t *testing.T) game.Board {
	return parseBoard(t,
		"O X - - - - - -",
		"- - - - - - - -",
		"- - - - - - - -",
		"- - - - - - - -",
		"- - - - - - - -",
		"- - - - - - - -",
		"- - - - - - - -",
		"- - - - - - - -",
	)
}

func TestSearchDepthZero(t *testing.T) {
	t.Run("opening", func(t *testing.T) {
		result := Search(game.Black, game.NewBoard(), 0)
		require.Equal(t, Result{Score: 0, Move: game.NoMove}, result)
	})

	t.Run("returns the differential of the mover", func(t *testing.T) {
		b := parseBoard(t,
			"X X X - - - - -",
			"- O - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
		)
		require.Equal(t, Result{Score: 2, Move: game.NoMove}, Search(game.Black, b, 0))
		require.Equal(t, Result{Score: -2, Move: game.NoMove}, Search(game.White, b, 0))
	})
}

func TestSearchTerminal(t *testing.T) {
	t.Run("winner scores the sentinel", func(t *testing.T) {
		b := parseBoard(t,
			"X - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
		)
		for depth := 1; depth <= 3; depth++ {
			require.Equal(t, Result{Score: Sentinel, Move: game.NoMove}, Search(game.Black, b, depth))
			require.Equal(t, Result{Score: -Sentinel, Move: game.NoMove}, Search(game.White, b, depth))
		}
	})

	t.Run("tie scores zero", func(t *testing.T) {
		b := parseBoard(t,
			"X - - - - - - O",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
		)
		require.Equal(t, Result{Score: 0, Move: game.NoMove}, Search(game.Black, b, 2))
		require.Equal(t, Result{Score: 0, Move: game.NoMove}, Search(game.White, b, 2))
	})

	t.Run("depth zero wins over terminal detection", func(t *testing.T) {
		b := parseBoard(t,
			"X - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
			"- - - - - - - -",
		)
		require.Equal(t, Result{Score: 1, Move: game.NoMove}, Search(game.Black, b, 0))
	})
}

func TestSearchPass(t *testing.T) {
	b := whiteOnlyMove(t)
	require.Empty(t, b.LegalMoves(game.Black))
	require.Equal(t, []game.Position{{Row: 1, Col: 3}}, b.LegalMoves(game.White))

	t.Run("pass negates the opponent's score", func(t *testing.T) {
		for depth := 1; depth <= 4; depth++ {
			result := Search(game.Black, b, depth)
			require.Equal(t, game.NoMove, result.Move, "A pass has no move")
			require.Equal(t, -Search(game.White, b, depth-1).Score, result.Score, "depth %d", depth)
		}
	})

	t.Run("scores", func(t *testing.T) {
		// White plays c1 and evaluates the leaf from Black's side: -(-3)
		require.Equal(t, -3, Search(game.Black, b, 2).Score)
		// One ply deeper the game is over and White owns every piece
		require.Equal(t, -Sentinel, Search(game.Black, b, 3).Score)
		require.Equal(t, Result{Score: Sentinel, Move: game.Position{Row: 1, Col: 3}}, Search(game.White, b, 2))
	})
}

func TestSearchTieBreak(t *testing.T) {
	t.Run("first move in row-major order", func(t *testing.T) {
		// Every opening move flips exactly one piece
		result := Search(game.Black, game.NewBoard(), 1)
		require.Equal(t, Result{Score: 3, Move: game.Position{Row: 3, Col: 4}}, result)
	})

	t.Run("white opening reply", func(t *testing.T) {
		b := game.NewBoard()
		b.Apply(game.Black, game.Position{Row: 3, Col: 4})

		// Each reply flips one piece and evens the count
		result := Search(game.White, b, 1)
		require.Equal(t, 0, result.Score)
		require.Equal(t, b.LegalMoves(game.White)[0], result.Move)
	})
}

func TestSearchProperties(t *testing.T) {
	t.Run("board of the caller is not modified", func(t *testing.T) {
		b := game.NewBoard()
		before := b
		Search(game.Black, b, 3)
		require.Equal(t, before, b)
	})

	t.Run("deterministic", func(t *testing.T) {
		b := game.NewBoard()
		first := Search(game.Black, b, 3)
		for i := 0; i < 3; i++ {
			require.Equal(t, first, Search(game.Black, b, 3))
		}
	})

	t.Run("root move is legal", func(t *testing.T) {
		gs := game.NewGameState()
		for !gs.Over() {
			result := Search(gs.CurrentPlayer, gs.Board, 1)
			require.True(t, gs.Board.IsLegal(gs.CurrentPlayer, result.Move), "%v is not legal", result.Move)
			gs.Advance(result.Move)
		}
	})

	t.Run("negative depth", func(t *testing.T) {
		require.Panics(t, func() { Search(game.Black, game.NewBoard(), -1) })
	})
}
