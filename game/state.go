package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is the live game: the authoritative board, whose turn it is and
// how the last turn ended. The engine owns exactly one and mutates it with
// Advance between turns.
type GameState struct {
	Board         Board      // The live board
	CurrentPlayer Player     // The player to move
	LastMove      Position   // The last move made, NoMove before the first one
	LastPlayer    Player     // Who made LastMove
	Transition    Transition // How the turn passed after LastMove
	Turns         int        // Moves played so far
}

// NewGameState returns the opening position with Black to move.
func NewGameState() *GameState {
	return NewGameStateFrom(NewBoard(), Black)
}

// NewGameStateFrom starts a game from an arbitrary board. If p cannot move
// the turn is handed over the same way Next would.
func NewGameStateFrom(b Board, p Player) *GameState {
	gs := &GameState{
		Board:         b,
		CurrentPlayer: p,
		LastMove:      NoMove,
		Transition:    Alternate,
	}
	switch {
	case gs.Board.HasLegalMove(p):
	case gs.Board.HasLegalMove(p.Opponent()):
		gs.CurrentPlayer, gs.Transition = p.Opponent(), Pass
	default:
		gs.Transition = Terminal
	}
	return gs
}

func (gs GameState) Copy() *GameState {
	return &gs
}

// Advance plays move for the current player on the live board and decides
// who moves next. It panics if the game is over or the move is illegal.
func (gs *GameState) Advance(move Position) Transition {
	transition, err := gs.TryAdvance(move)
	if err != nil {
		panic(err)
	}
	return transition
}

// TryAdvance is Advance for moves from untrusted input. An illegal move is
// returned as *IllegalMoveError and leaves gs untouched.
func (gs *GameState) TryAdvance(move Position) (Transition, error) {
	if gs.Over() {
		return gs.Transition, fmt.Errorf("cannot play %v: game is over", move)
	}
	player := gs.CurrentPlayer
	if err := gs.Board.TryApply(player, move); err != nil {
		return gs.Transition, err
	}
	gs.LastMove, gs.LastPlayer = move, player
	gs.Turns++
	gs.CurrentPlayer, gs.Transition = Next(&gs.Board, player)
	return gs.Transition, nil
}

// Player returns the player to move.
func (gs GameState) Player() Player {
	return gs.CurrentPlayer
}

// LegalMoves returns the current player's legal moves, none once the game
// is over.
func (gs GameState) LegalMoves() []Position {
	if gs.Over() {
		return nil
	}
	return gs.Board.LegalMoves(gs.CurrentPlayer)
}

// Play returns the state after move, leaving gs untouched.
func (gs GameState) Play(move Position) State {
	newGs := gs.Copy()
	newGs.Advance(move)
	return newGs
}

func (gs GameState) Over() bool {
	return gs.Transition == Terminal
}

// Outcome returns the result of the game, it is only final once Over.
func (gs GameState) Outcome() Outcome {
	return Result(&gs.Board)
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash player to move
	binary.Write(hasher, binary.LittleEndian, uint8(gs.CurrentPlayer))
	binary.Write(hasher, binary.LittleEndian, uint8(gs.Transition))

	// Hash interior cells
	for _, p := range interior {
		binary.Write(hasher, binary.LittleEndian, uint8(gs.Board.At(p)))
	}

	return StateHash(hasher.Sum64())
}
