package gamemaster

import (
	"errors"
	"fmt"

	"reversi/game"
)

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrSkippedPlayer = errors.New("a player with a legal move was skipped")
	ErrWrongPlayer   = errors.New("move by the wrong player")
	ErrPrematureEnd  = errors.New("record ended with legal moves left")
	ErrGameOver      = errors.New("game is over, no moves allowed")
)

// MoveError locates a rejected move. Err is one of the sentinel errors
// above, Board is the position the move was tried on.
type MoveError struct {
	Index int // 1-based move number
	Entry Entry
	Board game.Board
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %d (%s): %v", e.Index, e.Entry, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Update is published after every accepted move.
type Update struct {
	Entry
	Transition game.Transition
	State      *game.GameState // Copy of the state after the move
	Hash       game.StateHash
}

// UpdateGetter returns the next pending update, false when none is pending.
type UpdateGetter func() (Update, bool)

type Engine interface {
	Init() (game.State, UpdateGetter)
	Play(player game.Player, move game.Position) error
}

var _ Engine = (*LocalEngine)(nil)

// LocalEngine holds the authoritative game and only lets legal moves
// through.
type LocalEngine struct {
	state    *game.GameState
	updateCh chan Update
}

func NewLocalEngine() *LocalEngine {
	return NewLocalEngineFrom(game.NewGameState())
}

// NewLocalEngineFrom starts from a copy of gs.
func NewLocalEngineFrom(gs *game.GameState) *LocalEngine {
	return &LocalEngine{state: gs.Copy()}
}

func (e *LocalEngine) Init() (game.State, UpdateGetter) {
	// Every accepted move fills a cell, so the buffer never blocks Play
	e.updateCh = make(chan Update, game.NumCells)

	return e.state.Copy(), func() (Update, bool) {
		select {
		case u, ok := <-e.updateCh:
			return u, ok
		default:
			// No updates yet
			return Update{}, false
		}
	}
}

// State returns a copy of the current state.
func (e *LocalEngine) State() *game.GameState {
	return e.state.Copy()
}

func (e *LocalEngine) Over() bool {
	return e.state.Over()
}

// Play validates and commits a move for player.
func (e *LocalEngine) Play(player game.Player, move game.Position) error {
	if e.updateCh == nil {
		panic("local engine used before Init")
	}
	entry := Entry{Player: player, Move: move}
	if e.state.Over() {
		return e.moveError(entry, ErrGameOver)
	}

	if player != e.state.CurrentPlayer {
		// The same player moving twice is only fine after a pass
		if e.state.Turns > 0 && player == e.state.LastPlayer && e.state.Transition == game.Alternate {
			return e.moveError(entry, ErrSkippedPlayer)
		}
		return e.moveError(entry, ErrWrongPlayer)
	}

	// A rejected move leaves the state untouched
	transition, err := e.state.TryAdvance(move)
	if err != nil {
		var illegal *game.IllegalMoveError
		if errors.As(err, &illegal) {
			return e.moveError(entry, ErrIllegalMove)
		}
		return e.moveError(entry, err)
	}

	e.updateCh <- Update{
		Entry:      entry,
		Transition: transition,
		State:      e.state.Copy(),
		Hash:       e.state.Hash(),
	}

	if transition == game.Terminal {
		close(e.updateCh)
	}
	return nil
}

// Finish checks that the game cannot go on.
func (e *LocalEngine) Finish() error {
	if e.state.Over() {
		return nil
	}
	moves := e.state.LegalMoves()
	return e.moveError(Entry{Player: e.state.CurrentPlayer, Move: moves[0]}, ErrPrematureEnd)
}

func (e *LocalEngine) moveError(entry Entry, err error) *MoveError {
	return &MoveError{
		Index: e.state.Turns + 1,
		Entry: entry,
		Board: e.state.Board,
		Err:   err,
	}
}
