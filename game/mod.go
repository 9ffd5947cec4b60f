package game

// Size is the side of the stored grid: the 8x8 playable interior plus a
// one-cell border ring on every side.
const (
	Size     = 10
	MinIndex = 1
	MaxIndex = Size - 2
	NumCells = (MaxIndex - MinIndex + 1) * (MaxIndex - MinIndex + 1)
)

type StateHash uint64

// State is the view of a game the engine and the game master drive.
// Play never mutates the receiver, it returns the next state.
type State interface {
	Player() Player
	LegalMoves() []Position
	Play(Position) State
	Hash() StateHash
	Over() bool
}

// Evaluate scores a board from the given player's perspective.
type Evaluate func(b *Board, p Player) int
