// meta/meta.go
package meta

// DefaultDepth is the search depth used for both players when none is given.
const DefaultDepth = 3

// GO_ROUTINES is the default number of goroutines for root-parallel search.
const GO_ROUTINES = 1

// MAX_TURNS bounds a game. 60 moves fill the board, passes do not count.
const MAX_TURNS = 60

// Default trace symbols.
const (
	EMPTY_SYMBOL  = "-"
	BLACK_SYMBOL  = "X"
	WHITE_SYMBOL  = "O"
	BORDER_SYMBOL = "*"
)

// ENV_PREFIX prefixes environment variables read by the configuration.
const ENV_PREFIX = "REVERSI"
