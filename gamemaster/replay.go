package gamemaster

import (
	"reversi/game"

	"github.com/rs/zerolog/log"
)

// Replay plays record on a fresh game and checks it is a complete legal
// game. visit, if not nil, sees every accepted move in order. The final
// state is returned with the first error found.
func Replay(record Record, visit func(Update) error) (*game.GameState, error) {
	e := NewLocalEngine()
	_, getUpdate := e.Init()

	for _, entry := range record {
		if err := e.Play(entry.Player, entry.Move); err != nil {
			return e.State(), err
		}
		for u, ok := getUpdate(); ok; u, ok = getUpdate() {
			if visit == nil {
				continue
			}
			if err := visit(u); err != nil {
				return e.State(), err
			}
		}
	}

	if err := e.Finish(); err != nil {
		return e.State(), err
	}

	log.Debug().Int("moves", len(record)).Msg("record verified")
	return e.State(), nil
}
