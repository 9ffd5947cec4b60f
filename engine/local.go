package engine

import (
	"fmt"
	"time"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/meta"
	"reversi/render"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithRenderer prints the trace of the game as it is played.
func WithRenderer(r *render.Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

func WithMaxTurns(maxTurns int) Option {
	return func(e *Engine) {
		if maxTurns > 0 {
			e.maxTurns = maxTurns
		}
	}
}

// WithState starts the game from gs instead of the opening.
func WithState(gs *game.GameState) Option {
	return func(e *Engine) {
		e.master = gamemaster.NewLocalEngineFrom(gs)
	}
}

// Engine sequences a self-play game: the agent of the player to move plans,
// the game master commits the move, the renderer prints it, until neither
// side can move.
type Engine struct {
	master   *gamemaster.LocalEngine
	agents   [2]Agent // Indexed by game.Player
	renderer *render.Renderer
	maxTurns int

	// Record holds the moves played so far.
	Record gamemaster.Record
}

func LocalEngine(black, white Agent, options ...Option) *Engine {
	if black == nil || white == nil {
		panic("need an agent for each player")
	}
	e := &Engine{
		master:   gamemaster.NewLocalEngine(),
		maxTurns: meta.MAX_TURNS,
	}
	e.agents[game.Black] = black
	e.agents[game.White] = white
	for _, option := range options {
		option(e)
	}
	return e
}

// State returns a copy of the live game.
func (e *Engine) State() *game.GameState {
	return e.master.State()
}

// Run plays the game until it is over or the turn limit is reached and
// returns the outcome on the last board.
func (e *Engine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	state, getUpdate := e.master.Init()
	gs := state.(*game.GameState)

	gameMetric := metrics.GameMetric{
		BlackDepth: depthOf(e.agents[game.Black]),
		WhiteDepth: depthOf(e.agents[game.White]),
		StartTime:  time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	if e.renderer != nil {
		if err := e.renderer.Opening(&gs.Board); err != nil {
			return game.Outcome{}, gameMetric, moveMetrics, err
		}
	}

	log.Info().Msgf("%s is starting", gs.CurrentPlayer)

	for !gs.Over() && gs.Turns < e.maxTurns {
		player := gs.CurrentPlayer
		move, searchMetric := e.agents[player].FindMove(gs)

		if err := e.master.Play(player, move); err != nil {
			return game.Outcome{}, gameMetric, moveMetrics, fmt.Errorf("agent for %s: %w", player, err)
		}
		u, ok := getUpdate()
		if !ok {
			panic("game master accepted a move without an update")
		}
		gs = u.State

		e.Record = append(e.Record, u.Entry)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         gs.Turns,
			Player:       player.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		if u.Transition == game.Pass {
			gameMetric.Passes++
		}

		log.Debug().
			Int("turn", gs.Turns).
			Str("player", player.String()).
			Str("move", move.String()).
			Str("transition", u.Transition.String()).
			Msg("move played")

		if e.renderer != nil {
			if err := e.renderer.Turn(gs.Turns, player, move, &gs.Board); err != nil {
				return game.Outcome{}, gameMetric, moveMetrics, err
			}
		}
	}

	if !gs.Over() {
		log.Warn().Msgf("stopped after %d turns without reaching the end", gs.Turns)
	}

	outcome := gs.Outcome()
	gameMetric.Winner = outcome.String()
	gameMetric.Margin = outcome.Margin
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = gs.Turns

	if e.renderer != nil {
		if err := e.renderer.Final(gs.Turns, outcome); err != nil {
			return outcome, gameMetric, moveMetrics, err
		}
	}

	log.Info().Msgf("game over after %d turns, winner: %s", gs.Turns, outcome)
	return outcome, gameMetric, moveMetrics, nil
}

func depthOf(a Agent) int {
	if d, ok := a.(Depther); ok {
		return d.Depth()
	}
	return 0
}
