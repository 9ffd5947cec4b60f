package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"reversi/bootstrap"
	"reversi/engine"
	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/render"
	"reversi/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	flags := bootstrap.NewFlagSet(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	cfgPath, _ := flags.GetString("config")
	cfg, err := bootstrap.Setup(cfgPath, flags)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(cfg.Level())

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	switch {
	case cfg.Experiment == "depth":
		err = experiments.RunDepthExperiment(cfg.ExperimentDir)
	case cfg.Experiment == "parallel":
		err = experiments.RunParallelExperiment(cfg.ExperimentDir)
	case cfg.Replay != "":
		err = replay(cfg, newRenderer(cfg, out))
	default:
		err = play(cfg, newRenderer(cfg, out))
	}

	if err != nil {
		out.Flush()
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

func newRenderer(cfg *bootstrap.Config, out *bufio.Writer) *render.Renderer {
	options := []render.Option{
		render.WithSymbols(render.Symbols{
			Empty:  cfg.Symbols.Empty,
			Black:  cfg.Symbols.Black,
			White:  cfg.Symbols.White,
			Border: cfg.Symbols.Border,
		}),
	}
	if cfg.ShowBorder {
		options = append(options, render.WithBorder())
	}
	return render.New(out, options...)
}

func newAgent(cfg *bootstrap.Config, p game.Player) engine.Agent {
	options := []searcher.Option{
		searcher.WithDepth(cfg.PlayerDepth(p)),
		searcher.WithGoroutines(cfg.Goroutines),
	}
	if cfg.Metrics {
		options = append(options, searcher.WithMetrics())
	}
	return searcher.NewNegamax(options...)
}

func play(cfg *bootstrap.Config, r *render.Renderer) error {
	log.Info().
		Int("black_depth", cfg.PlayerDepth(game.Black)).
		Int("white_depth", cfg.PlayerDepth(game.White)).
		Int("goroutines", cfg.Goroutines).
		Msg("starting self-play")

	e := engine.LocalEngine(
		newAgent(cfg, game.Black),
		newAgent(cfg, game.White),
		engine.WithRenderer(r),
		engine.WithMaxTurns(cfg.MaxTurns),
	)
	_, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return err
	}

	if cfg.Record != "" {
		if err := writeRecord(cfg.Record, e.Record); err != nil {
			return err
		}
		log.Info().Msgf("wrote %d moves to %s", len(e.Record), cfg.Record)
	}

	if cfg.Metrics {
		records := make([]metrics.MoveRecord, len(moveMetrics))
		for i, mm := range moveMetrics {
			records[i] = metrics.MoveRecord{MoveMetric: mm}
		}
		if err := metrics.WriteMoveRecords(os.Stderr, records); err != nil {
			return err
		}
		log.Info().Msgf("game took %s", gameMetric.Duration)
	}
	return nil
}

func writeRecord(path string, record gamemaster.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create record file: %w", err)
	}
	defer f.Close()

	if _, err := record.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}

func replay(cfg *bootstrap.Config, r *render.Renderer) error {
	f, err := os.Open(cfg.Replay)
	if err != nil {
		return fmt.Errorf("failed to open record: %w", err)
	}
	defer f.Close()

	record, err := gamemaster.ParseRecord(f)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Replay, err)
	}
	log.Info().Msgf("verifying %d moves from %s", len(record), cfg.Replay)

	opening := game.NewBoard()
	if err := r.Opening(&opening); err != nil {
		return err
	}
	final, err := gamemaster.Replay(record, func(u gamemaster.Update) error {
		return r.Turn(u.State.Turns, u.Player, u.Move, &u.State.Board)
	})
	if err != nil {
		var moveErr *gamemaster.MoveError
		if errors.As(err, &moveErr) {
			log.Error().
				Int("move", moveErr.Index).
				Str("player", moveErr.Entry.Player.String()).
				Str("position", moveErr.Entry.Move.String()).
				Msgf("board:\n%s", r.Grid(&moveErr.Board))
		}
		return err
	}

	if err := r.Final(final.Turns, final.Outcome()); err != nil {
		return err
	}
	log.Info().Msg("all moves are legal")
	return nil
}
