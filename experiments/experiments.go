package experiments

import (
	"fmt"

	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// NumGames is the number of games per matchup. Colors alternate between
// games, and the searchers are deterministic, so more than two only helps
// against the random baseline.
const NumGames = 2

var depthConfigs = []metrics.AgentConfig{
	{ID: 0, Depth: 0}, // Random baseline
	{ID: 1, Depth: 1, Goroutines: 1},
	{ID: 2, Depth: 2, Goroutines: 1},
	{ID: 3, Depth: 3, Goroutines: 1},
	{ID: 4, Depth: 4, Goroutines: 4},
}

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 4, Goroutines: 1},
	{ID: 2, Depth: 4, Goroutines: 2},
	{ID: 3, Depth: 4, Goroutines: 4},
	{ID: 4, Depth: 4, Goroutines: 8},
}

type Results struct {
	Configs   []metrics.AgentConfig
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Standings []Standing
}

// Standing sums the games of one agent.
type Standing struct {
	ID     int
	Wins   int
	Losses int
	Ties   int
}

// RunDepthExperiment plays every depth against every other one and stores
// the results under root.
func RunDepthExperiment(root string) error {
	return runExperiment(root, "depth", depthConfigs, roundRobin(depthConfigs))
}

// RunParallelExperiment plays each goroutine count against itself; the
// moves are the same, only the search time changes.
func RunParallelExperiment(root string) error {
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}
	return runExperiment(root, "parallel", parallelConfigs, matchUps)
}

func runExperiment(root, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	log.Info().Msgf("starting %s experiment...", name)
	results, err := RunMatchups(configs, matchUps, NumGames)
	if err != nil {
		return fmt.Errorf("%s experiment: %w", name, err)
	}
	log.Info().Msgf("completed %s experiment", name)

	for _, s := range results.Standings {
		log.Info().Msgf("agent %d: %d wins, %d losses, %d ties", s.ID, s.Wins, s.Losses, s.Ties)
	}

	// Store experiment results
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(results.Configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(results.Games); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return nil
}

// RunDepthMatchups plays a round robin between configs, numGames per pair.
func RunDepthMatchups(configs []metrics.AgentConfig, numGames int) (Results, error) {
	return RunMatchups(configs, roundRobin(configs), numGames)
}

func roundRobin(configs []metrics.AgentConfig) [][2]metrics.AgentConfig {
	matchUps := [][2]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, [2]metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return matchUps
}

// RunMatchups plays numGames per matchup. The first agent of a matchup
// takes Black in even games and White in odd ones.
func RunMatchups(configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, numGames int) (Results, error) {
	results := Results{Configs: configs}
	standings := map[int]*Standing{}
	standing := func(id int) *Standing {
		if s, ok := standings[id]; ok {
			return s
		}
		s := &Standing{ID: id}
		standings[id] = s
		return s
	}

	count := 0
	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < numGames; i++ {
			black, white := matchup[0], matchup[1]
			if i%2 == 1 {
				black, white = white, black
			}

			count++
			e := engine.LocalEngine(createAgent(black, uint64(count)), createAgent(white, uint64(count)))
			outcome, gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return results, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			results.Games = append(results.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     black.ID,
				Agent2:     white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch {
			case outcome.Tie:
				standing(black.ID).Ties++
				standing(white.ID).Ties++
			case outcome.Winner == game.Black:
				standing(black.ID).Wins++
				standing(white.ID).Losses++
			default:
				standing(white.ID).Wins++
				standing(black.ID).Losses++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, outcome)
		}
	}

	for _, s := range standings {
		results.Standings = append(results.Standings, *s)
	}
	slices.SortFunc(results.Standings, func(a, b Standing) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		return a.ID - b.ID
	})
	return results, nil
}

func createAgent(config metrics.AgentConfig, seed uint64) engine.Agent {
	if config.Depth == 0 {
		return searcher.NewRandom(seed)
	}
	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithMetrics(),
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return searcher.NewNegamax(options...)
}
