package experiments

import (
	"fmt"
	"tetris/config"
	"tetris/engine"
	"tetris/experiments/metrics"
	"tetris/game"
	"tetris/qlearn"
	"tetris/searcher"
	"tetris/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Result holds the records of a batch of games.
type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Lines is the total number of cleared lines over all games.
func (r Result) Lines() int {
	total := 0
	for _, g := range r.Games {
		total += g.Lines
	}
	return total
}

func (r *Result) add(gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric) {
	id := len(r.Games) + 1
	r.Games = append(r.Games, metrics.GameRecord{ID: id, GameMetric: gameMetric})
	for _, mm := range moveMetrics {
		r.Moves = append(r.Moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
}

// NewHeuristicAgent builds the greedy agent described by the config.
func NewHeuristicAgent(cfg config.Config) agent.Agent {
	options := []searcher.Option{
		searcher.WithWeights(cfg.Weights()),
		searcher.WithGoroutines(cfg.Heuristic.Goroutines),
	}
	if cfg.Output.Records {
		options = append(options, searcher.WithMetrics())
	}
	return agent.NewHeuristicAgent(searcher.NewGreedy(options...))
}

// RunHeuristic plays cfg.Games games with the greedy heuristic agent, seeding
// game i with cfg.Seed+i.
func RunHeuristic(cfg config.Config) (Result, error) {
	return runGames(cfg, "heuristic", NewHeuristicAgent(cfg))
}

// RunLearned plays cfg.Games games on the configured board with the greedy
// policy of the table stored at cfg.Learning.Table.
func RunLearned(cfg config.Config) (Result, error) {
	table, err := qlearn.LoadFile(cfg.Learning.Table, cfg.Learning.Width)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load table: %w", err)
	}
	log.Info().Msgf("loaded %d-wide table from %s", table.Width(), cfg.Learning.Table)
	return runGames(cfg, "learned", agent.NewLearnedAgent(table))
}

func runGames(cfg config.Config, name string, a agent.Agent) (Result, error) {
	var result Result

	log.Info().Msgf("starting %d %s games...", cfg.Games, name)
	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + uint64(i)
		gameMetric, moveMetrics := runGame(cfg, a, seed)
		result.add(gameMetric, moveMetrics)
		log.Info().Msgf("completed game %d of %d with %d lines", i+1, cfg.Games, gameMetric.Lines)
	}
	log.Info().Msgf("completed %s games with %d lines in total", name, result.Lines())

	if !cfg.Output.Records {
		return result, nil
	}
	return result, store(name, result)
}

func runGame(cfg config.Config, a agent.Agent, seed uint64) (metrics.GameMetric, []metrics.MoveMetric) {
	board := game.NewBoard(cfg.Board.Width, cfg.Board.Height)
	e := engine.LocalEngine(board, game.NewBag(seed), a)
	e.Seed = seed
	if cfg.MaxPieces > 0 {
		e.MaxPieces = cfg.MaxPieces
	}
	return e.Run()
}

func store(name string, result Result) error {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// RunTraining fills a table on the narrow training board and saves it to
// cfg.Learning.Table.
func RunTraining(cfg config.Config) (*qlearn.Table, []metrics.EpisodeMetric, error) {
	l := cfg.Learning
	table, err := qlearn.NewTable(l.Width)
	if err != nil {
		return nil, nil, err
	}
	trainer := qlearn.NewTrainer(table,
		qlearn.WithHeight(l.Height),
		qlearn.WithEpisodes(l.Episodes),
		qlearn.WithAlpha(l.Alpha),
		qlearn.WithGamma(l.Gamma),
		qlearn.WithEpsilon(l.Epsilon),
		qlearn.WithDecay(l.DecayEvery, l.DecayFactor),
		qlearn.WithMaxPieces(l.MaxPieces),
		qlearn.WithSeed(cfg.Seed),
		qlearn.WithRewardWeights(cfg.RewardWeights()),
	)
	episodes, err := trainer.Train()
	if err != nil {
		return table, episodes, fmt.Errorf("training failed: %w", err)
	}

	if l.Table != "" {
		if err := table.SaveFile(l.Table); err != nil {
			return table, episodes, fmt.Errorf("failed to save table: %w", err)
		}
		log.Info().Msgf("saved table to %s", l.Table)
	}

	if cfg.Output.Records {
		writer, err := metrics.NewWriter("training")
		if err != nil {
			return table, episodes, fmt.Errorf("failed to create experiment writer: %w", err)
		}
		if err := writer.WriteEpisodeRecords(episodes); err != nil {
			return table, episodes, fmt.Errorf("failed to write episode records: %w", err)
		}
		log.Info().Msgf("stored episode records in %s", writer.Dir())
	}
	return table, episodes, nil
}
