package experiments

import (
	"fmt"
	"tetris/config"
	"tetris/experiments/metrics"
	"time"

	"github.com/rs/zerolog/log"
)

// ThroughputGoroutines are the pool sizes compared by RunThroughputExperiment.
var ThroughputGoroutines = []int{1, 2, 4, 8, 16}

// Throughput summarizes the searches of one pool size.
type Throughput struct {
	Goroutines int
	Searches   int
	Candidates int
	Duration   time.Duration // Total time spent searching
}

// PerSecond is the number of candidates scored per second of search.
func (t Throughput) PerSecond() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return float64(t.Candidates) / t.Duration.Seconds()
}

// RunThroughputExperiment plays the configured games once per pool size, with
// the same seeds, and measures how fast the greedy search scores candidates.
// Every pool size must place the same pieces; the games only differ in timing.
func RunThroughputExperiment(cfg config.Config) ([]Throughput, error) {
	cfg.Output.Records = true
	results := make([]Throughput, 0, len(ThroughputGoroutines))
	var combined Result
	lines := -1

	log.Info().Msg("starting throughput experiment...")
	for _, goroutines := range ThroughputGoroutines {
		cfg.Heuristic.Goroutines = goroutines
		a := NewHeuristicAgent(cfg)

		var result Result
		for i := 0; i < cfg.Games; i++ {
			gameMetric, moveMetrics := runGame(cfg, a, cfg.Seed+uint64(i))
			gameMetric.Agent = fmt.Sprintf("heuristic-%d", goroutines)
			result.add(gameMetric, moveMetrics)
		}
		if lines >= 0 && result.Lines() != lines {
			return results, fmt.Errorf("%d goroutines cleared %d lines, expected %d", goroutines, result.Lines(), lines)
		}
		lines = result.Lines()

		t := Throughput{Goroutines: goroutines, Searches: len(result.Moves)}
		for _, move := range result.Moves {
			t.Candidates += move.Candidates
			t.Duration += move.Duration
		}
		results = append(results, t)
		log.Info().Msgf("%d goroutines scored %.0f candidates per second", goroutines, t.PerSecond())

		for _, g := range result.Games {
			combined.add(g.GameMetric, movesOf(result, g.ID))
		}
	}
	log.Info().Msg("completed throughput experiment")

	return results, store("throughput", combined)
}

func movesOf(result Result, game int) []metrics.MoveMetric {
	var moves []metrics.MoveMetric
	for _, m := range result.Moves {
		if m.Game == game {
			moves = append(moves, m.MoveMetric)
		}
	}
	return moves
}
