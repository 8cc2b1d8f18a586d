package searcher

import (
	"math"
	"sync"
	"tetris/experiments/metrics"
	"tetris/game"
)

type Option func(g *Greedy)

// Greedy picks the placement of the current piece with the best heuristic score.
type Greedy struct {
	weights    game.Weights
	goroutines int
	metrics    metrics.Collector
}

func WithWeights(weights game.Weights) Option {
	return func(g *Greedy) {
		g.weights = weights
	}
}

// WithGoroutines scores candidates on a pool of goroutines.
func WithGoroutines(goroutines int) Option {
	return func(g *Greedy) {
		if goroutines > 0 {
			g.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(g *Greedy) {
		g.metrics = metrics.NewCollector()
	}
}

func NewGreedy(options ...Option) *Greedy {
	g := &Greedy{ // Default values
		weights:    game.DefaultWeights,
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(g)
	}
	if err := g.weights.Validate(); err != nil {
		panic(err)
	}
	return g
}

type candidate struct {
	layout    game.Layout
	placement game.Placement
}

// BestPlacement returns the highest scoring placement of kind on the board, or
// false when the piece has nowhere to go. Ties keep the first candidate in
// rotation-then-column order.
func (g *Greedy) BestPlacement(board *game.Board, kind game.Kind) (game.Placement, bool) {
	placement, _, ok := g.Search(board, kind)
	return placement, ok
}

// Search is BestPlacement that also reports the search metrics.
func (g *Greedy) Search(board *game.Board, kind game.Kind) (game.Placement, metrics.SearchMetric, bool) {
	g.metrics.Start(g.goroutines)

	candidates := g.enumerate(board, kind)
	scores := g.score(board, candidates)

	best := -1
	bestScore := math.Inf(-1)
	for i, score := range scores {
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 {
		return game.Placement{}, g.metrics.Complete(), false
	}
	g.metrics.SetBestScore(bestScore)
	return candidates[best].placement, g.metrics.Complete(), true
}

func (g *Greedy) enumerate(board *game.Board, kind game.Kind) []candidate {
	var candidates []candidate
	for rotation, layout := range game.Layouts(kind) {
		for _, x := range board.EntryColumns(layout) {
			row := board.RestingRow(layout, x)
			if game.Overflows(layout, row) {
				g.metrics.AddRejected()
				continue
			}
			candidates = append(candidates, candidate{
				layout:    layout,
				placement: game.Placement{Column: x, Rotation: rotation, Row: row},
			})
		}
	}
	return candidates
}

// score evaluates every candidate. Each candidate works on its own board copy, so
// they can be scored in parallel; results keep the candidates' order.
func (g *Greedy) score(board *game.Board, candidates []candidate) []float64 {
	scores := make([]float64, len(candidates))
	evaluate := func(i int) {
		c := candidates[i]
		score, ok := game.Evaluate(board, c.layout, c.placement, g.weights)
		if !ok {
			score = math.Inf(-1)
		}
		scores[i] = score
		g.metrics.AddCandidate()
	}

	if g.goroutines <= 1 || len(candidates) <= 1 {
		for i := range candidates {
			evaluate(i)
		}
		return scores
	}

	task := make(chan int, len(candidates))
	for i := range candidates {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < g.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				evaluate(i)
			}
		}()
	}

	wg.Wait()
	return scores
}
