package agent

import (
	"tetris/experiments/metrics"
	"tetris/game"
	"tetris/searcher"
)

type heuristicAgent struct {
	greedy *searcher.Greedy
}

// NewHeuristicAgent returns an agent that places pieces by the greedy
// heuristic search.
func NewHeuristicAgent(greedy *searcher.Greedy) Agent {
	return heuristicAgent{greedy: greedy}
}

func (a heuristicAgent) Name() string {
	return "heuristic"
}

func (a heuristicAgent) FindPlacement(board *game.Board, current, _ game.Kind) (game.Placement, metrics.SearchMetric, bool) {
	return a.greedy.Search(board, current)
}
