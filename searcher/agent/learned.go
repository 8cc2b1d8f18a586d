package agent

import (
	"math"
	"tetris/experiments/metrics"
	"tetris/game"
	"tetris/qlearn"
	"time"
)

type learnedAgent struct {
	table *qlearn.Table
}

// NewLearnedAgent returns an agent that plays the greedy policy of a trained
// table. Boards wider than the table are read through sliding windows.
func NewLearnedAgent(table *qlearn.Table) Agent {
	return learnedAgent{table: table}
}

func (a learnedAgent) Name() string {
	return "learned"
}

func (a learnedAgent) FindPlacement(board *game.Board, current, _ game.Kind) (game.Placement, metrics.SearchMetric, bool) {
	start := time.Now()
	var values []qlearn.ActionValue
	if board.Width == a.table.Width() {
		state := qlearn.StateIndex(board)
		for _, action := range qlearn.Actions(board, current) {
			v := a.table.Value(qlearn.Key{State: state, Kind: current, Action: action})
			values = append(values, qlearn.ActionValue{Action: action, Value: v})
		}
	} else {
		values = qlearn.Windowed(a.table, board, current)
	}

	metric := metrics.SearchMetric{Goroutines: 1, Candidates: len(values)}
	best := -1
	bestValue := math.Inf(-1)
	for i, av := range values {
		if av.Value > bestValue {
			best, bestValue = i, av.Value
		}
	}
	metric.Duration = time.Since(start)
	if best < 0 {
		return game.Placement{}, metric, false
	}
	metric.BestScore = bestValue

	action := values[best].Action
	layout := game.LayoutOf(current, action.Rotation)
	return game.Placement{
		Column:   action.Column,
		Rotation: action.Rotation,
		Row:      board.RestingRow(layout, action.Column),
	}, metric, true
}
