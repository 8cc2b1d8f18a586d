package agent

import (
	"tetris/experiments/metrics"
	"tetris/game"
)

type Agent interface {
	Name() string
	// FindPlacement returns where the current piece should rest, search metrics (if
	// collected), and false when the piece has no legal placement (game over).
	// next is the successor piece, game.Kind(-1) when unknown.
	FindPlacement(board *game.Board, current, next game.Kind) (game.Placement, metrics.SearchMetric, bool)
}
