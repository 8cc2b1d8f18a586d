package engine

import (
	"tetris/experiments/metrics"
	"tetris/meta"
)

// MaxPieces caps a game that would otherwise never end.
const MaxPieces = meta.MAX_PIECES

type Runner interface {
	// Run plays pieces till the game is over or the piece limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
