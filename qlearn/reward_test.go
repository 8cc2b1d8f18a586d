package qlearn

import (
	"testing"
	"tetris/game"

	"github.com/stretchr/testify/require"
)

func TestReward(t *testing.T) {
	t.Run("skyline variance", func(t *testing.T) {
		b := game.NewBoard(4, 6)
		p := game.NewPiece(game.O, 0, game.Position{X: 1, Y: 4})
		// Tops 6, 6, 4, 4: variance 1
		require.InDelta(t, -2.0, Reward(b, p), 1e-12)
		require.Zero(t, b.Count(game.Settled), "The board is not modified")
	})

	t.Run("holes under the piece", func(t *testing.T) {
		b := game.ParseBoard(
			"....",
			"....",
			"....",
			"....",
			"....",
			"#...",
		)
		p := game.NewPiece(game.I, 1, game.Position{X: 0, Y: 3})
		// Flat skyline, three empty cells under the horizontal I
		require.InDelta(t, -3.0, Reward(b, p), 1e-12)
	})

	t.Run("the piece's own cells are not holes", func(t *testing.T) {
		b := game.NewBoard(4, 6)
		p := game.NewPiece(game.I, 0, game.Position{X: 0, Y: 2})
		// Tops 2, 6, 6, 6: mean 5, variance 3
		require.InDelta(t, -6.0, Reward(b, p), 1e-12)
	})

	t.Run("custom weights", func(t *testing.T) {
		b := game.ParseBoard(
			"....",
			"....",
			"....",
			"#...",
		)
		p := game.NewPiece(game.I, 1, game.Position{X: 0, Y: 1})
		w := RewardWeights{Variance: 0, Holes: 0.5}
		require.InDelta(t, -1.5, w.Reward(b, p), 1e-12)
	})
}
