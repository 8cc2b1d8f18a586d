package qlearn

import (
	"tetris/game"
	"tetris/utils"
)

// RewardWeights scale the two penalties of Reward.
type RewardWeights struct {
	Variance float64 // Per unit of skyline variance
	Holes    float64 // Per empty cell left under the piece
}

var DefaultRewardWeights = RewardWeights{Variance: 2, Holes: 1}

// Reward scores dropping the piece where it stands, before it is locked into the
// board. It penalizes an uneven skyline (variance of the column tops with the
// piece in place) and the empty cells directly below the piece down to the first
// obstruction. The board is not modified.
func (w RewardWeights) Reward(b *game.Board, p *game.Piece) float64 {
	sim := b.Copy()
	sim.Stamp(p.Layout(), p.Position, game.Falling)

	holes := 0
	for _, c := range p.Cells() {
		for y := max(c.Y+1, 0); y < sim.Height; y++ {
			if sim.At(c.X, y) != game.Empty {
				break
			}
			holes++
		}
	}
	return -w.Variance*utils.Variance(sim.ColumnTops()) - w.Holes*float64(holes)
}

// Reward uses the default weights.
func Reward(b *game.Board, p *game.Piece) float64 {
	return DefaultRewardWeights.Reward(b, p)
}
