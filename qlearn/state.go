// Package qlearn learns placement values with tabular Q-learning over a
// compressed skyline state, and plays a table trained on a narrow board on wider
// boards.
package qlearn

import (
	"tetris/game"
	"tetris/utils"
)

// Base is the number of values a clamped height difference can take.
const Base = 7

// MaxStep is the largest height difference between neighbouring columns that
// the state tells apart. Larger steps are clamped.
const MaxStep = (Base - 1) / 2

// NumStates returns how many skyline states a board of the given width has.
func NumStates(width int) int {
	n := 1
	for i := 0; i < width-1; i++ {
		n *= Base
	}
	return n
}

// StateIndex encodes the shape of the skyline: the height step between each pair
// of neighbouring columns, clamped to [-3, 3], as the digits of a base 7 number
// with column pair 0 as the least significant digit. Absolute height is
// discarded.
func StateIndex(b *game.Board) int {
	tops := b.ColumnTops()
	index := 0
	place := 1
	for i := 0; i < b.Width-1; i++ {
		step := utils.Clamp(tops[i+1]-tops[i], -MaxStep, MaxStep)
		index += place * (step + MaxStep)
		place *= Base
	}
	return index
}
