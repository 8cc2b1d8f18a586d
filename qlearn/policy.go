package qlearn

import (
	"math"
	"tetris/game"

	"golang.org/x/exp/rand"
)

// Actions lists the drops of kind that stay within the visible board, in
// rotation-then-column order.
func Actions(b *game.Board, kind game.Kind) []Action {
	placements := b.Placements(kind)
	actions := make([]Action, len(placements))
	for i, p := range placements {
		actions[i] = Action{Column: p.Column, Rotation: p.Rotation}
	}
	return actions
}

// Greedy returns the candidate with the highest value, the first one on ties, or
// false when there are no candidates.
func Greedy(t *Table, state int, kind game.Kind, candidates []Action) (Action, bool) {
	if len(candidates) == 0 {
		return Action{}, false
	}
	best := candidates[0]
	bestValue := math.Inf(-1)
	for _, a := range candidates {
		v := t.Value(Key{State: state, Kind: kind, Action: a})
		if v > bestValue {
			best, bestValue = a, v
		}
	}
	return best, true
}

// SelectAction is epsilon-greedy: with probability epsilon a uniformly random
// candidate, otherwise the greedy one.
func SelectAction(t *Table, state int, kind game.Kind, candidates []Action, epsilon float64, rng *rand.Rand) (Action, bool) {
	if len(candidates) == 0 {
		return Action{}, false
	}
	if rng.Float64() < epsilon {
		return candidates[rng.Intn(len(candidates))], true
	}
	return Greedy(t, state, kind, candidates)
}
