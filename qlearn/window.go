package qlearn

import (
	"math"
	"tetris/game"
)

// ActionValue is a global action on the wide board and its value.
type ActionValue struct {
	Action
	Value float64
}

// Windowed applies a table trained on narrow boards to a wider board. A window of
// the table's width slides over every start column; each window is read as a
// board of its own, with its own state, and its actions are shifted to board
// columns. A global action reachable from several windows keeps the highest
// value. This approximates the value on the wide board: each window ignores the
// columns outside it.
//
// Actions are returned in order of first discovery: window, then rotation, then
// column.
func Windowed(t *Table, b *game.Board, kind game.Kind) []ActionValue {
	if b.Width < t.width {
		return nil
	}
	var values []ActionValue
	seen := make(map[Action]int)
	for start := 0; start+t.width <= b.Width; start++ {
		window := b.Window(start, t.width)
		state := StateIndex(window)
		for _, a := range Actions(window, kind) {
			v := t.Value(Key{State: state, Kind: kind, Action: a})
			global := Action{Column: a.Column + start, Rotation: a.Rotation}
			if i, ok := seen[global]; ok {
				values[i].Value = math.Max(values[i].Value, v)
				continue
			}
			seen[global] = len(values)
			values = append(values, ActionValue{Action: global, Value: v})
		}
	}
	return values
}

// BestWindowed returns the global action with the highest windowed value, the
// first one on ties, or false when no window has a legal action.
func BestWindowed(t *Table, b *game.Board, kind game.Kind) (Action, bool) {
	values := Windowed(t, b, kind)
	if len(values) == 0 {
		return Action{}, false
	}
	best := values[0]
	for _, av := range values[1:] {
		if av.Value > best.Value {
			best = av
		}
	}
	return best.Action, true
}
