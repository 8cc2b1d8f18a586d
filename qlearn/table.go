package qlearn

import (
	"fmt"
	"tetris/game"
)

// MaxTableWidth bounds the board width a table can be built for. The key space
// grows as 7^(width-1).
const MaxTableWidth = 6

// Action is where to drop a piece: the anchor column and rotation.
type Action struct {
	Column   int
	Rotation int
}

// Key addresses one entry of the table.
type Key struct {
	State  int
	Kind   game.Kind
	Action Action
}

// Table holds the action values of every (state, kind, action) on boards of one
// width. Entries start at zero.
type Table struct {
	width  int
	values []float64
}

// NewTable returns a zeroed table for boards of the given width.
func NewTable(width int) (*Table, error) {
	if width < 2 || width > MaxTableWidth {
		return nil, fmt.Errorf("table width %d outside [2, %d]", width, MaxTableWidth)
	}
	return &Table{
		width:  width,
		values: make([]float64, NumStates(width)*game.NumKinds*width*game.MaxRotations),
	}, nil
}

// Width is the board width the table was built for.
func (t *Table) Width() int {
	return t.width
}

// Len is the number of entries.
func (t *Table) Len() int {
	return len(t.values)
}

// Valid reports whether the key addresses an entry of the table.
func (t *Table) Valid(k Key) bool {
	return k.State >= 0 && k.State < NumStates(t.width) &&
		k.Kind.Valid() &&
		k.Action.Column >= 0 && k.Action.Column < t.width &&
		k.Action.Rotation >= 0 && k.Action.Rotation < game.MaxRotations
}

func (t *Table) index(k Key) int {
	i := k.State
	i = i*game.NumKinds + int(k.Kind)
	i = i*t.width + k.Action.Column
	i = i*game.MaxRotations + k.Action.Rotation
	return i
}

func (t *Table) key(i int) Key {
	var k Key
	k.Action.Rotation = i % game.MaxRotations
	i /= game.MaxRotations
	k.Action.Column = i % t.width
	i /= t.width
	k.Kind = game.Kind(i % game.NumKinds)
	k.State = i / game.NumKinds
	return k
}

// Value returns the entry for k. The key must be valid.
func (t *Table) Value(k Key) float64 {
	if !t.Valid(k) {
		panic(fmt.Sprintf("invalid table key %+v", k))
	}
	return t.values[t.index(k)]
}

// Set overwrites the entry for k.
func (t *Table) Set(k Key, v float64) error {
	if !t.Valid(k) {
		return fmt.Errorf("invalid table key %+v", k)
	}
	t.values[t.index(k)] = v
	return nil
}

// Update applies the one-step temporal difference rule
// Q[cur] += alpha * (reward + gamma*Q[next] - Q[cur]).
func (t *Table) Update(cur, next Key, reward, alpha, gamma float64) error {
	if !t.Valid(cur) {
		return fmt.Errorf("invalid current key %+v", cur)
	}
	if !t.Valid(next) {
		return fmt.Errorf("invalid next key %+v", next)
	}
	c := t.index(cur)
	t.values[c] += alpha * (reward + gamma*t.values[t.index(next)] - t.values[c])
	return nil
}

// Each calls fn for every non-zero entry in key order.
func (t *Table) Each(fn func(k Key, v float64)) {
	for i, v := range t.values {
		if v != 0 {
			fn(t.key(i), v)
		}
	}
}
