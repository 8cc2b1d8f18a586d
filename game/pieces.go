package game

import (
	"fmt"
	"tetris/utils"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	I Kind = iota
	O
	T
	Z
	S
	J
	L
)

// NumKinds is the number of distinct piece kinds.
const NumKinds = 7

// CellsPerPiece is the number of cells in every layout.
const CellsPerPiece = 4

// MaxRotations bounds the rotation index of any kind.
const MaxRotations = 4

// Offset is a cell of a layout relative to the piece anchor.
type Offset struct {
	DX, DY int
}

// Layout is the ordered set of cells of a piece in one rotation.
type Layout [CellsPerPiece]Offset

var kindLabels = [NumKinds]string{"I", "O", "T", "Z", "S", "J", "L"}

// Rotations of each kind, in the order RotateCW cycles through them.
var layouts = [NumKinds][]Layout{
	I: {
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	},
	O: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	T: {
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
	},
	Z: {
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
	},
	S: {
		{{1, 0}, {1, 1}, {0, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	J: {
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {1, 1}, {0, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 2}, {0, 1}, {1, 1}, {2, 1}},
	},
	L: {
		{{0, 2}, {1, 2}, {1, 1}, {1, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{2, 2}, {2, 1}, {1, 1}, {0, 1}},
	},
}

// Kinds lists every kind in catalog order.
func Kinds() []Kind {
	return []Kind{I, O, T, Z, S, J, L}
}

func (k Kind) Valid() bool {
	return k >= 0 && k < NumKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindLabels[k]
}

// ParseKind looks a kind up by its label.
func ParseKind(label string) (Kind, error) {
	i := utils.FindIndex(kindLabels[:], label)
	if i < 0 {
		return 0, fmt.Errorf("unknown piece kind %q", label)
	}
	return Kind(i), nil
}

// Layouts returns every rotation of the kind. The result must not be modified.
func Layouts(k Kind) []Layout {
	return layouts[k]
}

// Rotations returns how many distinct rotations the kind has.
func Rotations(k Kind) int {
	return len(layouts[k])
}

// LayoutOf returns the layout of the kind in the given rotation.
func LayoutOf(k Kind, rotation int) Layout {
	return layouts[k][rotation]
}
