package game

import (
	"fmt"
	"strings"
)

// Cell is the content of one board square.
type Cell uint8

const (
	Empty   Cell = iota
	Settled      // Part of the locked stack
	Falling      // Part of a simulated piece, only ever written to board copies
)

// Legality is the outcome of testing a layout at a position.
type Legality int

const (
	Success     Legality = iota
	Blocked              // Hit the floor or the stack, i.e. as far down as it goes
	OutOfBounds          // Left or right of the playfield, the piece cannot enter there
)

func (l Legality) String() string {
	switch l {
	case Success:
		return "success"
	case Blocked:
		return "blocked"
	case OutOfBounds:
		return "out of bounds"
	}
	return fmt.Sprintf("legality(%d)", int(l))
}

// Position is the anchor of a piece's bounding frame. Y may be negative while the
// piece is above the visible board.
type Position struct {
	X, Y int
}

// Board is the playfield. Row 0 is the visible top and rows grow downwards.
type Board struct {
	Width  int
	Height int
	Failed bool // A piece locked above row 0
	cells  []Cell
}

// NewBoard initializes and returns an empty board.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", width, height))
	}
	return &Board{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

// At returns the cell at column x and row y. Coordinates must be on the board.
func (b *Board) At(x, y int) Cell {
	return b.cells[y*b.Width+x]
}

// Set overwrites the cell at column x and row y.
func (b *Board) Set(x, y int, c Cell) {
	b.cells[y*b.Width+x] = c
}

// occupied treats everything off the left and right edges as filled.
func (b *Board) occupied(x, y int) bool {
	if x < 0 || x >= b.Width {
		return true
	}
	return b.At(x, y) != Empty
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		Width:  b.Width,
		Height: b.Height,
		Failed: b.Failed,
		cells:  cells,
	}
}

// Snapshot captures the board so a simulation can be undone with Restore.
func (b *Board) Snapshot() *Board {
	return b.Copy()
}

// Restore puts the board back to a snapshot taken from a board of the same size.
func (b *Board) Restore(snapshot *Board) {
	if snapshot.Width != b.Width || snapshot.Height != b.Height {
		panic("snapshot dimensions do not match board")
	}
	copy(b.cells, snapshot.cells)
	b.Failed = snapshot.Failed
}

// IsLegal checks every offset of the layout at pos in order and reports the first
// violation. Horizontal escapes are reported as OutOfBounds, hitting the floor or
// a settled cell as Blocked. Settled cells on row 0 do not block.
func (b *Board) IsLegal(layout Layout, pos Position) Legality {
	for _, o := range layout {
		x, y := pos.X+o.DX, pos.Y+o.DY
		if x < 0 || x >= b.Width {
			return OutOfBounds
		}
		if y >= b.Height || (y > 0 && b.At(x, y) == Settled) {
			return Blocked
		}
	}
	return Success
}

// Stamp writes c into every on-board cell of the layout at pos. It returns false
// when any cell lies above row 0.
func (b *Board) Stamp(layout Layout, pos Position, c Cell) bool {
	inside := true
	for _, o := range layout {
		x, y := pos.X+o.DX, pos.Y+o.DY
		if y < 0 {
			inside = false
			continue
		}
		b.Set(x, y, c)
	}
	return inside
}

// Lock settles the layout at pos. Cells above row 0 are not written and mark the
// board as failed.
func (b *Board) Lock(layout Layout, pos Position) bool {
	if !b.Stamp(layout, pos, Settled) {
		b.Failed = true
		return false
	}
	return true
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < b.Width; x++ {
		if b.At(x, y) == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above down, and returns
// the number of rows removed.
func (b *Board) ClearFullRows() int {
	lines := 0
	for y := b.Height - 1; y >= 0; y-- {
		for b.rowFull(y) {
			lines++
			// Shift rows [0, y) down by one, then empty the top row
			copy(b.cells[b.Width:(y+1)*b.Width], b.cells[:y*b.Width])
			for x := 0; x < b.Width; x++ {
				b.cells[x] = Empty
			}
		}
	}
	return lines
}

// ColumnTops returns, for each column, the first non-empty row from the top, or
// the board height when the column is empty.
func (b *Board) ColumnTops() []int {
	tops := make([]int, b.Width)
	for x := 0; x < b.Width; x++ {
		y := 0
		for y < b.Height && b.At(x, y) == Empty {
			y++
		}
		tops[x] = y
	}
	return tops
}

// Window copies columns [start, start+width) into a new board of the same height.
func (b *Board) Window(start, width int) *Board {
	if start < 0 || width <= 0 || start+width > b.Width {
		panic(fmt.Sprintf("window [%d, %d) outside board of width %d", start, start+width, b.Width))
	}
	w := NewBoard(width, b.Height)
	for y := 0; y < b.Height; y++ {
		copy(w.cells[y*width:(y+1)*width], b.cells[y*b.Width+start:y*b.Width+start+width])
	}
	return w
}

// Count returns the number of cells holding c.
func (b *Board) Count(c Cell) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// String draws the board with '#' for settled cells, '@' for falling cells.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		sb.WriteByte('|')
		for x := 0; x < b.Width; x++ {
			switch b.At(x, y) {
			case Settled:
				sb.WriteByte('#')
			case Falling:
				sb.WriteByte('@')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

// ParseBoard builds a board from rows drawn like String's output without the
// borders. Any character other than '.' or ' ' is a settled cell. Meant for
// fixtures.
func ParseBoard(rows ...string) *Board {
	if len(rows) == 0 {
		panic("no rows")
	}
	b := NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != b.Width {
			panic(fmt.Sprintf("row %d has width %d, expected %d", y, len(row), b.Width))
		}
		for x, ch := range row {
			if ch != '.' && ch != ' ' {
				b.Set(x, y, Settled)
			}
		}
	}
	return b
}
