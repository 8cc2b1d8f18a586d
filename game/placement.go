package game

// SpawnRow is the row pieces enter from, above the visible board.
const SpawnRow = -4

// Placement is a final resting spot for a piece: the anchor column and row, and
// the rotation index.
type Placement struct {
	Column   int
	Rotation int
	Row      int
}

// Position returns the anchor of the placement.
func (p Placement) Position() Position {
	return Position{X: p.Column, Y: p.Row}
}

// EntryColumns lists every column where the layout can enter the board from the
// spawn row.
func (b *Board) EntryColumns(layout Layout) []int {
	columns := make([]int, 0, b.Width)
	for x := 0; x < b.Width; x++ {
		if b.IsLegal(layout, Position{X: x, Y: SpawnRow}) == Success {
			columns = append(columns, x)
		}
	}
	return columns
}

// RestingRow drops the layout straight down from the spawn row in column and
// returns the last row before it is blocked.
func (b *Board) RestingRow(layout Layout, column int) int {
	y := SpawnRow
	for y <= b.Height && b.IsLegal(layout, Position{X: column, Y: y}) != Blocked {
		y++
	}
	return y - 1
}

// Overflows reports whether a layout resting at row has any cell above row 0.
func Overflows(layout Layout, row int) bool {
	for _, o := range layout {
		if row+o.DY < 0 {
			return true
		}
	}
	return false
}

// Placements enumerates every resting placement of the kind that stays within the
// visible board, in rotation-then-column order.
func (b *Board) Placements(kind Kind) []Placement {
	var placements []Placement
	for rotation, layout := range Layouts(kind) {
		for _, x := range b.EntryColumns(layout) {
			row := b.RestingRow(layout, x)
			if Overflows(layout, row) {
				continue
			}
			placements = append(placements, Placement{Column: x, Rotation: rotation, Row: row})
		}
	}
	return placements
}
