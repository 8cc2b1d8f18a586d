package game

import "fmt"

// Command is a primitive move a player can issue to the falling piece.
type Command int

const (
	RotateCW Command = iota
	ShiftLeft
	ShiftRight
	SoftDrop
)

func (c Command) String() string {
	switch c {
	case RotateCW:
		return "rotate"
	case ShiftLeft:
		return "left"
	case ShiftRight:
		return "right"
	case SoftDrop:
		return "drop"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Piece is a falling piece instance on a board.
type Piece struct {
	Kind     Kind
	Rotation int
	Position Position
	Locked   bool // Settled into the board, accepts no more commands
	Failed   bool // Locked with a cell above row 0
}

// NewPiece places a piece of the given kind and rotation at pos.
func NewPiece(kind Kind, rotation int, pos Position) *Piece {
	if !kind.Valid() {
		panic(fmt.Sprintf("invalid piece kind %d", int(kind)))
	}
	return &Piece{
		Kind:     kind,
		Rotation: rotation % Rotations(kind),
		Position: pos,
	}
}

// SpawnPosition is where new pieces appear on a board of the given width.
func SpawnPosition(width int) Position {
	return Position{X: width/2 - 2, Y: SpawnRow}
}

// Layout returns the cells of the piece in its current rotation.
func (p *Piece) Layout() Layout {
	return LayoutOf(p.Kind, p.Rotation)
}

// Cells returns the absolute board coordinates of the piece's cells.
func (p *Piece) Cells() [CellsPerPiece]Position {
	var cells [CellsPerPiece]Position
	for i, o := range p.Layout() {
		cells[i] = Position{X: p.Position.X + o.DX, Y: p.Position.Y + o.DY}
	}
	return cells
}

// Apply executes cmd against the board. Moves and rotations are applied only when
// the result is legal. A soft drop that cannot move locks the piece. It returns
// whether the piece changed.
func (p *Piece) Apply(cmd Command, b *Board) bool {
	if p.Locked {
		return false
	}
	switch cmd {
	case RotateCW:
		next := (p.Rotation + 1) % Rotations(p.Kind)
		if b.IsLegal(LayoutOf(p.Kind, next), p.Position) != Success {
			return false
		}
		p.Rotation = next
		return true
	case ShiftLeft, ShiftRight:
		dx := -1
		if cmd == ShiftRight {
			dx = 1
		}
		pos := Position{X: p.Position.X + dx, Y: p.Position.Y}
		if b.IsLegal(p.Layout(), pos) != Success {
			return false
		}
		p.Position = pos
		return true
	case SoftDrop:
		pos := Position{X: p.Position.X, Y: p.Position.Y + 1}
		switch b.IsLegal(p.Layout(), pos) {
		case Success:
			p.Position = pos
		case Blocked:
			p.Locked = true
			p.Failed = !b.Lock(p.Layout(), p.Position)
		default:
			return false
		}
		return true
	}
	panic(fmt.Sprintf("unknown command %d", int(cmd)))
}
