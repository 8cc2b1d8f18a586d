package searcher

import (
	"errors"
	"testing"
	"tetris/game"

	"github.com/stretchr/testify/require"
)

type mockLive struct {
	rotation, column int
	locked           bool
	reject           game.Command
	dropsToLock      int
	issued           []game.Command
}

func (m *mockLive) Rotation() int { return m.rotation }
func (m *mockLive) Column() int { return m.column }
func (m *mockLive) Locked() bool { return m.locked }

func (m *mockLive) Apply(cmd game.Command) bool {
	m.issued = append(m.issued, cmd)
	if cmd == m.reject {
		return false
	}
	switch cmd {
	case game.RotateCW:
		m.rotation = (m.rotation + 1) % 4
	case game.ShiftLeft:
		m.column--
	case game.ShiftRight:
		m.column++
	case game.SoftDrop:
		m.dropsToLock--
		m.locked = m.dropsToLock <= 0
	}
	return true
}

func TestPlan(t *testing.T) {
	t.Run("rotates then shifts", func(t *testing.T) {
		commands := Plan(3, 3, 4, game.Placement{Column: 1, Rotation: 1})
		require.Equal(t, []game.Command{game.RotateCW, game.RotateCW, game.ShiftLeft, game.ShiftLeft}, commands)
	})

	t.Run("nothing to do", func(t *testing.T) {
		require.Empty(t, Plan(0, 3, 2, game.Placement{Column: 3, Rotation: 0}))
	})

	t.Run("bounded for unreachable rotations", func(t *testing.T) {
		commands := Plan(0, 0, 2, game.Placement{Column: 0, Rotation: 5})
		require.Len(t, commands, 2)
	})
}

func TestDrive(t *testing.T) {
	t.Run("drops until locked", func(t *testing.T) {
		live := &mockLive{column: 3, reject: -1, dropsToLock: 5}
		issued, err := Drive(live, game.Placement{Column: 5, Rotation: 1}, 4, 10)
		require.NoError(t, err)
		require.Equal(t, 1+2+5, issued)
		require.Equal(t, 1, live.rotation)
		require.Equal(t, 5, live.column)
		require.True(t, live.locked)
	})

	t.Run("fails when a command is rejected", func(t *testing.T) {
		live := &mockLive{column: 3, reject: game.ShiftRight, dropsToLock: 1}
		_, err := Drive(live, game.Placement{Column: 5}, 4, 10)
		require.True(t, errors.Is(err, ErrUnreachable))
	})

	t.Run("fails when the piece never locks", func(t *testing.T) {
		live := &mockLive{reject: -1, dropsToLock: 100}
		_, err := Drive(live, game.Placement{}, 4, 10)
		require.ErrorIs(t, err, ErrUnreachable)
	})

	t.Run("steers a real piece", func(t *testing.T) {
		b := game.NewBoard(10, 20)
		target := game.Placement{Column: 7, Rotation: 1, Row: b.RestingRow(game.LayoutOf(game.T, 1), 7)}
		p := game.NewPiece(game.T, 0, game.SpawnPosition(b.Width))
		_, err := Drive(pieceLive{p, b}, target, game.Rotations(game.T), b.Height+5)
		require.NoError(t, err)
		require.Equal(t, target.Position(), p.Position)
		require.Equal(t, 4, b.Count(game.Settled))
	})
}

type pieceLive struct {
	piece *game.Piece
	board *game.Board
}

func (l pieceLive) Rotation() int { return l.piece.Rotation }
func (l pieceLive) Column() int { return l.piece.Position.X }
func (l pieceLive) Locked() bool { return l.piece.Locked }
func (l pieceLive) Apply(cmd game.Command) bool { return l.piece.Apply(cmd, l.board) }
