package engine

import (
	"testing"
	"tetris/experiments/metrics"
	"tetris/game"
	"tetris/searcher"
	"tetris/searcher/agent"

	"github.com/stretchr/testify/require"
)

type repeatSource struct {
	kind game.Kind
}

func (s repeatSource) Next() game.Kind {
	return s.kind
}

// firstAgent takes the first placement in enumeration order.
type firstAgent struct{}

func (firstAgent) Name() string {
	return "first"
}

func (firstAgent) FindPlacement(board *game.Board, current, _ game.Kind) (game.Placement, metrics.SearchMetric, bool) {
	placements := board.Placements(current)
	if len(placements) == 0 {
		return game.Placement{}, metrics.SearchMetric{}, false
	}
	return placements[0], metrics.SearchMetric{Candidates: len(placements)}, true
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without collaborators", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine(nil, repeatSource{}, firstAgent{}) })
		require.Panics(t, func() { LocalEngine(game.NewBoard(4, 4), nil, firstAgent{}) })
		require.Panics(t, func() { LocalEngine(game.NewBoard(4, 4), repeatSource{}, nil) })
	})

	t.Run("ends when no placement is left", func(t *testing.T) {
		board := game.NewBoard(5, 6)
		e := LocalEngine(board, repeatSource{kind: game.O}, firstAgent{})
		gameMetric, moves := e.Run()

		// O never covers column 0, so nothing clears: three pieces fit in
		// columns 1-2 and three more in columns 3-4
		require.True(t, gameMetric.GameOver)
		require.Equal(t, 6, gameMetric.Pieces)
		require.Zero(t, gameMetric.Lines)
		require.Equal(t, "first", gameMetric.Agent)
		require.Len(t, moves, 6)
		require.Equal(t, 24, board.Count(game.Settled))
		require.False(t, board.Failed)
		for i, m := range moves {
			require.Equal(t, i+1, m.Step)
			require.Equal(t, "O", m.Kind)
		}
		require.Equal(t, 2, moves[3].Column)
	})

	t.Run("stops at the piece limit", func(t *testing.T) {
		board := game.NewBoard(10, 20)
		e := LocalEngine(board, game.NewBag(3), agent.NewHeuristicAgent(searcher.NewGreedy()))
		e.MaxPieces = 150
		e.Seed = 3
		gameMetric, moves := e.Run()

		require.False(t, gameMetric.GameOver)
		require.Equal(t, 150, gameMetric.Pieces)
		require.Equal(t, uint64(3), gameMetric.Seed)
		require.Len(t, moves, 150)
		require.Zero(t, board.Count(game.Falling), "Simulated cells never reach the live board")

		lines := 0
		for _, m := range moves {
			require.GreaterOrEqual(t, m.Lines, 0)
			require.Positive(t, m.Commands)
			lines += m.Lines
		}
		require.Equal(t, lines, gameMetric.Lines)
		require.Equal(t, 150*game.CellsPerPiece-lines*board.Width, board.Count(game.Settled))
	})

	t.Run("places pieces where the agent asked", func(t *testing.T) {
		board := game.NewBoard(10, 20)
		e := LocalEngine(board, game.NewBag(8), firstAgent{})
		e.MaxPieces = 1
		_, moves := e.Run()
		require.Len(t, moves, 1)
		m := moves[0]
		require.Equal(t, 0, m.Rotation)
		require.Equal(t, 0, m.Column)
		kind, err := game.ParseKind(m.Kind)
		require.NoError(t, err)
		for _, o := range game.LayoutOf(kind, m.Rotation) {
			require.Equal(t, game.Settled, board.At(m.Column+o.DX, m.Row+o.DY))
		}
		require.Equal(t, game.CellsPerPiece, board.Count(game.Settled))
	})
}
