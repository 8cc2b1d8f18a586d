package engine

import (
	"tetris/experiments/metrics"
	"tetris/game"
	"tetris/searcher"
	"tetris/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

// Engine owns the live board of one game session. It spawns pieces from the
// source, asks the agent where each should go and drives the piece there with
// primitive commands.
type Engine struct {
	Board     *game.Board
	Source    game.Source
	Agent     agent.Agent
	MaxPieces int
	Seed      uint64 // Recorded in the game metrics
}

// rotationSource is a Source that also picks spawn rotations, like game.Bag.
type rotationSource interface {
	Rotation(kind game.Kind) int
}

func LocalEngine(board *game.Board, source game.Source, a agent.Agent) *Engine {
	if board == nil || source == nil || a == nil {
		panic("engine needs a board, a piece source and an agent")
	}
	return &Engine{
		Board:     board,
		Source:    source,
		Agent:     a,
		MaxPieces: MaxPieces,
	}
}

// Run executes the game loop until no piece can be placed.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	record := metrics.GameMetric{
		Seed:      e.Seed,
		Agent:     e.Agent.Name(),
		StartTime: time.Now(),
	}
	var moves []metrics.MoveMetric

	log.Info().Msgf("%s agent is starting on a %dx%d board", e.Agent.Name(), e.Board.Width, e.Board.Height)

	current, next := e.Source.Next(), e.Source.Next()
	for record.Pieces < e.MaxPieces {
		move, ok := e.step(current, next)
		if !ok {
			record.GameOver = true
			break
		}
		record.Pieces++
		record.Lines += move.Lines
		move.Step = record.Pieces
		moves = append(moves, move)

		log.Debug().
			Int("step", move.Step).
			Str("kind", move.Kind).
			Int("column", move.Column).
			Int("rotation", move.Rotation).
			Int("lines", move.Lines).
			Msg("piece placed")

		current, next = next, e.Source.Next()
	}

	record.EndTime = time.Now()
	record.Duration = record.EndTime.Sub(record.StartTime)
	if record.GameOver {
		log.Info().Msgf("game over after %d pieces with %d lines", record.Pieces, record.Lines)
	} else {
		log.Info().Msgf("stopped after %d pieces (no game over yet) with %d lines", record.Pieces, record.Lines)
	}
	return record, moves
}

// step places one piece. It returns false when the game is over.
func (e *Engine) step(current, next game.Kind) (metrics.MoveMetric, bool) {
	rotation := 0
	if rs, ok := e.Source.(rotationSource); ok {
		rotation = rs.Rotation(current)
	}
	piece := game.NewPiece(current, rotation, game.SpawnPosition(e.Board.Width))

	target, search, ok := e.Agent.FindPlacement(e.Board, current, next)
	if !ok {
		return metrics.MoveMetric{}, false
	}

	live := &livePiece{piece: piece, board: e.Board}
	commands, err := searcher.Drive(live, target, game.Rotations(current), e.Board.Height-game.SpawnRow+1)
	if err != nil {
		log.Warn().Err(err).Msgf("could not place %s", current)
		return metrics.MoveMetric{}, false
	}
	if piece.Failed || e.Board.Failed {
		return metrics.MoveMetric{}, false
	}

	return metrics.MoveMetric{
		Kind:         current.String(),
		Column:       piece.Position.X,
		Rotation:     piece.Rotation,
		Row:          piece.Position.Y,
		Lines:        e.Board.ClearFullRows(),
		Commands:     commands,
		SearchMetric: search,
	}, true
}

// livePiece adapts a game.Piece on the engine's board to searcher.Live.
type livePiece struct {
	piece *game.Piece
	board *game.Board
}

func (l *livePiece) Rotation() int {
	return l.piece.Rotation
}

func (l *livePiece) Column() int {
	return l.piece.Position.X
}

func (l *livePiece) Locked() bool {
	return l.piece.Locked
}

func (l *livePiece) Apply(cmd game.Command) bool {
	return l.piece.Apply(cmd, l.board)
}
