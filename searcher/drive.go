package searcher

import (
	"errors"
	"fmt"
	"tetris/game"

	"github.com/rs/zerolog/log"
)

// ErrUnreachable is returned when the live piece rejects a command needed to
// reach the target placement.
var ErrUnreachable = errors.New("placement unreachable")

// Live is the falling piece owned by the game loop. Apply issues one command and
// reports whether the piece accepted it.
type Live interface {
	Rotation() int
	Column() int
	Locked() bool
	Apply(cmd game.Command) bool
}

// Plan returns the commands that move a piece from its current rotation and
// column to the target, before the final drops. Rotations come first, then
// shifts.
func Plan(rotation, column, rotations int, target game.Placement) []game.Command {
	var commands []game.Command
	for r, i := rotation, 0; r != target.Rotation && i < rotations; r, i = (r+1)%rotations, i+1 {
		commands = append(commands, game.RotateCW)
	}
	for x := column; x > target.Column; x-- {
		commands = append(commands, game.ShiftLeft)
	}
	for x := column; x < target.Column; x++ {
		commands = append(commands, game.ShiftRight)
	}
	return commands
}

// Drive steers the live piece into the target: rotate until the rotation
// matches, shift until the column matches, then soft drop until it locks. It
// returns the number of commands issued.
func Drive(live Live, target game.Placement, rotations, maxDrops int) (int, error) {
	issued := 0
	for _, cmd := range Plan(live.Rotation(), live.Column(), rotations, target) {
		issued++
		if !live.Apply(cmd) {
			log.Warn().Msgf("piece rejected %s on its way to column %d rotation %d", cmd, target.Column, target.Rotation)
			return issued, fmt.Errorf("%s at column %d rotation %d: %w", cmd, live.Column(), live.Rotation(), ErrUnreachable)
		}
	}
	for drops := 0; !live.Locked(); drops++ {
		if drops > maxDrops {
			return issued, fmt.Errorf("piece did not lock after %d drops: %w", maxDrops, ErrUnreachable)
		}
		issued++
		live.Apply(game.SoftDrop)
	}
	return issued, nil
}
