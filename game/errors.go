package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrNegativeStones = errors.New("negative stone count")
)

// InvalidMoveError is returned when a pit outside the mover's row is played.
type InvalidMoveError struct {
	Pit    int
	Player Player
}

func (e *InvalidMoveError) Error() string {
	first, last := e.Player.Row()
	return fmt.Sprintf("invalid move: pit %d is not in player %s's row (%d-%d)", e.Pit, e.Player, first, last)
}

func (e *InvalidMoveError) Unwrap() error {
	return ErrInvalidMove
}
