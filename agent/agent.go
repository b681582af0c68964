package agent

import (
	"errors"

	"mancala/experiments/metrics"
	"mancala/game"
)

// ErrQuit is returned when a human asks to leave the game.
var ErrQuit = errors.New("player quit")

type Agent interface {
	// FindMove returns a pit in player's row and performance metrics (if collected)
	FindMove(board game.Board, player game.Player) (int, metrics.SearchMetric, error)
}
