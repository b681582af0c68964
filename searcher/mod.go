package searcher

import (
	"errors"

	"mancala/game"
)

var ErrNoLegalMoves = errors.New("no legal moves")

// Result is the chosen pit and its additive score.
type Result struct {
	Pit   int
	Score float64
}

// BestMove runs a sequential search to maxDepth plies with the default
// evaluator.
func BestMove(board game.Board, player game.Player, maxDepth int) (int, float64, error) {
	result, _, err := New(WithMaxDepth(maxDepth)).BestMove(board, player)
	return result.Pit, result.Score, err
}
