package agent

import (
	"fmt"

	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher"
)

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent that plays the searcher's best move.
func NewSearchAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(board game.Board, player game.Player) (int, metrics.SearchMetric, error) {
	result, metric, err := a.searcher.BestMove(board, player)
	if err != nil {
		return -1, metric, fmt.Errorf("search for player %s: %w", player, err)
	}
	return result.Pit, metric, nil
}
