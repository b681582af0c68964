package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among non-empty pits.
// The same seed replays the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board game.Board, player game.Player) (int, metrics.SearchMetric, error) {
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return -1, metrics.SearchMetric{}, fmt.Errorf("random move for player %s: %w", player, searcher.ErrNoLegalMoves)
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
