package searcher

import (
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(s *Searcher)

// Searcher picks moves with a fixed-depth additive lookahead: a move's score
// is its grade, plus the best continuation when the mover goes again, or
// minus the opponent's best reply otherwise. It is not minimax.
//
// A Searcher runs one search at a time.
type Searcher struct {
	goroutines int
	maxDepth   int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithGoroutines explores root moves concurrently, each on its own board copy.
func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		goroutines: 1,
		maxDepth:   meta.DEFAULT_MAX_DEPTH,
		evaluate:   game.Grade,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) MaxDepth() int {
	return s.maxDepth
}

func (s *Searcher) Goroutines() int {
	return s.goroutines
}

// BestMove returns the highest scoring pit for player, the lowest pit on ties.
// The board is never modified.
func (s *Searcher) BestMove(board game.Board, player game.Player) (Result, metrics.SearchMetric, error) {
	s.metrics.Start(s.goroutines, s.maxDepth)

	var best Result
	var found bool
	if s.goroutines > 1 {
		best, found = s.searchRoot(board, player)
	} else {
		best, found = s.search(board, player, 1)
	}

	metric := s.metrics.Complete(best.Score)
	if !found {
		return best, metric, ErrNoLegalMoves
	}

	log.Debug().
		Str("player", player.String()).
		Int("pit", best.Pit).
		Float64("score", best.Score).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msg("search complete")
	return best, metric, nil
}

// search tries every non-empty pit of player's row in ascending order. With no
// candidates it returns a zero score and false.
func (s *Searcher) search(board game.Board, player game.Player, depth int) (Result, bool) {
	best := Result{Pit: -1}
	found := false
	first, last := player.Row()
	for pit := first; pit <= last; pit++ {
		if board.Pit(pit) == 0 {
			continue
		}
		score := s.explore(board, pit, player, depth)
		if !found || score > best.Score {
			best = Result{Pit: pit, Score: score}
			found = true
		}
	}
	return best, found
}

// searchRoot scores each root move in its own goroutine and merges in pit
// order so the choice matches the sequential search.
func (s *Searcher) searchRoot(board game.Board, player game.Player) (Result, bool) {
	moves := board.LegalMoves(player)
	scores := make([]float64, len(moves))

	g := errgroup.Group{}
	g.SetLimit(s.goroutines)
	for i, pit := range moves {
		i, pit := i, pit
		g.Go(func() error {
			scores[i] = s.explore(board, pit, player, 1)
			return nil
		})
	}
	_ = g.Wait()

	best := Result{Pit: -1}
	for i, pit := range moves {
		if i == 0 || scores[i] > best.Score {
			best = Result{Pit: pit, Score: scores[i]}
		}
	}
	return best, len(moves) > 0
}

// explore plays pit on a private copy of board and scores the outcome.
func (s *Searcher) explore(board game.Board, pit int, player game.Player, depth int) float64 {
	s.metrics.AddNode()

	working := board
	// pit always lies in player's row here
	continues, _ := working.Apply(pit, player)
	score := s.evaluate(working, player)

	if depth >= s.maxDepth {
		return score
	}
	if continues {
		bonus, _ := s.search(working, player, depth+1)
		return score + bonus.Score
	}
	reply, _ := s.search(working, player.Opponent(), depth+1)
	return score - reply.Score
}
