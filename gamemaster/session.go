package gamemaster

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"mancala/game"
	"mancala/meta"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// Update describes one applied move and the board it produced.
type Update struct {
	Player    game.Player
	Pit       int
	ExtraTurn bool
	Board     game.Board
}

// UpdateGetter returns the next pending update without blocking. ok is false
// when nothing is pending; done is true once the game is over and every
// update has been read.
type UpdateGetter func() (u Update, ok bool, done bool)

// Session owns the board of one game and applies externally supplied moves
// for whichever player is to move.
type Session struct {
	mu       sync.Mutex
	board    game.Board
	current  game.Player
	updateCh chan Update
	getter   UpdateGetter
	initOnce sync.Once
	gameOver bool
	sweep    bool
}

type SessionOption func(s *Session)

// WithSweep moves leftover row stones into their owners' stores when the game
// ends.
func WithSweep() SessionOption {
	return func(s *Session) {
		s.sweep = true
	}
}

// WithStart sets the position and player to move instead of the opening.
func WithStart(board game.Board, player game.Player) SessionOption {
	return func(s *Session) {
		s.board = board
		s.current = player
	}
}

func NewSession(options ...SessionOption) *Session {
	s := &Session{
		board:   game.NewBoard(),
		current: game.One,
	}
	for _, option := range options {
		option(s)
	}
	s.gameOver = s.board.IsOver()
	return s
}

// Init opens the update feed and returns a copy of the current board. The feed
// is opened once; later calls return the same getter. Without Init, Play still
// works and nothing is published.
func (s *Session) Init() (game.Board, UpdateGetter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initOnce.Do(func() {
		s.updateCh = make(chan Update, meta.MAX_TURNS)
		if s.gameOver {
			s.finish()
		}
		updates := s.updateCh
		s.getter = func() (Update, bool, bool) {
			select {
			case u, ok := <-updates:
				if !ok {
					return Update{}, false, true
				}
				return u, true, false
			default:
				return Update{}, false, false
			}
		}
	})

	return s.board, s.getter
}

// Play applies pit for the player to move. The turn passes to the opponent
// unless the move earns an extra turn.
func (s *Session) Play(pit int) (Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gameOver {
		return Update{}, ErrGameOver
	}

	mover := s.current
	again, err := s.board.Apply(pit, mover)
	if err != nil {
		return Update{}, fmt.Errorf("player %s: %w", mover, err)
	}
	if !again {
		s.current = mover.Opponent()
	}

	if s.board.IsOver() {
		s.gameOver = true
		if s.sweep {
			s.board.Sweep()
		}
	}

	u := Update{Player: mover, Pit: pit, ExtraTurn: again, Board: s.board}
	s.publish(u)
	if s.gameOver {
		s.finish()
	}

	log.Debug().
		Str("player", mover.String()).
		Int("pit", pit).
		Bool("extraTurn", again).
		Bool("gameOver", s.gameOver).
		Msg("move applied")
	return u, nil
}

func (s *Session) publish(u Update) {
	if s.updateCh == nil {
		return
	}
	select {
	case s.updateCh <- u:
	default:
		log.Warn().Int("pit", u.Pit).Msg("update feed full, dropping update")
	}
}

func (s *Session) finish() {
	if s.updateCh != nil {
		close(s.updateCh)
	}
}

func (s *Session) Board() game.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

func (s *Session) CurrentPlayer() game.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) IsOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gameOver
}
