package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mancala/agent"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/gamemaster"
	"mancala/meta"
)

const Draw = "draw"

type Engine struct {
	Session  *gamemaster.Session
	Agents   [2]agent.Agent // indexed by game.Player
	MaxTurns int
	starting game.Player
}

// LocalEngine pairs two agents over a fresh session. Session options set the
// start position and end-of-game sweep.
func LocalEngine(agents [2]agent.Agent, options ...gamemaster.SessionOption) *Engine {
	if agents[game.One] == nil || agents[game.Two] == nil {
		panic("need an agent for each player")
	}
	session := gamemaster.NewSession(options...)
	return &Engine{
		Session:  session,
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
		starting: session.CurrentPlayer(),
	}
}

// Run executes the game loop until the board reports game over.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.starting,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.starting)

	turnCount := 1
	for !e.Session.IsOver() && turnCount <= e.MaxTurns {
		player := e.Session.CurrentPlayer()
		board := e.Session.Board()

		pit, searchMetric, err := e.Agents[player].FindMove(board, player)
		if err != nil {
			return "", e.complete(gameMetric, turnCount-1), moveMetrics, fmt.Errorf("turn %d: %w", turnCount, err)
		}

		update, err := e.Session.Play(pit)
		if errors.Is(err, game.ErrInvalidMove) {
			fallback := board.LegalMoves(player)
			log.Warn().Err(err).Msgf("agent for player %s returned an invalid move => forcing pit %d", player, fallback[0])
			pit = fallback[0]
			update, err = e.Session.Play(pit)
		}
		if err != nil {
			return "", e.complete(gameMetric, turnCount-1), moveMetrics, fmt.Errorf("turn %d: %w", turnCount, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       player,
			Pit:          pit,
			ExtraTurn:    update.ExtraTurn,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("turn %d: player %s sowed pit %d (extra turn: %t)\n%s", turnCount, player, pit, update.ExtraTurn, update.Board)

		turnCount++
	}

	gameMetric = e.complete(gameMetric, turnCount-1)
	if e.Session.IsOver() {
		log.Info().Msgf("game over after %d turns: %d-%d, winner: %s", gameMetric.TotalMoves, gameMetric.ScoreOne, gameMetric.ScoreTwo, gameMetric.Winner)
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.MaxTurns)
	}

	return gameMetric.Winner, gameMetric, moveMetrics, nil
}

func (e *Engine) complete(gameMetric metrics.GameMetric, moves int) metrics.GameMetric {
	board := e.Session.Board()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = moves
	gameMetric.ScoreOne, gameMetric.ScoreTwo = board.Scores()
	if e.Session.IsOver() {
		gameMetric.Winner = winner(board)
	}
	return gameMetric
}

func winner(board game.Board) string {
	if p, ok := board.Winner(); ok {
		return p.String()
	}
	return Draw
}
