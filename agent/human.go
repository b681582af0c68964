package agent

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"mancala/experiments/metrics"
	"mancala/game"
)

// LineReader is the subset of *readline.Instance the human agent needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type humanAgent struct {
	in  LineReader
	out io.Writer
}

// NewHumanAgent returns an agent that asks for a pit index on the terminal.
func NewHumanAgent(in LineReader, out io.Writer) Agent {
	return &humanAgent{in: in, out: out}
}

func (a *humanAgent) FindMove(board game.Board, player game.Player) (int, metrics.SearchMetric, error) {
	first, last := player.Row()
	fmt.Fprint(a.out, board.String())
	a.in.SetPrompt(fmt.Sprintf("player %s, pit %d-%d> ", player, first, last))

	for {
		line, err := a.in.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return -1, metrics.SearchMetric{}, ErrQuit
		}
		if err != nil {
			return -1, metrics.SearchMetric{}, fmt.Errorf("reading move: %w", err)
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "q", "quit", "exit":
			return -1, metrics.SearchMetric{}, ErrQuit
		}

		pit, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(a.out, "not a pit number: %q\n", line)
			continue
		}
		if !player.Owns(pit) {
			fmt.Fprintln(a.out, (&game.InvalidMoveError{Pit: pit, Player: player}).Error())
			continue
		}
		if board.Pit(pit) == 0 {
			fmt.Fprintf(a.out, "pit %d is empty\n", pit)
			continue
		}
		return pit, metrics.SearchMetric{}, nil
	}
}
