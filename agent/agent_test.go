package agent

import (
	"bytes"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/require"

	"mancala/game"
	"mancala/searcher"
)

type scriptedReader struct {
	lines  []string
	err    error
	prompt string
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", r.err
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

func TestSearchAgent(t *testing.T) {
	t.Run("plays the searcher's move", func(t *testing.T) {
		s := searcher.New(searcher.WithMaxDepth(3))
		want, _, err := s.BestMove(game.NewBoard(), game.Two)
		require.NoError(t, err)

		pit, _, err := NewSearchAgent(s).FindMove(game.NewBoard(), game.Two)

		require.NoError(t, err)
		require.Equal(t, want.Pit, pit)
	})

	t.Run("wraps the no legal moves error", func(t *testing.T) {
		b, err := game.FromPits([game.NumPits]int{0, 0, 0, 0, 0, 0, 24, 4, 4, 4, 4, 4, 4, 0})
		require.NoError(t, err)

		_, _, err = NewSearchAgent(searcher.New()).FindMove(b, game.One)

		require.ErrorIs(t, err, searcher.ErrNoLegalMoves)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("only picks non-empty pits in the row", func(t *testing.T) {
		b, err := game.FromPits([game.NumPits]int{0, 3, 0, 0, 2, 0, 0, 4, 4, 4, 4, 4, 4, 0})
		require.NoError(t, err)
		a := NewRandomAgent(1)

		seen := map[int]bool{}
		for i := 0; i < 100; i++ {
			pit, _, err := a.FindMove(b, game.One)
			require.NoError(t, err)
			seen[pit] = true
		}

		require.Equal(t, map[int]bool{1: true, 4: true}, seen)
	})

	t.Run("same seed same choices", func(t *testing.T) {
		a1, a2 := NewRandomAgent(42), NewRandomAgent(42)
		for i := 0; i < 20; i++ {
			p1, _, err := a1.FindMove(game.NewBoard(), game.Two)
			require.NoError(t, err)
			p2, _, err := a2.FindMove(game.NewBoard(), game.Two)
			require.NoError(t, err)
			require.Equal(t, p1, p2)
		}
	})

	t.Run("no legal moves", func(t *testing.T) {
		b, err := game.FromPits([game.NumPits]int{4, 4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 24})
		require.NoError(t, err)

		_, _, err = NewRandomAgent(1).FindMove(b, game.Two)

		require.ErrorIs(t, err, searcher.ErrNoLegalMoves)
	})
}

func TestHumanAgent(t *testing.T) {
	t.Run("re-prompts until a legal pit", func(t *testing.T) {
		b, err := game.FromPits([game.NumPits]int{4, 4, 4, 0, 4, 4, 0, 4, 4, 4, 4, 4, 4, 0})
		require.NoError(t, err)
		in := &scriptedReader{lines: []string{"", "abc", "9", "3", " 4 "}}
		var out bytes.Buffer

		pit, _, err := NewHumanAgent(in, &out).FindMove(b, game.One)

		require.NoError(t, err)
		require.Equal(t, 4, pit)
		require.Equal(t, "player one, pit 0-5> ", in.prompt)
		require.Contains(t, out.String(), `not a pit number: "abc"`)
		require.Contains(t, out.String(), "pit 9 is not in player one's row")
		require.Contains(t, out.String(), "pit 3 is empty")
	})

	t.Run("quit command", func(t *testing.T) {
		in := &scriptedReader{lines: []string{"quit"}}

		_, _, err := NewHumanAgent(in, io.Discard).FindMove(game.NewBoard(), game.Two)

		require.ErrorIs(t, err, ErrQuit)
	})

	t.Run("end of input", func(t *testing.T) {
		in := &scriptedReader{err: io.EOF}

		_, _, err := NewHumanAgent(in, io.Discard).FindMove(game.NewBoard(), game.Two)

		require.ErrorIs(t, err, ErrQuit)
	})

	t.Run("interrupt", func(t *testing.T) {
		in := &scriptedReader{err: readline.ErrInterrupt}

		_, _, err := NewHumanAgent(in, io.Discard).FindMove(game.NewBoard(), game.One)

		require.ErrorIs(t, err, ErrQuit)
	})
}
