package game

import (
	"fmt"
	"strings"

	"mancala/meta"
)

// Board holds the stone count of every pit. It is a plain value: assigning a
// Board produces an independent working copy.
type Board struct {
	pits [NumPits]int
}

// NewBoard returns the starting position.
func NewBoard() Board {
	var b Board
	for i := range b.pits {
		if !IsStore(i) {
			b.pits[i] = meta.INITIAL_SEEDS
		}
	}
	return b
}

// FromPits builds a board from explicit counts.
func FromPits(pits [NumPits]int) (Board, error) {
	for i, n := range pits {
		if n < 0 {
			return Board{}, fmt.Errorf("pit %d holds %d: %w", i, n, ErrNegativeStones)
		}
	}
	return Board{pits: pits}, nil
}

func (b Board) Pit(i int) int {
	return b.pits[i]
}

// Pits returns a copy of all counts.
func (b Board) Pits() [NumPits]int {
	return b.pits
}

// Total is the number of stones on the board.
func (b Board) Total() int {
	total := 0
	for _, n := range b.pits {
		total += n
	}
	return total
}

// RowTotal sums the playable pits of one player, store excluded.
func (b Board) RowTotal(p Player) int {
	first, last := p.Row()
	total := 0
	for i := first; i <= last; i++ {
		total += b.pits[i]
	}
	return total
}

// IsOver reports whether either row is completely empty.
func (b Board) IsOver() bool {
	return b.RowTotal(One) == 0 || b.RowTotal(Two) == 0
}

// Scores returns row plus store for each player.
func (b Board) Scores() (int, int) {
	return b.total(One), b.total(Two)
}

func (b Board) total(p Player) int {
	return b.RowTotal(p) + b.pits[p.Store()]
}

// Winner returns the player with the higher score, false on a draw.
func (b Board) Winner() (Player, bool) {
	one, two := b.Scores()
	switch {
	case one > two:
		return One, true
	case two > one:
		return Two, true
	}
	return One, false
}

// LegalMoves lists the non-empty pits of the player's row, ascending.
func (b Board) LegalMoves(p Player) []int {
	first, last := p.Row()
	moves := make([]int, 0, RowPits)
	for i := first; i <= last; i++ {
		if b.pits[i] > 0 {
			moves = append(moves, i)
		}
	}
	return moves
}

// Sweep moves every remaining row stone into its owner's store. The move
// engine never calls it; game loops opt in at game over.
func (b *Board) Sweep() {
	for _, p := range []Player{One, Two} {
		first, last := p.Row()
		for i := first; i <= last; i++ {
			b.pits[p.Store()] += b.pits[i]
			b.pits[i] = 0
		}
	}
}

// String renders Player Two's row on top (right to left) and Player One's row
// below, with the stores at either end.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("     ")
	for i := StoreTwo - 1; i > StoreOne; i-- {
		fmt.Fprintf(&sb, "%3d", b.pits[i])
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%3d  %s%3d\n", b.pits[StoreTwo], strings.Repeat("   ", RowPits), b.pits[StoreOne])
	sb.WriteString("     ")
	for i := 0; i < StoreOne; i++ {
		fmt.Fprintf(&sb, "%3d", b.pits[i])
	}
	sb.WriteString("\n")
	return sb.String()
}
