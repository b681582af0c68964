package game

import "mancala/meta"

// Pit layout. Player One sows from 0-5 into store 6, Player Two from 7-12
// into store 13.
const (
	NumPits  = meta.NUM_PITS
	RowPits  = meta.ROW_PITS
	StoreOne = 6
	StoreTwo = 13
)

// Evaluates a board from the given player's perspective. Larger is better
// for that player.
type Evaluate func(Board, Player) float64

// Successor returns the pit that follows i in sowing order. The ring wraps
// from 13 back to 0.
func Successor(i int) int {
	return (i + 1) % NumPits
}

// Reflect returns the row-mirrored pit on the other side of the board.
func Reflect(i int) int {
	return 12 - i
}

// IsStore reports whether i is either player's store.
func IsStore(i int) bool {
	return i == StoreOne || i == StoreTwo
}
