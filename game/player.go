package game

import "fmt"

// Player identifies one side of the board.
type Player int

const (
	One Player = iota
	Two
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == One {
		return Two
	}
	return One
}

// Store is the index of the player's own store.
func (p Player) Store() int {
	return StoreIndex(p)
}

// OpponentStore is the index of the store the player never sows into.
func (p Player) OpponentStore() int {
	return OpponentStoreIndex(p)
}

// Row returns the first and last playable pit of the player's row.
func (p Player) Row() (first, last int) {
	if p == One {
		return 0, StoreOne - 1
	}
	return StoreOne + 1, StoreTwo - 1
}

// Owns reports whether pit lies in the player's playable row.
func (p Player) Owns(pit int) bool {
	first, last := p.Row()
	return pit >= first && pit <= last
}

func (p Player) String() string {
	switch p {
	case One:
		return "one"
	case Two:
		return "two"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// ParsePlayer accepts "one"/"two" (or "1"/"2").
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "one", "1":
		return One, nil
	case "two", "2":
		return Two, nil
	}
	return One, fmt.Errorf("unknown player %q", s)
}

// StoreIndex is the store p sows into and captures into.
func StoreIndex(p Player) int {
	if p == One {
		return StoreOne
	}
	return StoreTwo
}

// OpponentStoreIndex is the store skipped while p sows.
func OpponentStoreIndex(p Player) int {
	return StoreIndex(p.Opponent())
}
