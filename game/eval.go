package game

// Grade scores the board as the player's row+store total minus the
// opponent's.
func Grade(b Board, p Player) float64 {
	return float64(b.total(p) - b.total(p.Opponent()))
}
