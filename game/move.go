package game

// Apply sows the stones of pit for player p and resolves capture and extra
// turn. It reports whether p moves again. A pit outside p's row yields an
// *InvalidMoveError and leaves the board untouched; an empty pit is a no-op.
func (b *Board) Apply(pit int, p Player) (bool, error) {
	if !p.Owns(pit) {
		return false, &InvalidMoveError{Pit: pit, Player: p}
	}

	stones := b.pits[pit]
	if stones == 0 {
		return false, nil
	}
	b.pits[pit] = 0

	skip := p.OpponentStore()
	landing := pit
	for stones > 0 {
		landing = Successor(landing)
		if landing == skip {
			continue
		}
		b.pits[landing]++
		stones--
	}

	if b.captures(landing, p) {
		b.moveToStore(landing, p)
		b.moveToStore(Reflect(landing), p)
	}

	return landing == StoreIndex(p) && !b.IsOver(), nil
}

// captures reports whether a stone landing in an empty own pit takes the
// mirrored pit.
func (b *Board) captures(landing int, p Player) bool {
	return !IsStore(landing) &&
		p.Owns(landing) &&
		b.pits[landing] == 1 &&
		b.pits[Reflect(landing)] > 0
}

func (b *Board) moveToStore(pit int, p Player) {
	b.pits[StoreIndex(p)] += b.pits[pit]
	b.pits[pit] = 0
}
