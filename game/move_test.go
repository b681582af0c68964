package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func boardWith(t *testing.T, overrides map[int]int) Board {
	t.Helper()
	pits := NewBoard().Pits()
	for i, n := range overrides {
		pits[i] = n
	}
	b, err := FromPits(pits)
	require.NoError(t, err)
	return b
}

func TestApplyExtraTurn(t *testing.T) {
	t.Run("player one lands in own store", func(t *testing.T) {
		b := NewBoard()

		again, err := b.Apply(2, One)

		require.NoError(t, err)
		require.True(t, again, "Landing in store 6 should grant an extra turn")
		require.Equal(t, 0, b.Pit(2))
		require.Equal(t, []int{5, 5, 5, 1}, []int{b.Pit(3), b.Pit(4), b.Pit(5), b.Pit(6)})
	})

	t.Run("player two lands in own store", func(t *testing.T) {
		b := NewBoard()

		again, err := b.Apply(9, Two)

		require.NoError(t, err)
		require.True(t, again, "Landing in store 13 should grant an extra turn")
		require.Equal(t, 1, b.Pit(StoreTwo))
		require.Equal(t, 0, b.Pit(StoreOne))
	})

	t.Run("landing elsewhere ends the turn", func(t *testing.T) {
		b := NewBoard()

		again, err := b.Apply(0, One)

		require.NoError(t, err)
		require.False(t, again)
	})

	t.Run("no extra turn once the game is over", func(t *testing.T) {
		b := boardWith(t, map[int]int{0: 0, 1: 0, 2: 0, 3: 0, 4: 0, 5: 1})

		again, err := b.Apply(5, One)

		require.NoError(t, err)
		require.Equal(t, 1, b.Pit(StoreOne), "Stone should still land in the store")
		require.True(t, b.IsOver())
		require.False(t, again, "A finished game grants no extra turn")
	})
}

func TestApplyCapture(t *testing.T) {
	t.Run("player one captures the reflective pit", func(t *testing.T) {
		b := boardWith(t, map[int]int{5: 0, 7: 10})

		again, err := b.Apply(1, One)

		require.NoError(t, err)
		require.False(t, again)
		require.Equal(t, 11, b.Pit(StoreOne), "Store should hold the landing stone plus the 10 captured")
		require.Equal(t, 0, b.Pit(5))
		require.Equal(t, 0, b.Pit(7))
		require.Equal(t, 5, b.Pit(2))
	})

	t.Run("player two captures the reflective pit", func(t *testing.T) {
		// 8 holds 4 stones: 9, 10, 11, 12 where 12 was empty
		b := boardWith(t, map[int]int{12: 0, 0: 6})

		again, err := b.Apply(8, Two)

		require.NoError(t, err)
		require.False(t, again)
		require.Equal(t, 7, b.Pit(StoreTwo))
		require.Equal(t, 0, b.Pit(12))
		require.Equal(t, 0, b.Pit(0))
	})

	t.Run("empty reflective pit is not captured", func(t *testing.T) {
		b := boardWith(t, map[int]int{5: 0, 7: 0})

		_, err := b.Apply(1, One)

		require.NoError(t, err)
		require.Equal(t, 1, b.Pit(5), "Landing stone should stay put")
		require.Equal(t, 0, b.Pit(StoreOne))
	})

	t.Run("landing on the opponent's side never captures", func(t *testing.T) {
		// 4 holds 3 stones: 5, 6, 7 where 7 was empty
		b := boardWith(t, map[int]int{4: 3, 7: 0})

		again, err := b.Apply(4, One)

		require.NoError(t, err)
		require.False(t, again)
		require.Equal(t, 1, b.Pit(7))
		require.Equal(t, 5, b.Pit(5), "Reflective pit should be untouched")
		require.Equal(t, 1, b.Pit(StoreOne))
	})

	t.Run("landing on a non-empty own pit never captures", func(t *testing.T) {
		b := NewBoard()

		_, err := b.Apply(0, One)

		require.NoError(t, err)
		require.Equal(t, 5, b.Pit(4))
		require.Equal(t, 4, b.Pit(Reflect(4)))
		require.Equal(t, 0, b.Pit(StoreOne))
	})
}

func TestApplyWrapAround(t *testing.T) {
	t.Run("player one skips the opponent's store", func(t *testing.T) {
		b := boardWith(t, map[int]int{5: 8, 0: 0})

		again, err := b.Apply(5, One)

		require.NoError(t, err)
		require.False(t, again)
		require.Equal(t, 0, b.Pit(StoreTwo), "Player one never sows into store 13")
		// landing in empty pit 0 captures pit 12 (4+1)
		require.Equal(t, 7, b.Pit(StoreOne))
		require.Equal(t, 0, b.Pit(0))
		require.Equal(t, 0, b.Pit(12))
		require.Equal(t, 48, b.Total())
	})

	t.Run("player two skips the opponent's store", func(t *testing.T) {
		b := boardWith(t, map[int]int{12: 9})
		total := b.Total()

		_, err := b.Apply(12, Two)

		require.NoError(t, err)
		require.Equal(t, 0, b.Pit(StoreOne), "Player two never sows into store 6")
		require.Equal(t, 1, b.Pit(StoreTwo))
		require.Equal(t, 5, b.Pit(7), "Eighth stone should wrap past store 6 into pit 7")
		require.Equal(t, total, b.Total())
	})
}

func TestApplyInvalid(t *testing.T) {
	cases := []struct {
		name   string
		pit    int
		player Player
	}{
		{"negative pit", -1, One},
		{"past the board", 14, Two},
		{"own store", StoreOne, One},
		{"opponent store", StoreTwo, One},
		{"opponent row", 3, Two},
		{"player one on player two row", 9, One},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBoard()
			before := b

			again, err := b.Apply(c.pit, c.player)

			require.False(t, again)
			require.ErrorIs(t, err, ErrInvalidMove)
			var invalid *InvalidMoveError
			require.True(t, errors.As(err, &invalid))
			require.Equal(t, c.pit, invalid.Pit)
			require.Equal(t, c.player, invalid.Player)
			require.Equal(t, before, b, "Board should be untouched")
		})
	}
}

func TestApplyEmptyPit(t *testing.T) {
	b := boardWith(t, map[int]int{3: 0})
	before := b

	again, err := b.Apply(3, One)

	require.NoError(t, err)
	require.False(t, again, "An empty source grants no extra turn")
	require.Equal(t, before, b, "An empty source is a no-op")
}

func TestApplyDeterministic(t *testing.T) {
	b := boardWith(t, map[int]int{1: 11, 9: 0})
	first, second := b, b

	again1, err1 := first.Apply(1, One)
	again2, err2 := second.Apply(1, One)

	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, again1, again2)
	require.Equal(t, first, second)
}

func TestApplyConservesStones(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 200; game++ {
		b := NewBoard()
		player := One
		for turn := 0; turn < 500 && !b.IsOver(); turn++ {
			moves := b.LegalMoves(player)
			require.NotEmpty(t, moves)
			again, err := b.Apply(moves[rng.Intn(len(moves))], player)
			require.NoError(t, err)
			require.Equal(t, 48, b.Total(), "Stones are relocated, never created or destroyed")
			for i := 0; i < NumPits; i++ {
				require.GreaterOrEqual(t, b.Pit(i), 0)
			}
			if !again {
				player = player.Opponent()
			}
		}
	}
}
