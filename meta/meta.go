// meta/meta.go
package meta

// NUM_PITS is the number of pits on the board, stores included.
const NUM_PITS = 14

// ROW_PITS is the number of playable pits per player.
const ROW_PITS = 6

// INITIAL_SEEDS is the number of stones in each playable pit at the start.
const INITIAL_SEEDS = 4

// DEFAULT_MAX_DEPTH is the search ceiling in plies.
const DEFAULT_MAX_DEPTH = 10

// MAX_TURNS bounds a single game loop.
const MAX_TURNS = 500
