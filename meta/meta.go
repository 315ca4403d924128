// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines searching the root.
const GO_ROUTINES = 1

// DEPTH defines the minimax search depth in plies.
const DEPTH = 4

// GAMES defines the number of matches per matchup.
const GAMES = 20

// SEED defines the seed of the first match of an experiment.
const SEED = 1

// MAX_TURNS caps the number of actions in a single match.
const MAX_TURNS = 300
