package agent

import (
	"duel/experiments/metrics"
	"duel/game"
)

type Agent interface {
	// Decide returns one element of valid for the player to move in state
	Decide(state *game.GameState, valid []game.Action) game.Action
}

// Reporter is implemented by agents that collect search metrics.
type Reporter interface {
	// LastMetric returns the metrics of the most recent decision
	LastMetric() metrics.SearchMetric
}
