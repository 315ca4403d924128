package agent

import (
	"duel/experiments/metrics"
	"duel/game"
	"duel/searcher"
)

type searchAgent struct {
	minimax *searcher.Minimax
	last    metrics.SearchMetric
}

// NewSearchAgent returns an agent that looks ahead with minimax.
func NewSearchAgent(minimax *searcher.Minimax) Agent {
	return &searchAgent{minimax: minimax}
}

func (a *searchAgent) Decide(state *game.GameState, valid []game.Action) game.Action {
	action, metric := a.minimax.Decide(state, valid)
	a.last = metric
	return action
}

func (a *searchAgent) LastMetric() metrics.SearchMetric {
	return a.last
}
