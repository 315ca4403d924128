package agent

import (
	"duel/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among valid actions.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: game.NewRand(seed)}
}

func (a *randomAgent) Decide(state *game.GameState, valid []game.Action) game.Action {
	return valid[a.rng.Intn(len(valid))]
}
