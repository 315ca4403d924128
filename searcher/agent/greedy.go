package agent

import "duel/game"

type greedyAgent struct{}

// NewGreedyAgent returns a no-lookahead baseline that always plays its
// strongest unit and passes once it has none.
func NewGreedyAgent() Agent {
	return greedyAgent{}
}

func (greedyAgent) Decide(state *game.GameState, valid []game.Action) game.Action {
	best := -1
	for i, action := range valid {
		if action.Type != game.PlayUnitAction {
			continue
		}
		if best < 0 || action.Card.Strength > valid[best].Card.Strength {
			best = i
		}
	}
	if best >= 0 {
		return valid[best]
	}

	for _, action := range valid {
		if action.IsPass() {
			return action
		}
	}
	return valid[0]
}
