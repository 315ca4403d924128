package searcher

import (
	"testing"

	"duel/game"
)

func unit(id int, category game.Category, strength int) game.Card {
	return game.Card{ID: id, Category: category, Strength: strength}
}

// midgame deals a match and plays random moves until it has advanced by steps
// or is about to end.
func midgame(t *testing.T, seed uint64, steps int) *game.GameState {
	t.Helper()

	rng := game.NewRand(seed)
	gs := game.Deal(rng)
	engine := game.NewEngine()
	for i := 0; i < steps; i++ {
		engine.CheckAutoEndRound(gs)
		if gs.Over {
			break
		}
		valid := engine.ValidActions(gs)
		next := gs.Clone()
		engine.Execute(next, valid[rng.Intn(len(valid))])
		if next.Over {
			break
		}
		gs = next
	}
	return gs
}

// scorchFinish sets up round 3 at one round apiece with the opponent passed
// on an 8. Scorching first wins; playing the own 8 first only draws.
func scorchFinish(player int) *game.GameState {
	gs := game.NewGameState()
	gs.Round = 3
	gs.CurrentPlayer = player

	me, opp := gs.Players[player], gs.Players[1-player]
	me.RoundsWon, opp.RoundsWon = 1, 1
	me.Hand = []game.Card{unit(4, game.Melee, 8), game.NewCard(game.ScorchID)}
	opp.Board[game.RangedLane] = []game.Card{unit(9, game.Ranged, 8)}
	opp.Passed = true
	return gs
}
