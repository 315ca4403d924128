package searcher

import (
	"cmp"
	"slices"

	"duel/game"
)

// Move ordering bands, searched in ascending order by a maximizing player.
const (
	bandTargetedSpecial = iota + 1 // Special with cards on the board to hit
	bandHighUnit
	bandMidUnit
	bandLowUnit // Also specials with nothing to hit
	bandPass
)

// priority returns the band of an action and a tiebreak within it.
func priority(action game.Action, boardCards int) (band, tiebreak int) {
	switch action.Type {
	case game.PlaySpecialAction:
		if boardCards > 0 {
			return bandTargetedSpecial, 0
		}
		return bandLowUnit, 0
	case game.PlayUnitAction:
		strength := action.Card.Strength
		switch {
		case strength >= HighStrength:
			return bandHighUnit, -strength
		case strength >= MidStrength:
			return bandMidUnit, -strength
		default:
			return bandLowUnit, -strength
		}
	default:
		return bandPass, 0
	}
}

// orderMoves returns a reordered copy of actions, most promising first for a
// maximizing player and reversed for a minimizing one.
func orderMoves(gs *game.GameState, actions []game.Action, maximizing bool) []game.Action {
	boardCards := 0
	for _, p := range gs.Players {
		boardCards += len(p.BoardCards())
	}

	ordered := slices.Clone(actions)
	slices.SortStableFunc(ordered, func(a, b game.Action) int {
		bandA, tieA := priority(a, boardCards)
		bandB, tieB := priority(b, boardCards)
		if bandA != bandB {
			return cmp.Compare(bandA, bandB)
		}
		return cmp.Compare(tieA, tieB)
	})
	if !maximizing {
		slices.Reverse(ordered)
	}
	return ordered
}
