package game

// Engine is the transition function of the duel. It holds no match data:
// every method reads and mutates only the state it is given, so a searcher can
// drive private engines over clones.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// ValidActions enumerates the legal actions of the player to move. A player
// who already passed gets exactly [Pass]; otherwise Pass comes first, then the
// hand in order.
func (e *Engine) ValidActions(gs *GameState) []Action {
	player := gs.Player()
	if player.Passed {
		return []Action{Pass()}
	}

	actions := []Action{Pass()}
	for _, card := range player.Hand {
		switch {
		case card.Category.IsUnit():
			actions = append(actions, PlayUnit(card))
		case card.Category == Scorch:
			if gs.SpecialAvailable(Scorch) {
				actions = append(actions, PlaySpecial(card, NoLane))
			}
		case card.Category == RowDebuff:
			if gs.SpecialAvailable(RowDebuff) {
				for lane := MeleeLane; lane < NumLanes; lane++ {
					actions = append(actions, PlaySpecial(card, lane))
				}
			}
		}
	}
	return actions
}

// Execute applies the action for the player to move, then advances the turn
// or resolves the round. A card that is not in the active hand is ignored.
func (e *Engine) Execute(gs *GameState, action Action) {
	if gs.Over {
		return
	}

	player := gs.Player()
	if player.Passed && action.Type != PassAction {
		return
	}

	switch action.Type {
	case PassAction:
		player.Passed = true

	case PlayUnitAction:
		held, ok := player.heldCard(action.Card.ID)
		if !ok || !held.Category.IsUnit() {
			return
		}
		card, _ := player.takeFromHand(held.ID)
		player.Board[card.Lane()] = append(player.Board[card.Lane()], card)

	case PlaySpecialAction:
		held, ok := player.heldCard(action.Card.ID)
		if !ok || !held.Category.IsSpecial() || !gs.SpecialAvailable(held.Category) {
			return
		}
		if held.Category == RowDebuff && (action.Lane < MeleeLane || action.Lane >= NumLanes) {
			return
		}
		card, _ := player.takeFromHand(held.ID)
		switch card.Category {
		case Scorch:
			applyScorch(gs)
		case RowDebuff:
			applyRowDebuff(gs, action.Lane)
		}
		gs.SpecialsUsed[card.Category]++

	default:
		return
	}

	if gs.RoundOver() {
		gs.ResolveRound()
		return
	}
	gs.switchPlayer()
	e.skipPassedPlayers(gs)
}

// CheckAutoEndRound forces a round with two empty hands to resolve, and
// resolves a round already decided by two passes. It reports whether a round
// was resolved.
func (e *Engine) CheckAutoEndRound(gs *GameState) bool {
	if gs.Over {
		return false
	}

	p0, p1 := gs.Players[0], gs.Players[1]
	if len(p0.Hand) == 0 && len(p1.Hand) == 0 {
		p0.Passed = true
		p1.Passed = true
		gs.ResolveRound()
		return true
	}

	if gs.RoundOver() {
		gs.ResolveRound()
		return true
	}
	return false
}

// skipPassedPlayers hands the turn past players who already passed.
func (e *Engine) skipPassedPlayers(gs *GameState) {
	visited := make(map[int]bool, NumPlayers)
	for gs.Player().Passed && !gs.RoundOver() {
		if visited[gs.CurrentPlayer] {
			break
		}
		visited[gs.CurrentPlayer] = true
		gs.switchPlayer()
	}

	if gs.RoundOver() {
		gs.ResolveRound()
	}
}

// applyScorch destroys every board card, on both sides, sharing the highest effective strength.
func applyScorch(gs *GameState) {
	maxStrength, found := 0, false
	for _, p := range gs.Players {
		for _, card := range p.BoardCards() {
			if s := card.EffectiveStrength(); !found || s > maxStrength {
				maxStrength, found = s, true
			}
		}
	}
	if !found {
		return
	}

	for _, p := range gs.Players {
		for lane, cards := range p.Board {
			kept := make([]Card, 0, len(cards))
			for _, card := range cards {
				if card.EffectiveStrength() != maxStrength {
					kept = append(kept, card)
				}
			}
			p.Board[lane] = kept
		}
	}
}

// applyRowDebuff debuffs every card currently in the lane on both boards.
func applyRowDebuff(gs *GameState, lane Lane) {
	for _, p := range gs.Players {
		for i := range p.Board[lane] {
			p.Board[lane][i].Debuffed = true
		}
	}
}
