package game

import "fmt"

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	PassAction ActionType = iota
	PlayUnitAction
	PlaySpecialAction
)

// NoLane marks a special action without a target lane (Scorch).
const NoLane Lane = -1

// Action represents an action taken by the active player. Lane is only
// meaningful for RowDebuff; a unit's lane is implied by its category.
type Action struct {
	Type ActionType
	Card Card
	Lane Lane
}

func Pass() Action {
	return Action{Type: PassAction, Lane: NoLane}
}

func PlayUnit(card Card) Action {
	return Action{Type: PlayUnitAction, Card: card, Lane: card.Lane()}
}

// PlaySpecial builds a special action. Scorch ignores the lane.
func PlaySpecial(card Card, lane Lane) Action {
	if card.Category == Scorch {
		lane = NoLane
	}
	return Action{Type: PlaySpecialAction, Card: card, Lane: lane}
}

func (a Action) IsPass() bool {
	return a.Type == PassAction
}

// Equal compares actions by card identity rather than by the card's mutable flags.
func (a Action) Equal(other Action) bool {
	if a.Type != other.Type {
		return false
	}
	if a.Type == PassAction {
		return true
	}
	return a.Card.ID == other.Card.ID && a.Lane == other.Lane
}

func (a Action) String() string {
	switch a.Type {
	case PassAction:
		return "Action(PASS)"
	case PlayUnitAction:
		return fmt.Sprintf("Action(play_unit, card=%d, row=%s)", a.Card.ID, a.Lane)
	default:
		return fmt.Sprintf("Action(play_special, card=%d, row=%s)", a.Card.ID, a.Lane)
	}
}
